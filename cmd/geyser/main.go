package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"solana-geyser-client/internal/decode"
	"solana-geyser-client/internal/filter"
	"solana-geyser-client/internal/geyser"
	"solana-geyser-client/internal/observability"
	"solana-geyser-client/internal/session"
	"solana-geyser-client/internal/storage/migrations"
	pgstore "solana-geyser-client/internal/storage/postgres"
)

func main() {
	// Connection flags
	endpoint := flag.String("endpoint", "", "Geyser gRPC endpoint (host:port)")
	xToken := flag.String("x-token", "", "Access token sent as x-token metadata")
	useTLS := flag.Bool("tls", false, "Use TLS for the gRPC connection")
	commitment := flag.String("commitment", "processed", "Commitment level: processed, confirmed, or finalized")
	action := flag.String("action", "subscribe", "Action: subscribe, health-check, health-watch, ping, get-latest-blockhash, get-block-height, get-slot, is-blockhash-valid, get-version")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty to disable)")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL DSN for persisting decoded updates (empty to disable)")

	// Backoff flags
	backoffInitial := flag.Duration("backoff-initial", 500*time.Millisecond, "Initial reconnect delay")
	backoffMultiplier := flag.Float64("backoff-multiplier", 1.5, "Reconnect delay multiplier")
	backoffMaxElapsed := flag.Duration("backoff-max-elapsed", 0, "Maximum total retry time (0 = retry forever)")

	// One-shot action flags
	pingCount := flag.Int("ping-count", 0, "Counter for the ping action")
	blockhash := flag.String("blockhash", "", "Blockhash for the is-blockhash-valid action")

	// Subscribe flags
	accounts := flag.Bool("accounts", false, "Subscribe to account updates")
	accountsAccount := flag.String("accounts-account", "", "Comma-separated account address allow-list")
	accountsAccountPath := flag.String("accounts-account-path", "", "Path to a JSON array of account addresses")
	accountsOwner := flag.String("accounts-owner", "", "Comma-separated owner address allow-list")
	accountsMemcmp := flag.String("accounts-memcmp", "", "Comma-separated memcmp predicates, each offset:base58data")
	accountsDataSize := flag.String("accounts-datasize", "", "Exact account data size predicate")
	accountsTokenState := flag.Bool("accounts-token-account-state", false, "Only valid token accounts")
	accountsDataSlice := flag.String("accounts-data-slice", "", "Comma-separated data slices, each offset:length")
	slots := flag.Bool("slots", false, "Subscribe to slot updates")
	slotsFilterByCommitment := flag.Bool("slots-filter-by-commitment", false, "Filter slot updates by commitment")
	transactions := flag.Bool("transactions", false, "Subscribe to transaction updates")
	transactionsVote := flag.String("transactions-vote", "", "Filter vote transactions (true/false)")
	transactionsFailed := flag.String("transactions-failed", "", "Filter failed transactions (true/false)")
	transactionsSignature := flag.String("transactions-signature", "", "Filter by transaction signature")
	transactionsInclude := flag.String("transactions-account-include", "", "Comma-separated included accounts")
	transactionsExclude := flag.String("transactions-account-exclude", "", "Comma-separated excluded accounts")
	transactionsRequired := flag.String("transactions-account-required", "", "Comma-separated required accounts")
	txStatus := flag.Bool("transactions-status", false, "Subscribe to transaction status updates")
	txStatusVote := flag.String("transactions-status-vote", "", "Filter vote transactions for status updates (true/false)")
	txStatusFailed := flag.String("transactions-status-failed", "", "Filter failed transactions for status updates (true/false)")
	txStatusSignature := flag.String("transactions-status-signature", "", "Filter status updates by signature")
	txStatusInclude := flag.String("transactions-status-account-include", "", "Comma-separated included accounts for status updates")
	txStatusExclude := flag.String("transactions-status-account-exclude", "", "Comma-separated excluded accounts for status updates")
	txStatusRequired := flag.String("transactions-status-account-required", "", "Comma-separated required accounts for status updates")
	entries := flag.Bool("entries", false, "Subscribe to ledger entry updates")
	blocks := flag.Bool("blocks", false, "Subscribe to block updates")
	blocksInclude := flag.String("blocks-account-include", "", "Comma-separated included accounts for blocks")
	blocksIncludeTx := flag.String("blocks-include-transactions", "", "Include transactions in block updates (true/false)")
	blocksIncludeAccounts := flag.String("blocks-include-accounts", "", "Include accounts in block updates (true/false)")
	blocksIncludeEntries := flag.String("blocks-include-entries", "", "Include entries in block updates (true/false)")
	blocksMeta := flag.Bool("blocks-meta", false, "Subscribe to block meta updates")
	pingID := flag.Int("ping-id", -1, "Keepalive ping id to include in the subscribe request (-1 to disable)")
	resub := flag.Int("resub", 0, "Resubscribe to slots only after this many updates (0 to disable)")

	flag.Parse()

	logger := log.New(os.Stdout, "[geyser] ", log.LstdFlags)

	if *endpoint == "" {
		logger.Fatal("No endpoint specified. Use -endpoint")
	}

	var metrics *observability.Metrics
	if *metricsAddr != "" {
		metrics = observability.NewMetrics("")
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			logger.Printf("Starting metrics server on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("Metrics server error: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down", sig)
		cancel()
	}()

	level := geyser.ParseCommitmentLevel(*commitment)

	var store *pgstore.UpdateStore
	if *postgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			logger.Fatalf("Connect postgres: %v", err)
		}
		defer pool.Close()
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			logger.Fatalf("Apply migrations: %v", err)
		}
		store = pgstore.NewUpdateStore(pool)
	}

	dial := func(ctx context.Context) (geyser.Transport, error) {
		return geyser.Connect(ctx, geyser.Config{
			Endpoint: *endpoint,
			XToken:   *xToken,
			UseTLS:   *useTLS,
		})
	}

	policy := session.NewBackoffPolicy(*backoffInitial, *backoffMultiplier, *backoffMaxElapsed)
	supervisor := session.NewSupervisor(dial, policy, logger, metrics)

	var run session.Action
	switch *action {
	case "subscribe":
		spec := filter.Spec{
			Accounts:                  *accounts,
			AccountsAccount:           parseList(*accountsAccount),
			AccountsOwner:             parseList(*accountsOwner),
			AccountsMemcmp:            parsePredicates(*accountsMemcmp),
			AccountsTokenAccountState: *accountsTokenState,
			AccountsDataSlice:         parsePredicates(*accountsDataSlice),

			Slots:                   *slots,
			SlotsFilterByCommitment: *slotsFilterByCommitment,

			Transactions:                *transactions,
			TransactionsVote:            parseOptionalBool(*transactionsVote),
			TransactionsFailed:          parseOptionalBool(*transactionsFailed),
			TransactionsSignature:       optionalString(*transactionsSignature),
			TransactionsAccountInclude:  parseList(*transactionsInclude),
			TransactionsAccountExclude:  parseList(*transactionsExclude),
			TransactionsAccountRequired: parseList(*transactionsRequired),

			TransactionsStatus:                *txStatus,
			TransactionsStatusVote:            parseOptionalBool(*txStatusVote),
			TransactionsStatusFailed:          parseOptionalBool(*txStatusFailed),
			TransactionsStatusSignature:       optionalString(*txStatusSignature),
			TransactionsStatusAccountInclude:  parseList(*txStatusInclude),
			TransactionsStatusAccountExclude:  parseList(*txStatusExclude),
			TransactionsStatusAccountRequired: parseList(*txStatusRequired),

			Entries: *entries,

			Blocks:                    *blocks,
			BlocksAccountInclude:      parseList(*blocksInclude),
			BlocksIncludeTransactions: parseOptionalBool(*blocksIncludeTx),
			BlocksIncludeAccounts:     parseOptionalBool(*blocksIncludeAccounts),
			BlocksIncludeEntries:      parseOptionalBool(*blocksIncludeEntries),

			BlocksMeta: *blocksMeta,

			Commitment:       &level,
			ResubscribeAfter: *resub,
		}

		if *accountsDataSize != "" {
			size, err := strconv.ParseUint(*accountsDataSize, 10, 64)
			if err != nil {
				logger.Fatalf("Invalid -accounts-datasize: %v", err)
			}
			spec.AccountsDataSize = &size
		}
		if *pingID >= 0 {
			id := int32(*pingID)
			spec.PingID = &id
		}

		var source filter.AddressSource
		if *accountsAccountPath != "" {
			source = filter.NewFileAddressSource(*accountsAccountPath)
		}

		request, err := filter.Build(spec, source)
		if err != nil {
			// Malformed subscription configuration never retries.
			logger.Fatalf("Build subscribe request: %v", err)
		}

		run = func(ctx context.Context, transport geyser.Transport) error {
			stream, err := transport.Subscribe(ctx)
			if err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}
			defer stream.CloseSend()

			sess := session.New(stream, session.Config{
				Request:          request,
				ResubscribeAfter: *resub,
				Handler:          updateHandler(ctx, logger, store),
				Logger:           logger,
				Metrics:          metrics,
			})
			return sess.Run(ctx)
		}

	case "health-check":
		run = func(ctx context.Context, transport geyser.Transport) error {
			status, err := transport.HealthCheck(ctx)
			if err != nil {
				return err
			}
			logger.Printf("health: %s", status)
			return nil
		}

	case "health-watch":
		run = func(ctx context.Context, transport geyser.Transport) error {
			return transport.HealthWatch(ctx, func(status string) {
				logger.Printf("health: %s", status)
			})
		}

	case "ping":
		run = func(ctx context.Context, transport geyser.Transport) error {
			count, err := transport.Ping(ctx, int32(*pingCount))
			if err != nil {
				return err
			}
			logger.Printf("pong: count=%d", count)
			return nil
		}

	case "get-latest-blockhash":
		run = func(ctx context.Context, transport geyser.Transport) error {
			resp, err := transport.GetLatestBlockhash(ctx, &level)
			if err != nil {
				return err
			}
			logger.Printf("latest blockhash: slot=%d blockhash=%s last_valid_block_height=%d",
				resp.Slot, resp.Blockhash, resp.LastValidBlockHeight)
			return nil
		}

	case "get-block-height":
		run = func(ctx context.Context, transport geyser.Transport) error {
			height, err := transport.GetBlockHeight(ctx, &level)
			if err != nil {
				return err
			}
			logger.Printf("block height: %d", height)
			return nil
		}

	case "get-slot":
		run = func(ctx context.Context, transport geyser.Transport) error {
			slot, err := transport.GetSlot(ctx, &level)
			if err != nil {
				return err
			}
			logger.Printf("slot: %d", slot)
			return nil
		}

	case "is-blockhash-valid":
		if *blockhash == "" {
			logger.Fatal("is-blockhash-valid requires -blockhash")
		}
		run = func(ctx context.Context, transport geyser.Transport) error {
			valid, slot, err := transport.IsBlockhashValid(ctx, *blockhash, &level)
			if err != nil {
				return err
			}
			logger.Printf("blockhash valid=%t at slot %d", valid, slot)
			return nil
		}

	case "get-version":
		run = func(ctx context.Context, transport geyser.Transport) error {
			version, err := transport.GetVersion(ctx)
			if err != nil {
				return err
			}
			logger.Printf("version: %s", version)
			return nil
		}

	default:
		logger.Fatalf("Unknown action: %s", *action)
	}

	if err := supervisor.Run(ctx, run); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// updateHandler logs every decoded update and, when a store is configured,
// persists the data frames.
func updateHandler(ctx context.Context, logger *log.Logger, store *pgstore.UpdateStore) session.UpdateHandler {
	return func(update decode.Update, filters []string) {
		logger.Printf("new %s update: filters %v, %s", update.Kind(), filters, update)

		if store != nil && !update.Kind().IsControl() {
			if err := store.Insert(ctx, update, filters); err != nil {
				// Persistence is best-effort; the stream keeps going.
				logger.Printf("store update: %v", err)
			}
		}
	}
}

// parseList splits a comma-separated flag value, dropping empty entries.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parsePredicates splits comma-separated predicate entries written as
// offset:value and rewrites them to the offset,value form the builder
// expects. The colon form keeps the flag value unambiguous.
func parsePredicates(raw string) []string {
	var out []string
	for _, item := range parseList(raw) {
		out = append(out, strings.Replace(item, ":", ",", 1))
	}
	return out
}

func parseOptionalBool(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
