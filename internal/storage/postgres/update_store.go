package postgres

import (
	"context"
	"fmt"
	"time"

	"solana-geyser-client/internal/decode"
)

// UpdateStore appends decoded subscription updates to PostgreSQL.
type UpdateStore struct {
	pool *Pool
}

// NewUpdateStore creates a new UpdateStore.
func NewUpdateStore(pool *Pool) *UpdateStore {
	return &UpdateStore{pool: pool}
}

// StoredUpdate is one persisted update row.
type StoredUpdate struct {
	ID         int64
	Slot       uint64
	Kind       string
	Key        string
	Filters    []string
	Rendered   string
	ReceivedAt time.Time
}

// Insert appends one decoded update. Filters are the matched group labels.
func (s *UpdateStore) Insert(ctx context.Context, update decode.Update, filters []string) error {
	slot, key := updateSlotKey(update)
	if filters == nil {
		filters = []string{}
	}

	query := `
		INSERT INTO updates (slot, kind, key, filters, rendered, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		int64(slot),
		update.Kind().String(),
		key,
		filters,
		update.String(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert update: %w", err)
	}
	return nil
}

// ListBySlot returns the stored updates for a slot in insertion order.
func (s *UpdateStore) ListBySlot(ctx context.Context, slot uint64) ([]StoredUpdate, error) {
	query := `
		SELECT id, slot, kind, key, filters, rendered, received_at
		FROM updates
		WHERE slot = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, int64(slot))
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var updates []StoredUpdate
	for rows.Next() {
		var u StoredUpdate
		var slotVal int64
		if err := rows.Scan(&u.ID, &slotVal, &u.Kind, &u.Key, &u.Filters, &u.Rendered, &u.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan update: %w", err)
		}
		u.Slot = uint64(slotVal)
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate updates: %w", err)
	}

	return updates, nil
}

// CountByKind returns the number of stored updates per variant.
func (s *UpdateStore) CountByKind(ctx context.Context) (map[string]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT kind, COUNT(*) FROM updates GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count updates: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}

	return counts, nil
}

// updateSlotKey extracts the slot and the primary key rendering (address,
// signature or hash) for indexing. Variants without one store an empty key.
func updateSlotKey(update decode.Update) (uint64, string) {
	switch u := update.(type) {
	case *decode.Account:
		return u.Slot, u.Pubkey.String()
	case *decode.Transaction:
		return u.Slot, u.Signature.String()
	case *decode.TransactionStatus:
		return u.Slot, u.Signature.String()
	case *decode.Slot:
		return u.Slot, ""
	case *decode.Block:
		return u.Slot, u.Blockhash
	case *decode.BlockMeta:
		return u.Slot, u.Blockhash
	case *decode.Entry:
		return u.Slot, u.Hash
	default:
		return 0, ""
	}
}
