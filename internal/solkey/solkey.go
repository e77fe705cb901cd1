// Package solkey provides fixed-size Solana public key and signature types
// with base58 text rendering.
package solkey

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Sizes of the raw wire representations.
const (
	PubkeySize    = 32
	SignatureSize = 64
)

// Pubkey is a 32-byte Solana account address.
type Pubkey [PubkeySize]byte

// PubkeyFromBytes converts a raw byte slice into a Pubkey.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeySize {
		return pk, fmt.Errorf("pubkey must be %d bytes, got %d", PubkeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// PubkeyFromBase58 parses a base58-encoded address.
func PubkeyFromBase58(s string) (Pubkey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("decode base58 pubkey: %w", err)
	}
	return PubkeyFromBytes(b)
}

// String returns the canonical base58 encoding.
func (pk Pubkey) String() string {
	return base58.Encode(pk[:])
}

// Bytes returns the raw 32-byte representation.
func (pk Pubkey) Bytes() []byte {
	out := make([]byte, PubkeySize)
	copy(out, pk[:])
	return out
}

// Signature is a 64-byte transaction signature.
type Signature [SignatureSize]byte

// SignatureFromBytes converts a raw byte slice into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromBase58 parses a base58-encoded signature.
func SignatureFromBase58(s string) (Signature, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Signature{}, fmt.Errorf("decode base58 signature: %w", err)
	}
	return SignatureFromBytes(b)
}

// String returns the canonical base58 encoding.
func (sig Signature) String() string {
	return base58.Encode(sig[:])
}

// Bytes returns the raw 64-byte representation.
func (sig Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out, sig[:])
	return out
}
