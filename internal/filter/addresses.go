package filter

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileAddressSource reads a JSON array of base58 account addresses from a
// file, for allow-lists too large to pass inline.
type FileAddressSource struct {
	path string
}

// NewFileAddressSource creates a source backed by the given path.
func NewFileAddressSource(path string) *FileAddressSource {
	return &FileAddressSource{path: path}
}

// Compile-time interface check.
var _ AddressSource = (*FileAddressSource)(nil)

// Addresses reads and parses the address file.
func (s *FileAddressSource) Addresses() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open address file: %w", err)
	}
	defer f.Close()

	var addresses []string
	if err := json.NewDecoder(f).Decode(&addresses); err != nil {
		return nil, fmt.Errorf("parse address file %s: %w", s.path, err)
	}

	return addresses, nil
}
