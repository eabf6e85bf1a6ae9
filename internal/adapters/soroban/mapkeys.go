package soroban

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/stellar/go-stellar-sdk/xdr"
)

type encodedMapEntry struct {
	encodedKey []byte
	entry      xdr.ScMapEntry
}

// bytewiseMapEntrySorter orders entries by the XDR bytes of their keys
type bytewiseMapEntrySorter []encodedMapEntry

func (x bytewiseMapEntrySorter) Len() int {
	return len(x)
}

func (x bytewiseMapEntrySorter) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

func (x bytewiseMapEntrySorter) Less(i, j int) bool {
	return bytes.Compare(x[i].encodedKey, x[j].encodedKey) < 0
}

// duplicateKeyError reports two entries whose keys encode identically
type duplicateKeyError struct {
	index int
}

func (e duplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate map key at sorted position %d", e.index)
}

// SortMapEntries sorts entries in place into canonical order. Keys that
// encode to identical bytes are rejected and leave entries untouched.
func SortMapEntries(entries []xdr.ScMapEntry) error {
	sorter := make(bytewiseMapEntrySorter, len(entries))
	for i, entry := range entries {
		encoded, err := entry.Key.MarshalBinary()
		if err != nil {
			return fmt.Errorf("failed to encode map key %d: %w", i, err)
		}
		sorter[i] = encodedMapEntry{encodedKey: encoded, entry: entry}
	}

	sort.Stable(sorter)

	for i := 1; i < len(sorter); i++ {
		if bytes.Equal(sorter[i-1].encodedKey, sorter[i].encodedKey) {
			return duplicateKeyError{index: i}
		}
	}
	for i := range sorter {
		entries[i] = sorter[i].entry
	}
	return nil
}
