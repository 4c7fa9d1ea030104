// Binary encoding for cached result blobs.
//
// Cached results are small, hot, and read on every repeated search, so they use
// a compact binary list instead of JSON. Run history stays JSON (human-facing,
// rarely read).
//
// Binary result list format (little-endian):
//
//	resultCount: uint32
//	per result:
//	  wordLen: uint16
//	  word:    [wordLen]byte
//	  count:   uint32
package bbolt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/corey/wordgrid/internal/domain/grid"
)

// encodeResults encodes results in order. A single buffer is pre-allocated.
func encodeResults(results []grid.Result) ([]byte, error) {
	totalSize := 4
	for _, r := range results {
		totalSize += 2 + len(r.Word) + 4
	}

	buf := make([]byte, totalSize)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(results)))
	offset += 4

	for _, r := range results {
		if len(r.Word) > math.MaxUint16 {
			return nil, fmt.Errorf("word too long: %d bytes", len(r.Word))
		}
		if r.Count < 0 || int64(r.Count) > math.MaxUint32 {
			return nil, fmt.Errorf("count out of range for %q: %d", r.Word, r.Count)
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(r.Word)))
		offset += 2
		copy(buf[offset:], r.Word)
		offset += len(r.Word)
		binary.LittleEndian.PutUint32(buf[offset:], uint32(r.Count))
		offset += 4
	}

	return buf, nil
}

// decodeResults decodes a binary result list.
// Every read is bounds-checked to avoid panics on corrupt data.
func decodeResults(data []byte) ([]grid.Result, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("result list too short: %d bytes", len(data))
	}

	offset := 0
	n := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	// Each result needs at least 6 bytes; reject counts the blob cannot hold.
	if uint64(n)*6 > uint64(len(data)-offset) {
		return nil, fmt.Errorf("result count %d exceeds blob size %d", n, len(data))
	}

	results := make([]grid.Result, 0, n)
	for i := uint32(0); i < n; i++ {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at result %d word length (offset %d)", i, offset)
		}
		wordLen := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+wordLen > len(data) {
			return nil, fmt.Errorf("truncated at result %d word (offset %d, need %d)", i, offset, wordLen)
		}
		word := string(data[offset : offset+wordLen])
		offset += wordLen

		if offset+4 > len(data) {
			return nil, fmt.Errorf("truncated at result %d count (offset %d)", i, offset)
		}
		count := binary.LittleEndian.Uint32(data[offset:])
		offset += 4

		results = append(results, grid.Result{Word: word, Count: int(count)})
	}

	if offset != len(data) {
		return nil, fmt.Errorf("trailing %d bytes after %d results", len(data)-offset, n)
	}
	return results, nil
}
