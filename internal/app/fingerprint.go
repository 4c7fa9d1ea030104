package app

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/corey/wordgrid/internal/domain/grid"
)

// Fingerprint identifies a search input. Every string is length-prefixed so
// distinct inputs cannot collide by concatenation ("AB","C" vs "A","BC").
func Fingerprint(words []string, g *grid.Grid, dirs grid.DirectionSet, ignoreCase bool) string {
	h := sha256.New()
	var buf [binary.MaxVarintLen64]byte

	writeUint := func(v uint64) {
		n := binary.PutUvarint(buf[:], v)
		h.Write(buf[:n])
	}

	writeUint(1) // format version
	writeUint(uint64(dirs))
	if ignoreCase {
		writeUint(1)
	} else {
		writeUint(0)
	}

	writeUint(uint64(len(words)))
	for _, w := range words {
		writeString(h, writeUint, w)
	}

	writeUint(uint64(g.Rows()))
	writeUint(uint64(g.Cols()))
	for _, row := range g.Cells() {
		for _, cell := range row {
			writeString(h, writeUint, cell)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeString(h hash.Hash, writeUint func(uint64), s string) {
	writeUint(uint64(len(s)))
	h.Write([]byte(s))
}
