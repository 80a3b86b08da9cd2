package ui

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID identifies one widget's persisted state across frames.
// The zero ID means "no widget".
type ID uint64

// NewID derives an ID from a logical name and optional sub-names.
// Equal inputs always give equal IDs.
func NewID(name string, parts ...string) ID {
	d := xxhash.New()
	writePart(d, name)
	for _, p := range parts {
		writePart(d, p)
	}
	return ID(d.Sum64())
}

// With derives a child ID scoped under id.
func (id ID) With(parts ...string) ID {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	_, _ = d.Write(buf[:])
	for _, p := range parts {
		writePart(d, p)
	}
	return ID(d.Sum64())
}

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 16)
}

// writePart length-prefixes s so that ("ab","c") and ("a","bc") differ.
func writePart(d *xxhash.Digest, s string) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(len(s)))
	_, _ = d.Write(buf[:n])
	_, _ = d.WriteString(s)
}
