package hash

import "github.com/cespare/xxhash/v2"

// Pixels computes the xxHash64 of a run of RGBA pixel records.
//
// The hash covers pixel bytes only, so a raw buffer and a compressed buffer
// holding the same image produce the same value.
func Pixels(records []byte) uint64 {
	return xxhash.Sum64(records)
}

// Rows computes the xxHash64 of an image given row by row.
//
// It matches Pixels over the concatenation of all rows without building the
// concatenated slice, which lets callers hash a strided image in place.
func Rows(rowCount int, row func(y int) []byte) uint64 {
	d := xxhash.New()
	for y := range rowCount {
		_, _ = d.Write(row(y))
	}

	return d.Sum64()
}
