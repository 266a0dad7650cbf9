package modesort

import (
	"strconv"
	"strings"

	"github.com/go-highway/modesort/hwy"
)

// Format renders data as a bracketed, comma-separated list, e.g. "[1, 2, 3]".
func Format[T hwy.SignedInts](data []T) string {
	var b strings.Builder
	b.WriteByte('[')
	var buf [20]byte
	for i, v := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(strconv.AppendInt(buf[:0], int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}
