package records

import "unicode/utf8"

// truncateRunes cuts s so its UTF-8 encoding fits in max bytes without
// splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	end := 0
	for i, r := range s {
		if i+utf8.RuneLen(r) > max {
			break
		}
		end = i + utf8.RuneLen(r)
	}
	return s[:end]
}

// putString writes s into the fixed-capacity field dst: UTF-8 bytes
// truncated on a rune boundary, remainder NUL-padded.
func putString(dst []byte, s string) {
	s = truncateRunes(s, len(dst))
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// getString reads a fixed-capacity field, dropping the NUL padding.
func getString(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

// cursor walks a record buffer field by field. Field order and sizes must
// match between the Encode and Decode of a codec.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) next(n int) []byte {
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}
