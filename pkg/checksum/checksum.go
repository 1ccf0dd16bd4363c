package checksum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalid = errors.New("numeral does not map to a 32-bit checksum")

// Compute derives the verification code scanners expect for a numeric card
// identifier. The numeral is read as a 32-bit integer, rendered as 32 bits,
// and the bit order of each of the four 8-bit groups is mirrored in place.
// The group order itself is kept, so applying Compute twice restores the
// original value.
func Compute(numeral string) (int, error) {
	n, err := strconv.ParseInt(numeral, 10, 32)
	if err != nil {
		return 0, ErrInvalid
	}

	bits := fmt.Sprintf("%032b", uint32(int32(n)))

	var mirrored strings.Builder
	for group := 0; group < 32; group += 8 {
		for i := group + 7; i >= group; i-- {
			mirrored.WriteByte(bits[i])
		}
	}

	code, err := strconv.ParseInt(mirrored.String(), 2, 32)
	if err != nil {
		return 0, ErrInvalid
	}
	return int(code), nil
}
