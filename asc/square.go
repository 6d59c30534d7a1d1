package asc

import (
	"fmt"
	"strings"
)

// National grid letter alphabets. The 500 km super squares covering Great
// Britain use only the letters H, J, N, O, S and T; the 100 km squares
// inside each use the standard 25-letter grid alphabet, which skips I.
const (
	superSquareLetters = "HJNOST"
	innerSquareLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
)

// ValidateSquareName checks that name addresses a 10x10 km national grid
// square: two grid letters followed by two digits, case-insensitive.
// The first letter must be one of the super-square letters and the second
// one of the 25-letter grid alphabet. Anything else is ErrTileSource —
// such a name can never be a sea square, only a caller mistake.
func ValidateSquareName(name string) error {
	upper := strings.ToUpper(name)
	if len(upper) == 4 &&
		strings.ContainsRune(superSquareLetters, rune(upper[0])) &&
		strings.ContainsRune(innerSquareLetters, rune(upper[1])) &&
		isDigit(upper[2]) && isDigit(upper[3]) {
		return nil
	}

	return fmt.Errorf("%w: tile %q: not a national grid square name", ErrTileSource, name)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
