package enid

import "github.com/pkg/errors"

// alphabet is the 32-symbol encoding alphabet, a lowercase Crockford-style
// base32. The letters i, l, o and u are excluded so symbols can't be
// mistaken for 1, 7 or 0 and encoded identifiers can't spell anything rude.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// invalid marks table cells for bytes that are not alphabet symbols.
const invalid = 0xff

// values maps every possible input byte to its 5-bit alphabet index.
var values = buildLookup(alphabet)

func buildLookup(alphabet string) [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if table[c] != invalid {
			panic(errors.Errorf("duplicate alphabet symbol %q", c))
		}
		table[c] = byte(i)
	}
	return table
}

// encode packs 5 bytes into 8 alphabet symbols, most significant quintet
// first.
func encode(b [5]byte) [8]byte {
	bits := uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 |
		uint64(b[3])<<32 | uint64(b[4])<<24

	var chars [8]byte
	for i := range chars {
		chars[i] = alphabet[bits>>59]
		bits <<= 5
	}
	return chars
}

// decode unpacks 8 alphabet symbols into the 5 bytes they encode. It is the
// exact inverse of encode and fails on any byte outside the alphabet,
// case-sensitively.
func decode(chars [8]byte) ([5]byte, error) {
	var bits uint64
	for _, c := range chars {
		v := values[c]
		if v == invalid {
			return [5]byte{}, ErrInvalidSyntax
		}
		bits = bits<<5 | uint64(v)
	}
	return [5]byte{
		byte(bits >> 32),
		byte(bits >> 24),
		byte(bits >> 16),
		byte(bits >> 8),
		byte(bits),
	}, nil
}
