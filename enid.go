package enid

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrInvalidSyntax is returned when text is not a valid ENID: wrong length,
// a byte outside the alphabet or a misplaced separator. The error carries no
// detail about which byte was wrong or where; callers needing diagnostics
// must inspect the input themselves.
var ErrInvalidSyntax = errors.New("invalid ENID syntax")

const (
	textLen40 = 8
	textLen80 = 17
	sepIndex  = 8
	separator = '-'
)

// ID40 is a 40-bit ENID: 5 raw bytes, formatted as 8 base32 symbols.
//
// The type is a plain byte array, so it is bit-compatible with [5]byte and
// converts to and from it for free.
type ID40 [5]byte

// ParseID40 parses the 8-symbol text form of a 40-bit ENID.
func ParseID40(s string) (ID40, error) {
	if len(s) != textLen40 {
		return ID40{}, ErrInvalidSyntax
	}
	b, err := decode([8]byte([]byte(s)))
	if err != nil {
		return ID40{}, err
	}
	return ID40(b), nil
}

// MustParseID40 parses the text form and panics if it is invalid.
func MustParseID40(s string) ID40 {
	return lo.Must(ParseID40(s))
}

// String returns the canonical 8-symbol text form.
func (id ID40) String() string {
	chars := encode(id)
	return string(chars[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID40) MarshalText() ([]byte, error) {
	chars := encode(id)
	return chars[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID40) UnmarshalText(text []byte) error {
	parsed, err := ParseID40(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ID80 is an 80-bit ENID: 10 raw bytes, formatted as two 8-symbol base32
// chunks joined by a hyphen (17 symbols in total).
//
// The type is a plain byte array, so it is bit-compatible with [10]byte and
// converts to and from it for free.
type ID80 [10]byte

// ParseID80 parses the 17-symbol text form of an 80-bit ENID. The hyphen
// must sit exactly at index 8.
func ParseID80(s string) (ID80, error) {
	if len(s) != textLen80 || s[sepIndex] != separator {
		return ID80{}, ErrInvalidSyntax
	}

	head, err := decode([8]byte([]byte(s[:sepIndex])))
	if err != nil {
		return ID80{}, err
	}
	tail, err := decode([8]byte([]byte(s[sepIndex+1:])))
	if err != nil {
		return ID80{}, err
	}

	var id ID80
	copy(id[:5], head[:])
	copy(id[5:], tail[:])
	return id, nil
}

// MustParseID80 parses the text form and panics if it is invalid.
func MustParseID80(s string) ID80 {
	return lo.Must(ParseID80(s))
}

// String returns the canonical 17-symbol text form.
func (id ID80) String() string {
	text := id.text()
	return string(text[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID80) MarshalText() ([]byte, error) {
	text := id.text()
	return text[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID80) UnmarshalText(text []byte) error {
	parsed, err := ParseID80(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ID80) text() [17]byte {
	var buf [17]byte
	head := encode([5]byte(id[:5]))
	tail := encode([5]byte(id[5:]))
	copy(buf[:sepIndex], head[:])
	buf[sepIndex] = separator
	copy(buf[sepIndex+1:], tail[:])
	return buf
}

// Kind discriminates the variants of ID.
type Kind uint8

// ID variants.
const (
	Kind40 Kind = iota
	Kind80
)

// ID is an ENID of either width: a tagged union over ID40 and ID80. The zero
// value is the 40-bit zero identifier.
//
// ID values are comparable and may be used as map keys.
type ID struct {
	kind Kind
	id40 ID40
	id80 ID80
}

// From40 wraps a 40-bit ENID.
func From40(id ID40) ID {
	return ID{kind: Kind40, id40: id}
}

// From80 wraps an 80-bit ENID.
func From80(id ID80) ID {
	return ID{kind: Kind80, id80: id}
}

// ParseID parses either text form, dispatching on length: 8 symbols parse as
// a 40-bit ENID, anything else must be the 17-symbol 80-bit form.
func ParseID(s string) (ID, error) {
	if len(s) == textLen40 {
		id, err := ParseID40(s)
		if err != nil {
			return ID{}, err
		}
		return From40(id), nil
	}

	id, err := ParseID80(s)
	if err != nil {
		return ID{}, err
	}
	return From80(id), nil
}

// MustParseID parses the text form and panics if it is invalid.
func MustParseID(s string) ID {
	return lo.Must(ParseID(s))
}

// Kind returns the variant held.
func (id ID) Kind() Kind {
	return id.kind
}

// Is40 returns true if the 40-bit variant is held.
func (id ID) Is40() bool {
	return id.kind == Kind40
}

// Is80 returns true if the 80-bit variant is held.
func (id ID) Is80() bool {
	return id.kind == Kind80
}

// As40 returns the 40-bit variant and whether it is the one held.
func (id ID) As40() (ID40, bool) {
	return id.id40, id.kind == Kind40
}

// As80 returns the 80-bit variant and whether it is the one held.
func (id ID) As80() (ID80, bool) {
	return id.id80, id.kind == Kind80
}

// Bytes returns a copy of the raw bytes of the held variant, 5 or 10 of
// them.
func (id ID) Bytes() []byte {
	if id.kind == Kind80 {
		return id.id80[:]
	}
	return id.id40[:]
}

// String returns the canonical text form of the held variant.
func (id ID) String() string {
	if id.kind == Kind80 {
		return id.id80.String()
	}
	return id.id40.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if id.kind == Kind80 {
		return id.id80.MarshalText()
	}
	return id.id40.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
