package enid

import "github.com/pkg/errors"

// Discriminants preceding the payload in the binary form of ID.
const (
	binaryTag40 = 0x00
	binaryTag80 = 0x01
)

// MarshalBinary implements encoding.BinaryMarshaler: the raw 5 bytes.
func (id ID40) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), id[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID40) UnmarshalBinary(data []byte) error {
	if len(data) != len(id) {
		return errors.Errorf("invalid ID40 binary length: %d", len(data))
	}
	copy(id[:], data)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: the raw 10 bytes.
func (id ID80) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), id[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID80) UnmarshalBinary(data []byte) error {
	if len(data) != len(id) {
		return errors.Errorf("invalid ID80 binary length: %d", len(data))
	}
	copy(id[:], data)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: a discriminant byte
// (0 for the 40-bit variant, 1 for the 80-bit one) followed by the raw
// bytes.
func (id ID) MarshalBinary() ([]byte, error) {
	if id.kind == Kind80 {
		return append([]byte{binaryTag80}, id.id80[:]...), nil
	}
	return append([]byte{binaryTag40}, id.id40[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty ID binary form")
	}
	switch data[0] {
	case binaryTag40:
		var v ID40
		if err := v.UnmarshalBinary(data[1:]); err != nil {
			return err
		}
		*id = From40(v)
	case binaryTag80:
		var v ID80
		if err := v.UnmarshalBinary(data[1:]); err != nil {
			return err
		}
		*id = From80(v)
	default:
		return errors.Errorf("invalid ID variant: %d", data[0])
	}
	return nil
}
