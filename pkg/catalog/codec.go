package catalog

import (
	"encoding/binary"
	"unicode/utf16"
)

// EncodeString encodes s as a String value: prefix byte 0 for a
// null string (1 byte total), or prefix byte 1 followed by a 4-byte
// big-endian byte length N and N bytes of UTF-16 content (big-endian code
// units, no BOM). A nil s encodes the null form; a non-nil empty s encodes N=0.
func EncodeString(s *string) []byte {
	if s == nil {
		return []byte{0}
	}
	units := utf16.Encode([]rune(*s))
	out := make([]byte, 5+2*len(units))
	out[0] = 1
	binary.BigEndian.PutUint32(out[1:5], uint32(2*len(units)))
	for i, u := range units {
		binary.BigEndian.PutUint16(out[5+2*i:7+2*i], u)
	}
	return out
}

// DecodeString decodes a String value from b starting at offset off,
// returning the value (nil for null), the number of bytes consumed, and an
// error if b is malformed or truncated. key is used only to annotate errors.
func DecodeString(key string, b []byte, off int) (*string, int, error) {
	if off >= len(b) {
		return nil, 0, NewCorruptValue(key, off, "truncated string prefix byte")
	}
	switch b[off] {
	case 0:
		return nil, 1, nil
	case 1:
		if off+5 > len(b) {
			return nil, 0, NewCorruptValue(key, off, "truncated string length")
		}
		n := int(binary.BigEndian.Uint32(b[off+1 : off+5]))
		if n < 0 {
			return nil, 0, NewCorruptValue(key, off+1, "negative string length")
		}
		if n%2 != 0 {
			return nil, 0, NewCorruptValue(key, off+1, "odd UTF-16 byte length")
		}
		end := off + 5 + n
		if end > len(b) {
			return nil, 0, NewCorruptValue(key, off+5, "truncated string content")
		}
		units := make([]uint16, n/2)
		for i := range units {
			units[i] = binary.BigEndian.Uint16(b[off+5+2*i : off+7+2*i])
		}
		s := string(utf16.Decode(units))
		return &s, 5 + n, nil
	default:
		return nil, 0, NewCorruptValue(key, off, "invalid string prefix byte")
	}
}

// StringSizeOnWire returns the number of bytes EncodeString would produce
// for s, without actually encoding it.
func StringSizeOnWire(s *string) int {
	if s == nil {
		return 1
	}
	return 5 + 2*len(utf16.Encode([]rune(*s)))
}

// EncodeInt encodes v as a 4-byte big-endian two's-complement Integer value
//.
func EncodeInt(v int32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(v))
	return out
}

// DecodeInt decodes a 4-byte big-endian Integer value from b at offset off.
func DecodeInt(key string, b []byte, off int) (int32, int, error) {
	if off+4 > len(b) {
		return 0, 0, NewCorruptValue(key, off, "truncated int")
	}
	return int32(binary.BigEndian.Uint32(b[off : off+4])), 4, nil
}

// EncodeByte appends a single flag/id byte.
func EncodeByte(v byte) []byte {
	return []byte{v}
}

// DecodeByte reads a single flag/id byte from b at offset off.
func DecodeByte(key string, b []byte, off int) (byte, int, error) {
	if off >= len(b) {
		return 0, 0, NewCorruptValue(key, off, "truncated byte")
	}
	return b[off], 1, nil
}

// EncodeBool encodes a boolean as a single 0/1 byte.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool decodes a single 0/1 byte as a boolean.
func DecodeBool(key string, b []byte, off int) (bool, int, error) {
	v, n, err := DecodeByte(key, b, off)
	if err != nil {
		return false, 0, err
	}
	return v != 0, n, nil
}
