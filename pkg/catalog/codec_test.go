package catalog

import "testing"

func TestEncodeDecodeStringNull(t *testing.T) {
	enc := EncodeString(nil)
	if len(enc) != 1 || enc[0] != 0 {
		t.Fatalf("EncodeString(nil) = %v, want [0]", enc)
	}
	v, n, err := DecodeString("k", enc, 0)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if v != nil {
		t.Errorf("DecodeString() = %v, want nil", v)
	}
	if n != 1 {
		t.Errorf("consumed %d bytes, want 1", n)
	}
}

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "yyyy-MM-dd HH:mm:ss", "unicode: é中文"}
	for _, s := range cases {
		s := s
		enc := EncodeString(&s)
		v, n, err := DecodeString("k", enc, 0)
		if err != nil {
			t.Fatalf("DecodeString(%q) error = %v", s, err)
		}
		if v == nil || *v != s {
			t.Errorf("DecodeString(%q) = %v, want %q", s, v, s)
		}
		if n != len(enc) {
			t.Errorf("consumed %d bytes, want %d", n, len(enc))
		}
		if got := StringSizeOnWire(&s); got != len(enc) {
			t.Errorf("StringSizeOnWire(%q) = %d, want %d", s, got, len(enc))
		}
	}
	if got := StringSizeOnWire(nil); got != 1 {
		t.Errorf("StringSizeOnWire(nil) = %d, want 1", got)
	}
}

func TestDecodeStringTruncated(t *testing.T) {
	if _, _, err := DecodeString("k", []byte{1, 0, 0, 0}, 0); err == nil {
		t.Error("expected error decoding truncated length")
	}
	if _, _, err := DecodeString("k", []byte{1, 0, 0, 0, 5, 'h', 'i'}, 0); err == nil {
		t.Error("expected error decoding truncated content")
	}
	if _, _, err := DecodeString("k", []byte{9}, 0); err == nil {
		t.Error("expected error decoding invalid prefix byte")
	}
	if _, _, err := DecodeString("k", []byte{}, 0); err == nil {
		t.Error("expected error decoding empty buffer")
	}
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 2147483647, -2147483648, 42}
	for _, v := range cases {
		enc := EncodeInt(v)
		if len(enc) != 4 {
			t.Fatalf("EncodeInt(%d) len = %d, want 4", v, len(enc))
		}
		got, n, err := DecodeInt("k", enc, 0)
		if err != nil {
			t.Fatalf("DecodeInt(%d) error = %v", v, err)
		}
		if got != v || n != 4 {
			t.Errorf("DecodeInt(%d) = (%d, %d), want (%d, 4)", v, got, n, v)
		}
	}
}

func TestDecodeIntTruncated(t *testing.T) {
	if _, _, err := DecodeInt("k", []byte{0, 0, 0}, 0); err == nil {
		t.Error("expected error decoding truncated int")
	}
}

func TestEncodeDecodeBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc := EncodeBool(v)
		got, n, err := DecodeBool("k", enc, 0)
		if err != nil {
			t.Fatalf("DecodeBool(%v) error = %v", v, err)
		}
		if got != v || n != 1 {
			t.Errorf("DecodeBool(%v) = (%v, %d), want (%v, 1)", v, got, n, v)
		}
	}
}
