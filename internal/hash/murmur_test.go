package hash

import (
	"encoding/binary"
	"testing"
)

func TestSum64Deterministic(t *testing.T) {
	data := []byte("evolving sketch")
	if Sum64(data, DefaultSeed) != Sum64(data, DefaultSeed) {
		t.Error("Sum64 not deterministic")
	}
	if Sum64(data, DefaultSeed) == Sum64(data, DefaultSeed+1) {
		t.Error("Sum64 ignores the seed")
	}
	if Sum64(data, DefaultSeed) == Sum64(data[:len(data)-1], DefaultSeed) {
		t.Error("Sum64 ignores the last byte")
	}
}

func TestSum64String(t *testing.T) {
	for _, s := range []string{"", "a", "12345678", "a longer string spanning blocks"} {
		if Sum64String(s, DefaultSeed) != Sum64([]byte(s), DefaultSeed) {
			t.Errorf("Sum64String(%q) differs from Sum64 on the same bytes", s)
		}
	}
}

func TestUint64MatchesByteHash(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, 0xdeadbeef, ^uint64(0)} {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		if got, want := Uint64(v, DefaultSeed), Sum64(buf[:], DefaultSeed); got != want {
			t.Errorf("Uint64(%d) = %#x, want Sum64 of LE bytes %#x", v, got, want)
		}
	}
}

func TestUint32MatchesByteHash(t *testing.T) {
	for _, v := range []uint32{0, 1, 42, 0xdeadbeef, ^uint32(0)} {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		if got, want := Uint32(v, DefaultSeed), Sum64(buf[:], DefaultSeed); got != want {
			t.Errorf("Uint32(%d) = %#x, want Sum64 of LE bytes %#x", v, got, want)
		}
	}
}

func TestForKeyTypes(t *testing.T) {
	if got, want := ForKey[int](DefaultSeed)(42), Uint64(42, DefaultSeed); got != want {
		t.Errorf("ForKey[int](42) = %#x, want %#x", got, want)
	}
	if got, want := ForKey[uint32](DefaultSeed)(42), Uint32(42, DefaultSeed); got != want {
		t.Errorf("ForKey[uint32](42) = %#x, want %#x", got, want)
	}
	if got, want := ForKey[string](DefaultSeed)("42"), Sum64String("42", DefaultSeed); got != want {
		t.Errorf("ForKey[string](42) = %#x, want %#x", got, want)
	}

	// Unrecognized comparable types fall back to maphash; one returned
	// function is stable across calls.
	type pair struct{ a, b int }
	fn := ForKey[pair](DefaultSeed)
	if fn(pair{1, 2}) != fn(pair{1, 2}) {
		t.Error("fallback hash not deterministic")
	}
	if fn(pair{1, 2}) == fn(pair{2, 1}) {
		t.Error("fallback hash ignores field order")
	}
}
