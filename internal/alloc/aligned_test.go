package alloc

import (
	"testing"
	"unsafe"
)

func TestFloat32sAligned(t *testing.T) {
	for _, count := range []int{1, 8, 1024, 4096} {
		s := Float32s(count)
		if len(s) != count {
			t.Fatalf("Float32s(%d) has len %d", count, len(s))
		}
		if !IsAligned(unsafe.Pointer(&s[0]), CacheLineSize) {
			t.Errorf("Float32s(%d) not %d-byte aligned", count, CacheLineSize)
		}
		for i, v := range s {
			if v != 0 {
				t.Fatalf("Float32s(%d)[%d] = %v, want 0", count, i, v)
			}
		}
	}
	if Float32s(0) != nil {
		t.Error("Float32s(0) != nil")
	}
}

func TestUint32sAligned(t *testing.T) {
	s := Uint32s(1024)
	if len(s) != 1024 {
		t.Fatalf("len = %d", len(s))
	}
	if !IsAligned(unsafe.Pointer(&s[0]), CacheLineSize) {
		t.Error("Uint32s not cache-line aligned")
	}
	for i, v := range s {
		if v != 0 {
			t.Fatalf("Uint32s[%d] = %v, want 0", i, v)
		}
	}
}

func TestSliceIsWritable(t *testing.T) {
	s := Float32s(64)
	for i := range s {
		s[i] = float32(i)
	}
	for i := range s {
		if s[i] != float32(i) {
			t.Fatalf("s[%d] = %v after write", i, s[i])
		}
	}
}
