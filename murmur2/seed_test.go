package murmur2

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeSeed(t *testing.T) {
	tests := []struct {
		seed int64
		want uint32
	}{
		{0, 0},
		{42, 42},
		{-1, 0xffffffff},
		{math.MinInt32, 0x80000000},
		{math.MaxUint32, 0xffffffff},
		{1<<32 + 5, 5},
		{-(1 << 32), 0},
	}

	for _, tc := range tests {
		if got := NormalizeSeed(tc.seed); got != tc.want {
			t.Errorf("NormalizeSeed(%d) = %#x, want %#x", tc.seed, got, tc.want)
		}
	}
}

func TestHashIntNormalizesSeed(t *testing.T) {
	key := []byte("hello")

	if got := HashInt(key, -1, false); got != 2478023965 {
		t.Errorf("HashInt(hello, -1) = %d, want 2478023965", got)
	}
	if got, want := HashInt(key, -1, false), MurmurHash2(key, 0xffffffff); got != want {
		t.Errorf("HashInt(hello, -1) = %d, want %d", got, want)
	}
	if got, want := HashInt(key, 1<<32+5, false), MurmurHash2(key, 5); got != want {
		t.Errorf("HashInt(hello, 2^32+5) = %d, want %d", got, want)
	}
}

func TestBytesFromInts(t *testing.T) {
	got, err := BytesFromInts([]int{0, 104, 105, 255})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "\x00hi\xff" {
		t.Errorf("BytesFromInts = %q", got)
	}

	for _, values := range [][]int{{256}, {1, -1}, {0, 1, 1000}} {
		if _, err := BytesFromInts(values); !errors.Is(err, ErrInvalidByte) {
			t.Errorf("BytesFromInts(%v) error = %v, want ErrInvalidByte", values, err)
		}
	}

	empty, err := BytesFromInts(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("BytesFromInts(nil) = %v, %v", empty, err)
	}
}
