package rapidhash_test

import (
	"testing"

	"github.com/segmentio/hashfuncs/rapidhash"
)

func TestSum64(t *testing.T) {
	// Golden values produced by the reference C implementation.
	for _, tt := range []struct {
		name  string
		input string
		seed  uint64
		want  uint64
	}{
		{"zero seed", "hello world", 0, 3397907815814400320},
		{"seed=2023", "hello world", 2023, 11789095433300219990},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := rapidhash.Sum64Seed([]byte(tt.input), tt.seed); got != tt.want {
				t.Errorf("Sum64Seed: want=%d got=%d", tt.want, got)
			}
		})
	}
	if got, want := rapidhash.Sum64([]byte("hello world")), uint64(3397907815814400320); got != want {
		t.Errorf("Sum64: want=%d got=%d", want, got)
	}
}

func TestSum64LengthClasses(t *testing.T) {
	// Digests pinned across the small, medium and bulk input paths so a
	// regression in any length class is caught, not just the published
	// vectors above.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i * 131)
	}
	for _, tt := range []struct {
		n    int
		want uint64
	}{
		{0, 5621331310894516774},
		{1, 9713595378912556722},
		{3, 7853153918720545758},
		{4, 2467673627587325644},
		{7, 2939296315105785299},
		{8, 8930682861768324111},
		{11, 17358803795834434401},
		{16, 12930193560265081406},
		{17, 9794505409436690158},
		{32, 5372487721017060567},
		{48, 17774016901668081333},
		{49, 12948355649253114808},
		{96, 13786284238753516360},
		{112, 9702154733659116431},
		{113, 14390199211300972599},
		{224, 2614200113037496963},
		{225, 2791917520941825894},
		{256, 6497725220797181789},
	} {
		if got := rapidhash.Sum64Seed(input[:tt.n], 7); got != tt.want {
			t.Errorf("length %d: want=%d got=%d", tt.n, tt.want, got)
		}
	}
}

func TestSum64ZeroSeed(t *testing.T) {
	// The unseeded entry point is the seeded one applied to a zero seed,
	// for every length class of the algorithm.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i * 131)
	}
	for _, n := range []int{0, 1, 3, 4, 8, 16, 17, 32, 33, 48, 49, 96, 112, 113, 225, 256} {
		b := input[:n]
		if got, want := rapidhash.Sum64(b), rapidhash.Sum64Seed(b, 0); got != want {
			t.Errorf("length %d: Sum64=%d Sum64Seed(0)=%d", n, got, want)
		}
	}
}

func TestSum64Distribution(t *testing.T) {
	// Smoke check that lengths crossing the small/medium/bulk boundaries
	// all produce distinct digests.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	seen := make(map[uint64]int, len(input))
	for n := 0; n <= len(input); n++ {
		h := rapidhash.Sum64(input[:n])
		if m, dup := seen[h]; dup {
			t.Fatalf("lengths %d and %d collided on digest %d", m, n, h)
		}
		seen[h] = n
	}
}

func TestSum64SeedSensitivity(t *testing.T) {
	b := []byte("hello world")
	if rapidhash.Sum64Seed(b, 1) == rapidhash.Sum64Seed(b, 2) {
		t.Error("seeds 1 and 2 produced the same digest")
	}
}

func BenchmarkSum64(b *testing.B) {
	for _, bb := range []struct {
		name string
		n    int64
	}{
		{"4B", 4},
		{"16B", 16},
		{"100B", 100},
		{"4KB", 4e3},
	} {
		in := make([]byte, bb.n)
		for i := range in {
			in[i] = byte(i)
		}
		b.Run(bb.name, func(b *testing.B) {
			b.SetBytes(bb.n)
			for i := 0; i < b.N; i++ {
				_ = rapidhash.Sum64(in)
			}
		})
	}
}
