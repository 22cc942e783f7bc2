package hashmix

import "testing"

func TestMixKnownValues(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{0, 0},
		{1, 0xb456bcfc34c2cb2c},
		{0x123456789ABCDEF0, 0x18b8c062f6f42398},
	}

	for _, tt := range tests {
		if got := Mix(tt.in); got != tt.want {
			t.Errorf("Mix(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestMixDeterministic(t *testing.T) {
	for _, x := range []uint64{0, 1, 42, 1 << 63, ^uint64(0)} {
		if Mix(x) != Mix(x) {
			t.Fatalf("Mix(%#x) not deterministic", x)
		}
	}
}

func TestBucketIndexAndSignKnownValues(t *testing.T) {
	h := Mix(0x1234)
	if h != 11969492833970939502 {
		t.Fatalf("Mix(0x1234) = %d, want 11969492833970939502", h)
	}

	tests := []struct {
		dim      int
		salt     int
		wantIdx  int
		wantSign int
	}{
		{1024, 0, 635, 1},
		{1024, 1, 580, -1},
		{10, 2, 3, -1},
	}

	for _, tt := range tests {
		if got := BucketIndex(h, tt.dim, tt.salt); got != tt.wantIdx {
			t.Errorf("BucketIndex(h, %d, %d) = %d, want %d", tt.dim, tt.salt, got, tt.wantIdx)
		}
		if got := BucketSign(h, tt.salt); got != tt.wantSign {
			t.Errorf("BucketSign(h, %d) = %d, want %d", tt.salt, got, tt.wantSign)
		}
	}
}

func TestBucketIndexRange(t *testing.T) {
	for salt := 0; salt < 8; salt++ {
		for _, dim := range []int{1, 2, 7, 1024} {
			for x := uint64(0); x < 1000; x++ {
				idx := BucketIndex(Mix(x), dim, salt)
				if idx < 0 || idx >= dim {
					t.Fatalf("BucketIndex out of range: %d for dim %d", idx, dim)
				}
			}
		}
	}
}

func TestBucketSignValues(t *testing.T) {
	pos, neg := 0, 0
	for x := uint64(0); x < 2000; x++ {
		switch BucketSign(Mix(x), 0) {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatal("BucketSign returned value outside {+1, -1}")
		}
	}

	// SHA-1 derived bits should be close to balanced over 2000 samples.
	if pos < 800 || neg < 800 {
		t.Errorf("sign distribution heavily skewed: +1=%d -1=%d", pos, neg)
	}
}
