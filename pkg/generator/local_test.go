package generator

import "testing"

func TestLocalNumberShape(t *testing.T) {
	g := NewLocalNumberGenerator()

	for i := 0; i < 200; i++ {
		n, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if len(n) != 9 {
			t.Fatalf("Generate() = %q, want length 9", n)
		}
		if n[0] != '9' {
			t.Fatalf("Generate() = %q, want leading 9", n)
		}
		for j := 0; j < len(n); j++ {
			if n[j] < '0' || n[j] > '9' {
				t.Fatalf("Generate() = %q, contains non-digit at %d", n, j)
			}
		}
		if IsTrivial(n) {
			t.Fatalf("Generate() = %q, classified as trivial", n)
		}
	}
}
