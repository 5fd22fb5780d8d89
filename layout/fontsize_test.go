package layout

import (
	"math"
	"testing"
)

func TestResolveFontSizePercentOfHeight(t *testing.T) {
	heights := []int{480, 720, 1000, 1080, 1920}
	for _, h := range heights {
		for v := 0.5; v <= 20; v += 0.5 {
			want := int(math.Round(v / 100 * float64(h)))
			if got := ResolveFontSize(v, h); got != want {
				t.Fatalf("ResolveFontSize(%v, %d) = %d; want %d", v, h, got, want)
			}
		}
	}
}

func TestResolveFontSizeAbsolute(t *testing.T) {
	for _, v := range []float64{20.5, 21, 48, 72, 200} {
		if got := ResolveFontSize(v, 1080); got != int(math.Round(v)) {
			t.Fatalf("ResolveFontSize(%v) = %d; want unchanged", v, got)
		}
	}
}

func TestResolveFontSizeScenario(t *testing.T) {
	if got := ResolveFontSize(10, 1080); got != 108 {
		t.Fatalf("10 on 1080 = %d; want 108", got)
	}
	if got := ResolveFontSize(6, 1000); got != 60 {
		t.Fatalf("6 on 1000 = %d; want 60", got)
	}
	if got := ResolveFontSize(20, 1000); got != 200 {
		t.Fatalf("cutoff value should be a percentage, got %d", got)
	}
}

func TestResolveFontSizeMonotonic(t *testing.T) {
	prev := ResolveFontSize(0, 720)
	for v := 0.25; v <= 20; v += 0.25 {
		got := ResolveFontSize(v, 720)
		if got < prev {
			t.Fatalf("not monotonic at %v: %d < %d", v, got, prev)
		}
		prev = got
	}
}

func TestLineHeight(t *testing.T) {
	if got := LineHeight(60); math.Abs(got-72) > 1e-9 {
		t.Fatalf("LineHeight(60) = %v; want 72", got)
	}
}
