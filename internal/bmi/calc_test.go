package bmi

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		height string
		weight string
		want   float64
		wantOK bool
	}{
		{"typical", "170", "65", 22.49, true},
		{"rounds up", "175", "70", 22.86, true},
		{"tie to even", "160", "50", 19.53, true},
		{"surrounding whitespace", " 170 ", "65\n", 22.49, true},
		{"decimal input", "180.5", "80.2", 24.62, true},
		{"zero weight is a value", "170", "0", 0, true},
		{"not a number", "abc", "65", 0, false},
		{"weight not a number", "170", "sixty", 0, false},
		{"empty height", "", "65", 0, false},
		{"zero height", "0", "65", 0, false},
		{"negative zero height", "-0", "65", 0, false},
		{"infinity", "inf", "65", 0, false},
		{"nan weight", "170", "NaN", 0, false},
		{"underflowing height", "1e-200", "65", 0, false},
		{"overflowing quotient", "1e-100", "1e300", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compute(tt.height, tt.weight)
			if ok != tt.wantOK {
				t.Fatalf("Compute(%q, %q) ok = %v, want %v", tt.height, tt.weight, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Compute(%q, %q) = %v, want %v", tt.height, tt.weight, got, tt.want)
			}
		})
	}
}

// Negative height squares away; positivity is the caller's job.
func TestComputeNegativeHeightPassesThrough(t *testing.T) {
	got, ok := Compute("-170", "65")
	if !ok {
		t.Fatal("Compute(-170, 65) should succeed")
	}
	if got != 22.49 {
		t.Errorf("Compute(-170, 65) = %v, want 22.49", got)
	}
}

func TestComputeMatchesFormula(t *testing.T) {
	for h := 50; h <= 250; h += 7 {
		for w := 3; w <= 300; w += 11 {
			hs := FormatValue(float64(h))
			ws := FormatValue(float64(w))
			got, ok := Compute(hs, ws)
			if !ok {
				t.Fatalf("Compute(%s, %s) failed", hs, ws)
			}
			hm := float64(h) / 100
			want := Round2(float64(w) / (hm * hm))
			if got != want {
				t.Errorf("Compute(%s, %s) = %v, want %v", hs, ws, got, want)
			}
			if math.Abs(got-float64(w)/(hm*hm)) > 0.005+1e-9 {
				t.Errorf("Compute(%s, %s) = %v is not within rounding of the exact value", hs, ws, got)
			}
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{22.491349480968857, 22.49},
		{22.857142857142858, 22.86},
		{19.53125, 19.53},
		{0.125, 0.12},
		{0.375, 0.38},
		{24, 24},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	if v, err := ParseDecimal(" 62.5 "); err != nil || v != 62.5 {
		t.Errorf("ParseDecimal(62.5) = %v, %v", v, err)
	}
	for _, s := range []string{"", "abc", "+Inf", "nan", "1,5"} {
		if _, err := ParseDecimal(s); err == nil {
			t.Errorf("ParseDecimal(%q) should fail", s)
		}
	}
}
