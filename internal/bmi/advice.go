package bmi

import (
	"fmt"
	"strings"
)

// Category is the health category a BMI value falls into.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
)

// Category boundaries in kg/m². Intervals are half-open: [lo, hi).
const (
	NormalMin     = 18.5
	OverweightMin = 24.0
)

func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case Normal:
		return "Normal"
	case Overweight:
		return "Overweight"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Classify maps any BMI value to exactly one category.
func Classify(v float64) Category {
	switch {
	case v < NormalMin:
		return Underweight
	case v < OverweightMin:
		return Normal
	default:
		return Overweight
	}
}

// Advice is the fixed guidance shown for a category.
type Advice struct {
	Category   Category
	Headline   string
	Diet       string
	Exercise   string // weekly duration and kind
	SeeDoctor  bool
	DoctorNote string
}

// AdviceFor returns the compiled-in advice for c. Unknown values get the
// Overweight advice, matching Classify's upper catch-all.
func AdviceFor(c Category) Advice {
	switch c {
	case Underweight:
		return Advice{
			Category:   Underweight,
			Headline:   "You are underweight",
			Diet:       "Eat more high-protein foods (meat, eggs, beans), nuts and dairy",
			Exercise:   "3-5 hours of gentle exercise (brisk walking, yoga)",
			SeeDoctor:  true,
			DoctorNote: "check for metabolic or nutritional problems",
		}
	case Normal:
		return Advice{
			Category:   Normal,
			Headline:   "Your weight is normal",
			Diet:       "Keep a balanced diet: whole grains, fruit and vegetables, moderate protein",
			Exercise:   "3.5-5 hours of moderate exercise (brisk walking, cycling, swimming)",
			SeeDoctor:  false,
			DoctorNote: "regular check-ups are enough",
		}
	default:
		return Advice{
			Category:   Overweight,
			Headline:   "You are overweight",
			Diet:       "Cut refined sugar and fried food; eat more vegetables, fruit and high-fibre food",
			Exercise:   "5-7 hours of aerobic exercise (running, brisk walking, aerobics)",
			SeeDoctor:  true,
			DoctorNote: "get a cardiovascular health assessment",
		}
	}
}

// Text renders the advice with v in the header line.
func (a Advice) Text(v float64) string {
	doctor := "No"
	if a.SeeDoctor {
		doctor = "Yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "BMI %s: %s\n", FormatValue(v), a.Headline)
	fmt.Fprintf(&b, "Diet: %s\n", a.Diet)
	fmt.Fprintf(&b, "Weekly exercise: %s\n", a.Exercise)
	fmt.Fprintf(&b, "🏥 See a doctor: %s, %s", doctor, a.DoctorNote)
	return b.String()
}

// Advise returns the multi-line advisory text for c with v in the header.
func Advise(c Category, v float64) string {
	return AdviceFor(c).Text(v)
}
