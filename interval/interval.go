package interval

import (
	"errors"
	"fmt"
	"strconv"
)

type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
	Custom
)

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "perfect"
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Augmented:
		return "augmented"
	case Diminished:
		return "diminished"
	}
	return "custom"
}

// Abbrev is the short quality prefix used in interval notation, e.g. "M" in "M3".
func (q Quality) Abbrev() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	case Augmented:
		return "A"
	case Diminished:
		return "d"
	}
	return ""
}

// Interval is the distance between two pitches, expressed both as a scale
// degree with a quality and as a raw number of semitones. Degree is the
// musical number: 1 is a unison, 8 an octave, 9 a ninth.
//
// Two intervals are equal when they span the same number of semitones,
// whatever their spelling. Use Equal rather than ==.
type Interval struct {
	Quality   Quality
	Degree    int
	Semitones int
}

var (
	Unison              = Interval{Perfect, 1, 0}
	MinorSecond         = Interval{Minor, 2, 1}
	MajorSecond         = Interval{Major, 2, 2}
	AugmentedSecond     = Interval{Augmented, 2, 3}
	MinorThird          = Interval{Minor, 3, 3}
	MajorThird          = Interval{Major, 3, 4}
	PerfectFourth       = Interval{Perfect, 4, 5}
	AugmentedFourth     = Interval{Augmented, 4, 6}
	DiminishedFifth     = Interval{Diminished, 5, 6}
	PerfectFifth        = Interval{Perfect, 5, 7}
	AugmentedFifth      = Interval{Augmented, 5, 8}
	MinorSixth          = Interval{Minor, 6, 8}
	MajorSixth          = Interval{Major, 6, 9}
	DiminishedSeventh   = Interval{Diminished, 7, 9}
	MinorSeventh        = Interval{Minor, 7, 10}
	MajorSeventh        = Interval{Major, 7, 11}
	Octave              = Interval{Perfect, 8, 12}
	MinorNinth          = Interval{Minor, 9, 13}
	MajorNinth          = Interval{Major, 9, 14}
	AugmentedNinth      = Interval{Augmented, 9, 15}
	DiminishedEleventh  = Interval{Diminished, 11, 16}
	PerfectEleventh     = Interval{Perfect, 11, 17}
	AugmentedEleventh   = Interval{Augmented, 11, 18}
	MinorThirteenth     = Interval{Minor, 13, 20}
	MajorThirteenth     = Interval{Major, 13, 21}
	AugmentedThirteenth = Interval{Augmented, 13, 22}
)

// canonical maps a semitone count within one octave to its interval.
var canonical = [...]Interval{
	Unison,
	MinorSecond,
	MajorSecond,
	MinorThird,
	MajorThird,
	PerfectFourth,
	DiminishedFifth,
	PerfectFifth,
	MinorSixth,
	MajorSixth,
	MinorSeventh,
	MajorSeventh,
	Octave,
}

// majorOrPerfect holds the semitones of the major or perfect interval for
// simple degrees 1 through 7.
var majorOrPerfect = [...]int{0, 0, 2, 4, 5, 7, 9, 11}

var ErrInvalidQuality = errors.New("invalid interval quality")

// SimpleDegree reduces a compound degree into the range 1..7.
func SimpleDegree(degree int) int {
	if degree < 1 {
		return 1
	}
	return (degree-1)%7 + 1
}

// IsPerfectDegree reports whether the degree takes perfect, rather than
// major/minor, quality: unisons, fourths, fifths and their compounds.
func IsPerfectDegree(degree int) bool {
	switch SimpleDegree(degree) {
	case 1, 4, 5:
		return true
	}
	return false
}

// MajorOrPerfectSemitones returns the semitones of the major or perfect
// interval at the given degree, compound degrees included.
func MajorOrPerfectSemitones(degree int) int {
	if degree < 1 {
		return 0
	}
	octaves := (degree - 1) / 7
	return majorOrPerfect[SimpleDegree(degree)] + 12*octaves
}

// New builds the canonical interval of the given quality and degree.
func New(q Quality, degree int) (Interval, error) {
	if degree < 1 {
		return Interval{}, fmt.Errorf("degree %d: %w", degree, ErrInvalidQuality)
	}
	base := MajorOrPerfectSemitones(degree)
	perfect := IsPerfectDegree(degree)
	switch q {
	case Perfect:
		if !perfect {
			return Interval{}, fmt.Errorf("perfect %s: %w", ordinal(degree), ErrInvalidQuality)
		}
	case Major:
		if perfect {
			return Interval{}, fmt.Errorf("major %s: %w", ordinal(degree), ErrInvalidQuality)
		}
	case Minor:
		if perfect {
			return Interval{}, fmt.Errorf("minor %s: %w", ordinal(degree), ErrInvalidQuality)
		}
		base--
	case Augmented:
		base++
	case Diminished:
		if perfect {
			base--
		} else {
			base -= 2
		}
	default:
		return Interval{}, fmt.Errorf("custom %s: %w", ordinal(degree), ErrInvalidQuality)
	}
	return Interval{Quality: q, Degree: degree, Semitones: base}, nil
}

// MustNew is like New but panics on an illegal quality/degree pair.
func MustNew(q Quality, degree int) Interval {
	i, err := New(q, degree)
	if err != nil {
		panic("interval.MustNew: " + err.Error())
	}
	return i
}

// FromSemitones returns the canonical interval for 0..12 semitones. Any
// other count yields a Custom interval whose degree is taken from the
// octave-reduced magnitude, so that transposing by it still lands on a
// sensible letter.
func FromSemitones(n int) Interval {
	if n >= 0 && n < len(canonical) {
		return canonical[n]
	}
	mag := n
	if mag < 0 {
		mag = -mag
	}
	degree := canonical[mag%12].Degree + 7*(mag/12)
	return Interval{Quality: Custom, Degree: degree, Semitones: n}
}

func Add(a, b Interval) Interval {
	return FromSemitones(a.Semitones + b.Semitones)
}

func Sub(a, b Interval) Interval {
	return FromSemitones(a.Semitones - b.Semitones)
}

// Scale extends the interval by whole octaves: an octave count of 1 leaves
// it unchanged, 2 adds one octave and so on.
func (i Interval) Scale(octaves int) Interval {
	return Interval{
		Quality:   i.Quality,
		Degree:    i.Degree + 7*(octaves-1),
		Semitones: i.Semitones + 12*(octaves-1),
	}
}

// Equal compares enharmonically, by semitones alone.
func (i Interval) Equal(o Interval) bool {
	return i.Semitones == o.Semitones
}

func (i Interval) Less(o Interval) bool {
	return i.Semitones < o.Semitones
}

func (i Interval) Notation() string {
	if i.Quality == Custom {
		return fmt.Sprintf("%d", i.Semitones)
	}
	return fmt.Sprintf("%s%d", i.Quality.Abbrev(), i.Degree)
}

var romanNumerals = [...]string{"i", "ii", "II", "iii", "III", "IV", "v", "V", "vi", "VI", "vii", "VII", "VIII"}

// Roman renders the interval as a roman numeral by its semitones: lower
// case for minor and diminished, upper case for major and perfect. Counts
// outside one octave render as plain numbers.
func (i Interval) Roman() string {
	if i.Semitones >= 0 && i.Semitones < len(romanNumerals) {
		return romanNumerals[i.Semitones]
	}
	return strconv.Itoa(i.Semitones)
}

func (i Interval) String() string {
	if i.Quality == Custom {
		return fmt.Sprintf("%d semitones", i.Semitones)
	}
	switch {
	case i.Quality == Perfect && i.Degree == 1:
		return "unison"
	case i.Quality == Perfect && i.Degree == 8:
		return "octave"
	}
	return i.Quality.String() + " " + ordinal(i.Degree)
}

var degreeNames = map[int]string{
	1:  "unison",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "octave",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelfth",
	13: "thirteenth",
}

func ordinal(degree int) string {
	if name, ok := degreeNames[degree]; ok {
		return name
	}
	suffix := "th"
	switch {
	case degree%100 >= 11 && degree%100 <= 13:
	case degree%10 == 1:
		suffix = "st"
	case degree%10 == 2:
		suffix = "nd"
	case degree%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", degree, suffix)
}

// ParseNotation reads interval notation such as "M3", "P5", "m7", "A4" or
// "d5". A bare number is taken as a semitone count.
func ParseNotation(s string) (Interval, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return FromSemitones(n), nil
	}
	if len(s) < 2 {
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrInvalidQuality)
	}
	var q Quality
	switch s[0] {
	case 'P':
		q = Perfect
	case 'M':
		q = Major
	case 'm':
		q = Minor
	case 'A':
		q = Augmented
	case 'd':
		q = Diminished
	default:
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrInvalidQuality)
	}
	degree, err := strconv.Atoi(s[1:])
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: bad degree: %w", s, err)
	}
	return New(q, degree)
}
