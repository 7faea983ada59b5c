package chord

import (
	"errors"
	"strings"

	"github.com/DJBen/MusicTheory/interval"
	"golang.org/x/exp/slices"
)

// Parts is the staging form of a ChordType: fill it in, then hand it to
// New. The zero Fifth is a perfect fifth.
type Parts struct {
	Third      Third
	Fifth      Fifth
	Sixth      Sixth
	Seventh    Seventh
	Suspension Suspension
	Extensions []Extension
}

// ChordType describes which parts a chord is built from, independent of
// its root. Two chord types are equal when they produce the same
// intervals; compare them with Equal.
type ChordType struct {
	third      Third
	fifth      Fifth
	sixth      Sixth
	seventh    Seventh
	suspension Suspension
	extensions []Extension
}

var ErrNoChord = errors.New("intervals do not describe a chord")

// New builds a chord type from its parts. A lone extension decides whether
// it is stacked or added: with a seventh present, an eleventh brings in the
// ninth and a thirteenth brings in the ninth and eleventh; without one it
// is an added tone and nothing else is implied.
func New(p Parts) ChordType {
	t := ChordType{
		third:      p.Third,
		fifth:      p.Fifth,
		sixth:      p.Sixth,
		seventh:    p.Seventh,
		suspension: p.Suspension,
		extensions: slices.Clone(p.Extensions),
	}
	if len(t.extensions) == 1 {
		ext := &t.extensions[0]
		ext.Added = t.seventh == SeventhNone
		if !ext.Added {
			switch ext.Type {
			case Eleventh:
				t.extensions = append(t.extensions, Extension{Type: Ninth})
			case Thirteenth:
				t.extensions = append(t.extensions, Extension{Type: Ninth}, Extension{Type: Eleventh})
			}
		}
	}
	return t
}

// FromIntervals classifies each interval above the root into the first
// part it fits, trying third, fifth, sixth, seventh, suspension and
// extension in that order. Intervals that fit nowhere are dropped. It
// fails with ErrNoChord unless at least a third or a fifth is found.
func FromIntervals(intervals []interval.Interval) (ChordType, error) {
	p := Parts{Fifth: FifthNone}
	for _, i := range intervals {
		if i.Semitones == 0 {
			continue
		}
		if third, ok := thirdFromInterval(i); ok {
			p.Third = third
		} else if fifth, ok := fifthFromInterval(i); ok {
			p.Fifth = fifth
		} else if i.Equal(interval.MajorSixth) {
			p.Sixth = SixthMajor
		} else if seventh, ok := seventhFromInterval(i); ok {
			p.Seventh = seventh
		} else if sus, ok := suspensionFromInterval(i); ok {
			p.Suspension = sus
		} else if ext, ok := extensionFromInterval(i); ok {
			p.Extensions = append(p.Extensions, ext)
		}
	}
	if p.Third == ThirdNone && p.Fifth == FifthNone {
		return ChordType{}, ErrNoChord
	}
	return New(p), nil
}

func thirdFromInterval(i interval.Interval) (Third, bool) {
	for _, t := range Thirds {
		if t.Interval().Equal(i) {
			return t, true
		}
	}
	return ThirdNone, false
}

func fifthFromInterval(i interval.Interval) (Fifth, bool) {
	for _, f := range Fifths {
		if f.Interval().Equal(i) {
			return f, true
		}
	}
	return FifthNone, false
}

func seventhFromInterval(i interval.Interval) (Seventh, bool) {
	for _, s := range Sevenths {
		if s.Interval().Equal(i) {
			return s, true
		}
	}
	return SeventhNone, false
}

func suspensionFromInterval(i interval.Interval) (Suspension, bool) {
	for _, s := range Suspensions {
		if s.Interval().Equal(i) {
			return s, true
		}
	}
	return SusNone, false
}

func (t ChordType) Third() Third           { return t.third }
func (t ChordType) Fifth() Fifth           { return t.fifth }
func (t ChordType) Sixth() Sixth           { return t.sixth }
func (t ChordType) Seventh() Seventh       { return t.seventh }
func (t ChordType) Suspension() Suspension { return t.suspension }

// Extensions returns a copy of the extensions in the order they were given.
func (t ChordType) Extensions() []Extension {
	return slices.Clone(t.extensions)
}

// Parts returns the staging form, for deriving a new chord type.
func (t ChordType) Parts() Parts {
	return Parts{
		Third:      t.third,
		Fifth:      t.fifth,
		Sixth:      t.sixth,
		Seventh:    t.seventh,
		Suspension: t.suspension,
		Extensions: t.Extensions(),
	}
}

func (t ChordType) sortedExtensions() []Extension {
	exts := t.Extensions()
	slices.SortStableFunc(exts, func(a, b Extension) bool {
		return a.Type < b.Type
	})
	return exts
}

// PresentParts lists the parts the chord type has, in canonical order:
// third, suspension, fifth, sixth, seventh, then extensions from the
// ninth up.
func (t ChordType) PresentParts() []Part {
	var parts []Part
	if t.third != ThirdNone {
		parts = append(parts, t.third)
	}
	if t.suspension != SusNone {
		parts = append(parts, t.suspension)
	}
	if t.fifth != FifthNone {
		parts = append(parts, t.fifth)
	}
	if t.sixth != SixthNone {
		parts = append(parts, t.sixth)
	}
	if t.seventh != SeventhNone {
		parts = append(parts, t.seventh)
	}
	for _, e := range t.sortedExtensions() {
		parts = append(parts, e)
	}
	return parts
}

// Intervals lists the unison followed by the interval of every present
// part in canonical order. Parts that sound the same, such as a sixth and
// a diminished seventh, contribute one interval.
func (t ChordType) Intervals() []interval.Interval {
	res := []interval.Interval{interval.Unison}
	for _, p := range t.PresentParts() {
		i := p.Interval()
		if slices.IndexFunc(res, i.Equal) < 0 {
			res = append(res, i)
		}
	}
	return res
}

// HasParts reports whether every given part's interval is in the chord.
func (t ChordType) HasParts(parts ...Part) bool {
	intervals := t.Intervals()
	for _, p := range parts {
		if slices.IndexFunc(intervals, p.Interval().Equal) < 0 {
			return false
		}
	}
	return true
}

func semitoneSet(intervals []interval.Interval) []int {
	res := make([]int, len(intervals))
	for i, iv := range intervals {
		res[i] = iv.Semitones
	}
	slices.Sort(res)
	return res
}

// Equal compares the sounding intervals of both chord types, not the parts
// that produced them.
func (t ChordType) Equal(o ChordType) bool {
	return slices.Equal(semitoneSet(t.Intervals()), semitoneSet(o.Intervals()))
}

// All enumerates every combination of third, fifth, optional sixth,
// optional seventh, optional suspension and a non-empty set of extensions.
func All() []ChordType {
	var exts [][]Extension
	for n := 1; n <= len(ExtensionTypes); n++ {
		for _, combo := range combinations(ExtensionTypes, n) {
			set := make([]Extension, len(combo))
			for i, et := range combo {
				set[i] = Extension{Type: et}
			}
			exts = append(exts, set)
		}
	}
	sixths := []Sixth{SixthMajor, SixthNone}
	sevenths := append(slices.Clone(Sevenths), SeventhNone)
	suspensions := append(slices.Clone(Suspensions), SusNone)

	var all []ChordType
	for _, third := range Thirds {
		for _, fifth := range Fifths {
			for _, sixth := range sixths {
				for _, seventh := range sevenths {
					for _, sus := range suspensions {
						for _, ext := range exts {
							all = append(all, New(Parts{
								Third:      third,
								Fifth:      fifth,
								Sixth:      sixth,
								Seventh:    seventh,
								Suspension: sus,
								Extensions: ext,
							}))
						}
					}
				}
			}
		}
	}
	return all
}

// combinations picks n elements without repetition, keeping their order.
func combinations[T any](elems []T, n int) [][]T {
	if n > len(elems) {
		return nil
	}
	if n == 0 {
		return [][]T{{}}
	}
	var res [][]T
	for i, e := range elems {
		for _, rest := range combinations(elems[i+1:], n-1) {
			res = append(res, append([]T{e}, rest...))
		}
	}
	return res
}

// Notation renders the chord symbol suffix, e.g. "m7" or "7(♭9/♯11)".
func (t ChordType) Notation() string {
	seventh := t.seventh.Notation()
	sixth := ""
	if t.sixth != SixthNone {
		sixth = t.sixth.Notation()
		if t.seventh != SeventhNone {
			sixth += "/"
		}
	}
	sus := t.suspension.Notation()

	exts := t.sortedExtensions()
	extension := ""
	if len(exts) > 0 {
		single := true
		for _, e := range exts[:len(exts)-1] {
			if e.Accidental != 0 {
				single = false
			}
		}
		if single {
			extension = "(" + exts[len(exts)-1].Notation() + ")"
		} else {
			tokens := make([]string, len(exts))
			for i, e := range exts {
				tokens[i] = e.Notation()
			}
			extension = "(" + strings.Join(tokens, "/") + ")"
		}
	}

	var third, fifth string
	switch {
	case t.third != ThirdNone && t.fifth != FifthNone:
		third, fifth = t.third.Notation(), t.fifth.Notation()
	case t.fifth != FifthNone:
		fifth = t.fifth.Notation()
		if t.fifth == FifthPerfect {
			fifth = "5"
		}
	case t.third != ThirdNone:
		third, fifth = t.third.Notation(), "(no 5)"
	}

	if t.seventh != SeventhNone {
		if t.seventh == SeventhMajor && len(exts) > 0 {
			seventh = ""
			if t.sixth != SixthNone {
				sixth = t.sixth.Notation()
			}
		}
		if t.fifth == FifthAugmented || t.fifth == FifthDiminished {
			return third + sixth + seventh + "(" + third + ")" + sus + extension
		}
	}
	return third + fifth + sixth + seventh + sus + extension
}

// Description spells the chord type out in words, e.g. "Minor Dominant 7th".
func (t ChordType) Description() string {
	var third, fifth string
	switch {
	case t.third != ThirdNone && t.fifth != FifthNone:
		third, fifth = t.third.String(), t.fifth.String()
	case t.fifth != FifthNone:
		third, fifth = "(no 3)", t.fifth.String()
	case t.third != ThirdNone:
		third, fifth = t.third.String(), "(no 5)"
	default:
		third, fifth = "(no 3)", "(no 5)"
	}
	words := []string{third, fifth, t.sixth.String(), t.seventh.String(), t.suspension.String()}
	for _, e := range t.sortedExtensions() {
		words = append(words, e.String())
	}
	var res []string
	for _, w := range words {
		if w != "" {
			res = append(res, w)
		}
	}
	return strings.Join(res, " ")
}

func (t ChordType) String() string {
	return t.Notation()
}
