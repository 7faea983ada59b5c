package chord

import (
	"strconv"
	"strings"

	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/pitch"
	"golang.org/x/exp/slices"
)

// Chord is a chord type rooted on a key, optionally inverted.
type Chord struct {
	root      pitch.Key
	typ       ChordType
	inversion int
}

func NewChord(root pitch.Key, t ChordType) Chord {
	return Chord{root: root, typ: t}
}

func (c Chord) Root() pitch.Key { return c.root }
func (c Chord) Type() ChordType { return c.typ }
func (c Chord) Inversion() int  { return c.inversion }

func (c Chord) Intervals() []interval.Interval {
	return c.typ.Intervals()
}

// Invert returns the chord in its nth inversion, n counted modulo the
// number of chord tones. A negative n is a caller error.
func (c Chord) Invert(n int) Chord {
	if n < 0 {
		panic("chord.Invert: negative inversion " + strconv.Itoa(n))
	}
	c.inversion = n % len(c.typ.Intervals())
	return c
}

// Pitches lays the chord out upwards from the root in the given octave,
// spelling every tone from its interval. Each inversion step moves the
// lowest tone up one octave; when that still leaves it at or below the
// current top tone, which happens only for chords spanning more than an
// octave such as C(add9), it keeps rising an octave at a time until it is
// the highest tone.
func (c Chord) Pitches(octave int) []pitch.Pitch {
	root := pitch.New(c.root, octave)
	intervals := c.typ.Intervals()
	ps := make([]pitch.Pitch, len(intervals))
	for i, iv := range intervals {
		ps[i] = root.Add(iv)
	}
	slices.SortStableFunc(ps, func(a, b pitch.Pitch) bool {
		return a.Less(b)
	})

	for i := 0; i < c.inversion; i++ {
		lowest := ps[0]
		top := ps[len(ps)-1]
		lowest.Octave++
		for !top.Less(lowest) {
			lowest.Octave++
		}
		ps = append(ps[1:], lowest)
	}
	return ps
}

// PitchesFor returns the pitches of the given parts, in the order given.
// Asking for a part the chord does not have is a caller error.
func (c Chord) PitchesFor(octave int, parts ...Part) []pitch.Pitch {
	if !c.typ.HasParts(parts...) {
		panic("chord.PitchesFor: " + c.Notation() + " lacks requested parts")
	}
	root := pitch.New(c.root, octave)
	ps := make([]pitch.Pitch, len(parts))
	for i, p := range parts {
		ps[i] = root.Add(p.Interval())
	}
	return ps
}

// Keys spells the chord tones from the bass up.
func (c Chord) Keys() []pitch.Key {
	ps := c.Pitches(1)
	keys := make([]pitch.Key, len(ps))
	for i, p := range ps {
		keys[i] = p.Key
	}
	return keys
}

// Inversions lists the chord in root position and every inversion.
func (c Chord) Inversions() []Chord {
	n := len(c.typ.Intervals())
	res := make([]Chord, n)
	for i := 0; i < n; i++ {
		res[i] = c.Invert(i)
	}
	return res
}

// Transpose moves the root by the interval, keeping type and inversion.
func (c Chord) Transpose(i interval.Interval) Chord {
	c.root = pitch.New(c.root, 4).Add(i).Key
	return c
}

// Equal compares the pitch classes of both chords from the bass up, so a
// chord equals any other spelling or construction that sounds the same
// voicing, and differs from its own inversions.
func (c Chord) Equal(o Chord) bool {
	a, b := c.Keys(), o.Keys()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEnharmonic(b[i]) {
			return false
		}
	}
	return true
}

// Notation is the chord symbol, with a slash bass for inversions: "Cm7/E♭".
func (c Chord) Notation() string {
	n := c.root.String() + c.typ.Notation()
	if c.inversion > 0 {
		n += "/" + c.Keys()[0].String()
	}
	return n
}

var inversionNames = []string{"", "1st", "2nd", "3rd"}

// Description spells the chord out, e.g. "C Minor Dominant 7th 1st Inversion".
func (c Chord) Description() string {
	words := []string{c.root.String(), c.typ.Description()}
	if c.inversion > 0 {
		name := strconv.Itoa(c.inversion) + "th"
		if c.inversion < len(inversionNames) {
			name = inversionNames[c.inversion]
		}
		words = append(words, name+" Inversion")
	}
	return strings.Join(words, " ")
}

func (c Chord) String() string {
	return c.Notation()
}

// Progression is a sequence of chords.
type Progression []Chord

// ParseProgression parses chord symbols separated by whitespace, dashes or
// bar lines, e.g. "C - Am - F - G7".
func ParseProgression(s string) (Progression, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '-' || r == '|' || r == ','
	})
	res := make(Progression, 0, len(fields))
	for _, f := range fields {
		c, err := ParseChord(f)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (p Progression) Transpose(i interval.Interval) Progression {
	res := make(Progression, len(p))
	for n, c := range p {
		res[n] = c.Transpose(i)
	}
	return res
}

func (p Progression) Equal(o Progression) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (p Progression) String() string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Notation()
	}
	return strings.Join(names, " - ")
}
