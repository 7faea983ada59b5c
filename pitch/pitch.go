package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DJBen/MusicTheory/interval"
)

// Pitch is a spelled key in a given octave. Octave 4 holds middle C (MIDI 60).
type Pitch struct {
	Key    Key
	Octave int
}

func New(k Key, octave int) Pitch {
	return Pitch{Key: k, Octave: octave}
}

// FromMIDI spells a MIDI note number, using sharps or flats for black keys.
func FromMIDI(note int, preferSharps bool) Pitch {
	return Pitch{
		Key:    KeyFromChromatic(note, preferSharps),
		Octave: floorDiv(note, 12) - 1,
	}
}

// RawValue is the MIDI note number. Accidentals are not wrapped, so B♯3
// and C4 both give 60.
func (p Pitch) RawValue() int {
	return p.Key.Letter.Semitones() + p.Key.Accidental.Halfsteps() + (p.Octave+1)*12
}

// Equal compares enharmonically: C♯4 equals D♭4.
func (p Pitch) Equal(o Pitch) bool {
	return p.RawValue() == o.RawValue()
}

// ExactEqual additionally requires the same spelling and octave.
func (p Pitch) ExactEqual(o Pitch) bool {
	return p.Key == o.Key && p.Octave == o.Octave
}

func (p Pitch) Less(o Pitch) bool {
	return p.RawValue() < o.RawValue()
}

// Frequency in hertz, tuned to A4 = 440Hz.
func (p Pitch) Frequency() float64 {
	return 440 * math.Pow(2, float64(p.RawValue()-69)/12)
}

func (p Pitch) AddSemitones(n int) Pitch {
	return FromMIDI(p.RawValue()+n, true)
}

// Add transposes up by the interval. The interval's degree picks the
// letter, its semitones pick the sounding pitch and the accidental makes
// up the difference, so a major third above D is F♯ while a diminished
// fourth above D is G♭.
func (p Pitch) Add(i interval.Interval) Pitch {
	steps := i.Degree - 1
	if steps < 0 {
		steps = 0
	}
	if i.Semitones < 0 {
		steps = -steps
	}
	return p.transpose(steps, i.Semitones)
}

// Sub transposes down by the interval, mirroring Add.
func (p Pitch) Sub(i interval.Interval) Pitch {
	steps := i.Degree - 1
	if steps < 0 {
		steps = 0
	}
	if i.Semitones < 0 {
		steps = -steps
	}
	return p.transpose(-steps, -i.Semitones)
}

func (p Pitch) transpose(steps, semitones int) Pitch {
	target := p.RawValue() + semitones
	idx := p.diatonicIndex() + steps
	octave := floorDiv(idx, 7)
	letter := Letter(idx - octave*7)
	natural := letter.Semitones() + (octave+1)*12
	return Pitch{
		Key:    Key{Letter: letter, Accidental: Accidental(target - natural)},
		Octave: octave,
	}
}

// diatonicIndex counts letters from C of octave zero, ignoring accidentals.
func (p Pitch) diatonicIndex() int {
	return p.Octave*7 + int(p.Key.Letter)
}

// Distance returns the interval between two pitches regardless of their
// order. The degree comes from the letter names and the quality from how
// the upper pitch sits against the major scale of the lower one.
func Distance(a, b Pitch) interval.Interval {
	top, bottom := a, b
	if top.RawValue() < bottom.RawValue() ||
		(top.RawValue() == bottom.RawValue() && top.diatonicIndex() < bottom.diatonicIndex()) {
		top, bottom = bottom, top
	}
	diff := top.RawValue() - bottom.RawValue()
	steps := top.diatonicIndex() - bottom.diatonicIndex()
	if steps < 0 {
		return interval.FromSemitones(diff)
	}
	degree := steps + 1

	octaves := make([]int, 0, top.Octave-bottom.Octave+1)
	for o := bottom.Octave; o <= top.Octave; o++ {
		octaves = append(octaves, o)
	}
	major := NewScale(Major, bottom.Key)
	isMajor := !interval.IsPerfectDegree(degree)
	if major.Contains(top, octaves...) {
		q := interval.Perfect
		if isMajor {
			q = interval.Major
		}
		return interval.Interval{Quality: q, Degree: degree, Semitones: diff}
	}

	offset := diff - interval.MajorOrPerfectSemitones(degree)
	q := interval.Augmented
	if offset < 0 {
		if isMajor {
			q = interval.Minor
		} else {
			q = interval.Diminished
		}
	}
	return interval.Interval{Quality: q, Degree: degree, Semitones: diff}
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%d", p.Key, p.Octave)
}

// ParsePitch parses strings such as "C4", "F♯3" or "Bb-1".
func ParsePitch(s string) (Pitch, error) {
	k, rest, err := SplitKey(strings.TrimSpace(s))
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid octave in pitch %q", s)
	}
	return Pitch{Key: k, Octave: octave}, nil
}
