package pitch

import "github.com/DJBen/MusicTheory/interval"

// ScaleType is the interval pattern of a scale, measured from its root.
type ScaleType struct {
	Name      string
	Intervals []interval.Interval
}

var (
	Major = ScaleType{"Major", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh,
	}}
	NaturalMinor = ScaleType{"Minor", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MinorSixth, interval.MinorSeventh,
	}}
	HarmonicMinor = ScaleType{"Harmonic Minor", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MinorSixth, interval.MajorSeventh,
	}}
	MelodicMinor = ScaleType{"Melodic Minor", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh,
	}}
	Dorian = ScaleType{"Dorian", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MinorSeventh,
	}}
	Phrygian = ScaleType{"Phrygian", []interval.Interval{
		interval.Unison, interval.MinorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MinorSixth, interval.MinorSeventh,
	}}
	Lydian = ScaleType{"Lydian", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MajorThird, interval.AugmentedFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MajorSeventh,
	}}
	Mixolydian = ScaleType{"Mixolydian", []interval.Interval{
		interval.Unison, interval.MajorSecond, interval.MajorThird, interval.PerfectFourth,
		interval.PerfectFifth, interval.MajorSixth, interval.MinorSeventh,
	}}
	Locrian = ScaleType{"Locrian", []interval.Interval{
		interval.Unison, interval.MinorSecond, interval.MinorThird, interval.PerfectFourth,
		interval.DiminishedFifth, interval.MinorSixth, interval.MinorSeventh,
	}}
)

var ScaleTypes = []ScaleType{Major, NaturalMinor, HarmonicMinor, MelodicMinor, Dorian, Phrygian, Lydian, Mixolydian, Locrian}

type Scale struct {
	Type ScaleType
	Key  Key
}

func NewScale(t ScaleType, k Key) Scale {
	return Scale{Type: t, Key: k}
}

// Keys spells the scale degrees in order.
func (s Scale) Keys() []Key {
	root := Pitch{Key: s.Key, Octave: 0}
	keys := make([]Key, len(s.Type.Intervals))
	for i, iv := range s.Type.Intervals {
		keys[i] = root.Add(iv).Key
	}
	return keys
}

// Pitches lays the scale out once per given octave, each run starting on
// the root in that octave.
func (s Scale) Pitches(octaves ...int) []Pitch {
	var res []Pitch
	for _, o := range octaves {
		root := Pitch{Key: s.Key, Octave: o}
		for _, iv := range s.Type.Intervals {
			res = append(res, root.Add(iv))
		}
	}
	return res
}

// Contains reports whether p, spelling included, appears among the scale
// pitches of the given octaves.
func (s Scale) Contains(p Pitch, octaves ...int) bool {
	for _, sp := range s.Pitches(octaves...) {
		if sp.ExactEqual(p) {
			return true
		}
	}
	return false
}

func (s Scale) String() string {
	return s.Key.String() + " " + s.Type.Name
}
