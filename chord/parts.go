package chord

import (
	"strconv"

	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/pitch"
)

// Part is one structural slot of a chord.
type Part interface {
	Interval() interval.Interval
	Notation() string
	String() string
}

type Third int

const (
	ThirdNone Third = iota
	ThirdMajor
	ThirdMinor
)

var Thirds = []Third{ThirdMajor, ThirdMinor}

func (t Third) Interval() interval.Interval {
	if t == ThirdMinor {
		return interval.MinorThird
	}
	return interval.MajorThird
}

func (t Third) Notation() string {
	if t == ThirdMinor {
		return "m"
	}
	return ""
}

func (t Third) String() string {
	switch t {
	case ThirdMajor:
		return "Major"
	case ThirdMinor:
		return "Minor"
	}
	return ""
}

// Fifth is the chord's fifth. The zero value is a perfect fifth, which is
// what a chord has unless told otherwise; FifthNone drops it.
type Fifth int

const (
	FifthPerfect Fifth = iota
	FifthDiminished
	FifthAugmented
	FifthNone
)

var Fifths = []Fifth{FifthPerfect, FifthDiminished, FifthAugmented}

func (f Fifth) Interval() interval.Interval {
	switch f {
	case FifthDiminished:
		return interval.DiminishedFifth
	case FifthAugmented:
		return interval.AugmentedFifth
	}
	return interval.PerfectFifth
}

func (f Fifth) Notation() string {
	switch f {
	case FifthDiminished:
		return "°"
	case FifthAugmented:
		return "+"
	}
	return ""
}

func (f Fifth) String() string {
	switch f {
	case FifthDiminished:
		return "Diminished"
	case FifthAugmented:
		return "Augmented"
	}
	return ""
}

type Sixth int

const (
	SixthNone Sixth = iota
	SixthMajor
)

func (s Sixth) Interval() interval.Interval { return interval.MajorSixth }
func (s Sixth) Notation() string            { return "6" }

func (s Sixth) String() string {
	if s == SixthNone {
		return ""
	}
	return "Sixth"
}

type Seventh int

const (
	SeventhNone Seventh = iota
	SeventhDiminished
	SeventhDominant
	SeventhMajor
)

var Sevenths = []Seventh{SeventhDiminished, SeventhDominant, SeventhMajor}

func (s Seventh) Interval() interval.Interval {
	switch s {
	case SeventhDiminished:
		return interval.DiminishedSeventh
	case SeventhMajor:
		return interval.MajorSeventh
	}
	return interval.MinorSeventh
}

func (s Seventh) Notation() string {
	switch s {
	case SeventhDiminished:
		return "°7"
	case SeventhMajor:
		return "M7"
	case SeventhDominant:
		return "7"
	}
	return ""
}

func (s Seventh) String() string {
	switch s {
	case SeventhDiminished:
		return "Diminished 7th"
	case SeventhMajor:
		return "Major 7th"
	case SeventhDominant:
		return "Dominant 7th"
	}
	return ""
}

type Suspension int

const (
	SusNone Suspension = iota
	Sus2
	Sus4
)

var Suspensions = []Suspension{Sus2, Sus4}

func (s Suspension) Interval() interval.Interval {
	if s == Sus2 {
		return interval.MajorSecond
	}
	return interval.PerfectFourth
}

func (s Suspension) Notation() string {
	switch s {
	case Sus2:
		return "(sus2)"
	case Sus4:
		return "(sus4)"
	}
	return ""
}

func (s Suspension) String() string {
	switch s {
	case Sus2:
		return "Suspended 2nd"
	case Sus4:
		return "Suspended 4th"
	}
	return ""
}

type ExtensionType int

const (
	Ninth      ExtensionType = 9
	Eleventh   ExtensionType = 11
	Thirteenth ExtensionType = 13
)

var ExtensionTypes = []ExtensionType{Ninth, Eleventh, Thirteenth}

func (e ExtensionType) String() string {
	return strconv.Itoa(int(e)) + "th"
}

// Extension is a ninth, eleventh or thirteenth, optionally flatted or
// sharped. Added marks an extension that stands on its own ("add9")
// instead of implying the stacked sevenths and lower extensions below it.
type Extension struct {
	Type       ExtensionType
	Accidental pitch.Accidental
	Added      bool
}

var extensionIntervals = map[ExtensionType][3]interval.Interval{
	Ninth:      {interval.MinorNinth, interval.MajorNinth, interval.AugmentedNinth},
	Eleventh:   {interval.DiminishedEleventh, interval.PerfectEleventh, interval.AugmentedEleventh},
	Thirteenth: {interval.MinorThirteenth, interval.MajorThirteenth, interval.AugmentedThirteenth},
}

func (e Extension) Interval() interval.Interval {
	ivs := extensionIntervals[e.Type]
	switch e.Accidental {
	case pitch.Flat:
		return ivs[0]
	case pitch.Natural:
		return ivs[1]
	case pitch.Sharp:
		return ivs[2]
	}
	natural := ivs[1]
	return interval.Interval{
		Quality:   interval.Custom,
		Degree:    natural.Degree,
		Semitones: natural.Semitones + e.Accidental.Halfsteps(),
	}
}

func (e Extension) Notation() string {
	prefix := ""
	if e.Added {
		prefix = "add"
	}
	return prefix + e.Accidental.String() + strconv.Itoa(int(e.Type))
}

func (e Extension) String() string {
	desc := e.Type.String()
	switch {
	case e.Accidental < 0:
		desc = "Flat " + desc
	case e.Accidental > 0:
		desc = "Sharp " + desc
	}
	if e.Added {
		desc = "Added " + desc
	}
	return desc
}

// extensionFromInterval classifies an interval above the root as one of
// the flat, natural or sharp extensions.
func extensionFromInterval(i interval.Interval) (Extension, bool) {
	for _, t := range ExtensionTypes {
		for n, acc := range []pitch.Accidental{pitch.Flat, pitch.Natural, pitch.Sharp} {
			if extensionIntervals[t][n].Equal(i) {
				return Extension{Type: t, Accidental: acc}, true
			}
		}
	}
	return Extension{}, false
}
