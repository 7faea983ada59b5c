package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// Accidental is a signed alteration in halfsteps: negative for flats,
// positive for sharps.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Flats returns an accidental lowering by amount halfsteps. A negative
// amount is a caller error.
func Flats(amount int) Accidental {
	if amount < 0 {
		panic("pitch.Flats: negative amount " + strconv.Itoa(amount))
	}
	return Accidental(-amount)
}

// Sharps returns an accidental raising by amount halfsteps. A negative
// amount is a caller error.
func Sharps(amount int) Accidental {
	if amount < 0 {
		panic("pitch.Sharps: negative amount " + strconv.Itoa(amount))
	}
	return Accidental(amount)
}

func (a Accidental) Halfsteps() int {
	return int(a)
}

// String renders the accidental the way it is written after a letter;
// natural renders as nothing.
func (a Accidental) String() string {
	switch {
	case a == 0:
		return ""
	case a == Flat:
		return "♭"
	case a == DoubleFlat:
		return "𝄫"
	case a == Sharp:
		return "♯"
	case a == DoubleSharp:
		return "𝄪"
	case a < 0:
		return strings.Repeat("♭", int(-a))
	}
	return strings.Repeat("♯", int(a))
}

// Notation is like String but spells out the natural sign.
func (a Accidental) Notation() string {
	if a == Natural {
		return "♮"
	}
	return a.String()
}

var accidentalGlyphs = map[rune]Accidental{
	'♭': Flat,
	'b': Flat,
	'𝄫': DoubleFlat,
	'♯': Sharp,
	'#': Sharp,
	'𝄪': DoubleSharp,
	'♮': Natural,
}

// ParseAccidental reads a run of accidental glyphs such as "#", "bb", "♭"
// or "𝄪". The empty string is natural.
func ParseAccidental(s string) (Accidental, error) {
	var a Accidental
	for _, r := range s {
		v, ok := accidentalGlyphs[r]
		if !ok {
			return Natural, fmt.Errorf("invalid accidental %q", s)
		}
		a += v
	}
	return a, nil
}
