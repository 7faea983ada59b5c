package pitch

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Letter is one of the seven natural note names. Letters move along the
// diatonic axis; accidentals take care of the chromatic one.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var Letters = []Letter{C, D, E, F, G, A, B}

var letterSemitones = [...]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [...]string{"C", "D", "E", "F", "G", "A", "B"}

// Semitones is the natural letter's offset above C.
func (l Letter) Semitones() int {
	return letterSemitones[l]
}

func (l Letter) Next() Letter {
	return l.OffsetBy(1)
}

func (l Letter) Previous() Letter {
	return l.OffsetBy(-1)
}

// OffsetBy moves n letters, wrapping around B/C in either direction.
func (l Letter) OffsetBy(n int) Letter {
	return Letter(floorMod(int(l)+n, 7))
}

func (l Letter) String() string {
	return letterNames[l]
}

func ParseLetter(r rune) (Letter, error) {
	switch r {
	case 'C', 'c':
		return C, nil
	case 'D', 'd':
		return D, nil
	case 'E', 'e':
		return E, nil
	case 'F', 'f':
		return F, nil
	case 'G', 'g':
		return G, nil
	case 'A', 'a':
		return A, nil
	case 'B', 'b':
		return B, nil
	}
	return C, fmt.Errorf("invalid key letter %q", r)
}

// Key is a spelled pitch class: D♭ and C♯ are different keys that sound
// the same.
type Key struct {
	Letter     Letter
	Accidental Accidental
}

func NewKey(l Letter, a Accidental) Key {
	return Key{Letter: l, Accidental: a}
}

// ChromaticOffset is the key's pitch class in 0..11.
func (k Key) ChromaticOffset() int {
	return floorMod(k.Letter.Semitones()+k.Accidental.Halfsteps(), 12)
}

// IsEnharmonic reports whether both keys share a pitch class.
func (k Key) IsEnharmonic(o Key) bool {
	return k.ChromaticOffset() == o.ChromaticOffset()
}

func (k Key) String() string {
	return k.Letter.String() + k.Accidental.String()
}

var (
	KeysWithSharps = []Key{
		{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
		{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
	}
	KeysWithFlats = []Key{
		{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
		{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
	}
)

// KeyFromChromatic spells a pitch class, preferring sharps or flats for
// the black keys.
func KeyFromChromatic(offset int, preferSharps bool) Key {
	if preferSharps {
		return KeysWithSharps[floorMod(offset, 12)]
	}
	return KeysWithFlats[floorMod(offset, 12)]
}

// SplitKey reads the key at the start of s, a letter followed by any
// accidental glyphs, and returns it along with the rest of the string.
func SplitKey(s string) (Key, string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return Key{}, s, fmt.Errorf("missing key in %q", s)
	}
	letter, err := ParseLetter(r)
	if err != nil {
		return Key{}, s, err
	}
	rest := s[size:]
	end := 0
	for end < len(rest) {
		r, n := utf8.DecodeRuneInString(rest[end:])
		if _, ok := accidentalGlyphs[r]; !ok {
			break
		}
		end += n
	}
	acc, err := ParseAccidental(rest[:end])
	if err != nil {
		return Key{}, s, err
	}
	return Key{Letter: letter, Accidental: acc}, rest[end:], nil
}

// ParseKey parses a whole string such as "C", "f#" or "E♭" as a key.
func ParseKey(s string) (Key, error) {
	k, rest, err := SplitKey(strings.TrimSpace(s))
	if err != nil {
		return Key{}, err
	}
	if rest != "" {
		return Key{}, fmt.Errorf("invalid key %q: unexpected %q", s, rest)
	}
	return k, nil
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
