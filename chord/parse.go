package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/DJBen/MusicTheory/pitch"
)

// Stage names the step of chord symbol parsing that rejected the input.
type Stage string

const (
	StageRoot     Stage = "root"
	StageSegment  Stage = "segment"
	StageBase     Stage = "base"
	StageNumeral  Stage = "numeral"
	StageModifier Stage = "modifier"
	StageBass     Stage = "bass"
)

// ErrGrammar matches every *ParseError with errors.Is.
var ErrGrammar = errors.New("invalid chord notation")

type ParseError struct {
	Symbol string
	Stage  Stage
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("chord %q: %s %q: %s", e.Symbol, e.Stage, e.Token, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrGrammar
}

// maxModifiers bounds the parenthesized modifiers after the base notation.
const maxModifiers = 9

// symbolGrammar splits a chord type notation such as "m7(b5)(add9)" into
// its base and parenthesized modifiers.
//
//nolint:govet // participle grammar tags are not standard struct tags
type symbolGrammar struct {
	Base      string             `parser:"@Unit?"`
	Modifiers []*modifierGrammar `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type modifierGrammar struct {
	Units []string `parser:"\"(\" @Unit* \")\""`
}

var symbolLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Unit", Pattern: `[\pL\pN+°♭♯#]+`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var symbolParser = participle.MustBuild[symbolGrammar](
	participle.Lexer(symbolLexer),
	participle.Elide("Whitespace"),
)

var (
	baseRegexp     = regexp.MustCompile(`^((?:[A-Za-z]|[+°Øø])*)(\d*)$`)
	modifierRegexp = regexp.MustCompile(`^(add|no|sus|♭|♯|#|b|maj|M|°|\+)?\s?(\d*)$`)
)

// ParseType parses the chord type part of a symbol, everything after the
// root: "", "m7", "maj7", "ø7", "9(sus4)(no5)(add6)" and so on.
func ParseType(notation string) (ChordType, error) {
	return parseType(notation, strings.TrimSpace(notation))
}

func parseType(symbol, notation string) (ChordType, error) {
	fail := func(stage Stage, token, reason string, err error) (ChordType, error) {
		return ChordType{}, &ParseError{Symbol: symbol, Stage: stage, Token: token, Reason: reason, Err: err}
	}

	parsed := &symbolGrammar{}
	if notation != "" {
		var err error
		parsed, err = symbolParser.ParseString("", notation)
		if err != nil {
			return fail(StageSegment, notation, "malformed notation", err)
		}
	}
	if len(parsed.Modifiers) > maxModifiers {
		return fail(StageSegment, notation, fmt.Sprintf("more than %d modifiers", maxModifiers), nil)
	}

	m := baseRegexp.FindStringSubmatch(parsed.Base)
	if m == nil {
		return fail(StageBase, parsed.Base, "unrecognized base notation", nil)
	}
	prefix, numeral := m[1], m[2]

	b := newBuilder()
	switch prefix {
	case "", "M", "maj":
		b.Third, b.Fifth = ThirdMajor, FifthPerfect
	case "m", "min":
		b.Third, b.Fifth = ThirdMinor, FifthPerfect
	case "°", "o", "dim":
		b.Third, b.Fifth = ThirdMinor, FifthDiminished
	case "+", "aug":
		b.Third, b.Fifth = ThirdMajor, FifthAugmented
	case "Ø", "ø":
		b.Third, b.Fifth = ThirdMinor, FifthDiminished
	default:
		return fail(StageBase, prefix, "unrecognized chord quality", nil)
	}

	switch numeral {
	case "":
	case "5":
		b.Third = ThirdNone
	case "6":
		b.Sixth = SixthMajor
	case "7":
		switch prefix {
		case "M", "maj":
			b.Seventh = SeventhMajor
		case "°", "o", "dim":
			b.Seventh = SeventhDiminished
		default:
			b.Seventh = SeventhDominant
		}
	case "9":
		b.fill(fillSeventh)
		b.addExtension(Extension{Type: Ninth})
	case "11":
		b.fill(fillSeventh | fillNinth)
		b.addExtension(Extension{Type: Eleventh})
	case "13":
		b.fill(fillSeventh | fillNinth | fillEleventh)
		b.addExtension(Extension{Type: Thirteenth})
	default:
		return fail(StageNumeral, numeral, "unsupported chord numeral", nil)
	}

	for _, mod := range parsed.Modifiers {
		token := strings.Join(mod.Units, " ")
		if err := applyModifier(b, token); err != nil {
			return fail(StageModifier, token, err.Error(), nil)
		}
	}
	return b.build(), nil
}

func applyModifier(b *builder, token string) error {
	m := modifierRegexp.FindStringSubmatch(token)
	if m == nil {
		return errors.New("unrecognized modifier")
	}
	tag, numeral := m[1], m[2]

	switch tag {
	case "":
		if numeral != "" {
			return errors.New("numeral needs an add, no or sus modifier")
		}
	case "add":
		switch numeral {
		case "6":
			b.Sixth = SixthMajor
		case "9":
			b.addExtension(Extension{Type: Ninth})
		case "11":
			b.addExtension(Extension{Type: Eleventh})
		default:
			return errors.New("only 6, 9 and 11 can be added")
		}
	case "no":
		switch numeral {
		case "3":
			b.Third = ThirdNone
		case "5":
			b.Fifth = FifthNone
		case "7":
			b.Seventh = SeventhNone
		case "9":
			b.removeExtensions(Ninth)
		default:
			return errors.New("only 3, 5, 7 and 9 can be omitted")
		}
	case "sus":
		switch numeral {
		case "2":
			b.Suspension = Sus2
		case "4":
			b.Suspension = Sus4
		default:
			return errors.New("only sus2 and sus4 are supported")
		}
	case "+", "♯", "#":
		return alterExtension(b, numeral, FifthAugmented, pitch.Sharp)
	case "°", "♭", "b":
		return alterExtension(b, numeral, FifthDiminished, pitch.Flat)
	case "maj", "M":
		if numeral == "7" {
			b.Seventh = SeventhMajor
			return nil
		}
		return alterExtension(b, numeral, FifthNone, pitch.Natural)
	default:
		return errors.New("unrecognized modifier")
	}
	return nil
}

// alterExtension handles the sharp, flat and major modifiers: an altered
// fifth, or a ninth or eleventh stacked on a filled-in seventh.
func alterExtension(b *builder, numeral string, fifth Fifth, acc pitch.Accidental) error {
	switch numeral {
	case "5":
		if fifth == FifthNone {
			return errors.New("fifth cannot be altered this way")
		}
		b.Fifth = fifth
	case "9":
		b.fill(fillSeventh)
		b.addExtension(Extension{Type: Ninth, Accidental: acc})
	case "11":
		b.fill(fillSeventh | fillNinth)
		b.addExtension(Extension{Type: Eleventh, Accidental: acc})
	default:
		return fmt.Errorf("cannot alter %q", numeral)
	}
	return nil
}

// ParseChord parses a full chord symbol: a root key, its chord type and an
// optional slash bass that picks the inversion, e.g. "F#m7(b5)" or "C/E".
func ParseChord(symbol string) (Chord, error) {
	s := strings.TrimSpace(symbol)
	root, rest, err := pitch.SplitKey(s)
	if err != nil {
		return Chord{}, &ParseError{Symbol: symbol, Stage: StageRoot, Token: s, Reason: "missing root key", Err: err}
	}
	notation, bass, hasBass := strings.Cut(rest, "/")
	t, err := parseType(symbol, notation)
	if err != nil {
		return Chord{}, err
	}
	c := NewChord(root, t)
	if !hasBass {
		return c, nil
	}

	bassKey, err := pitch.ParseKey(bass)
	if err != nil {
		return Chord{}, &ParseError{Symbol: symbol, Stage: StageBass, Token: bass, Reason: "invalid bass key", Err: err}
	}
	for i, k := range c.Keys() {
		if k.IsEnharmonic(bassKey) {
			return c.Invert(i), nil
		}
	}
	return Chord{}, &ParseError{Symbol: symbol, Stage: StageBass, Token: bass, Reason: "bass is not a chord tone"}
}
