package chord

import (
	"errors"
	"strings"
	"testing"

	"github.com/DJBen/MusicTheory/pitch"
	"github.com/stretchr/testify/assert"
)

func TestParseChordLiterals(t *testing.T) {
	tests := []struct {
		symbol string
		root   string
		parts  Parts
	}{
		{"D", "D", Parts{Third: ThirdMajor}},
		{"Fmaj", "F", Parts{Third: ThirdMajor}},
		{"FM", "F", Parts{Third: ThirdMajor}},
		{"Em", "E", Parts{Third: ThirdMinor}},
		{"Emin", "E", Parts{Third: ThirdMinor}},
		{"Adim", "A", Parts{Third: ThirdMinor, Fifth: FifthDiminished}},
		{"Ao", "A", Parts{Third: ThirdMinor, Fifth: FifthDiminished}},
		{"A°", "A", Parts{Third: ThirdMinor, Fifth: FifthDiminished}},
		{"B♭aug", "B♭", Parts{Third: ThirdMajor, Fifth: FifthAugmented}},
		{"B♭+", "B♭", Parts{Third: ThirdMajor, Fifth: FifthAugmented}},
		{"D7", "D", Parts{Third: ThirdMajor, Seventh: SeventhDominant}},
		{"Fmaj7", "F", Parts{Third: ThirdMajor, Seventh: SeventhMajor}},
		{"Em7", "E", Parts{Third: ThirdMinor, Seventh: SeventhDominant}},
		{"Emin7", "E", Parts{Third: ThirdMinor, Seventh: SeventhDominant}},
		{"Cmin(maj7)", "C", Parts{Third: ThirdMinor, Seventh: SeventhMajor}},
		{"F#ø7", "F♯", Parts{Third: ThirdMinor, Fifth: FifthDiminished, Seventh: SeventhDominant}},
		{"Bdim7", "B", Parts{Third: ThirdMinor, Fifth: FifthDiminished, Seventh: SeventhDiminished}},
		{"G♭6", "G♭", Parts{Third: ThirdMajor, Sixth: SixthMajor}},
		{"F♯m(♭5)", "F♯", Parts{Third: ThirdMinor, Fifth: FifthDiminished}},
		{"D9", "D", Parts{Third: ThirdMajor, Seventh: SeventhDominant, Extensions: []Extension{{Type: Ninth}}}},
		{"G7(b5)", "G", Parts{Third: ThirdMajor, Fifth: FifthDiminished, Seventh: SeventhDominant}},
		{"C9(sus4)", "C", Parts{Third: ThirdMajor, Seventh: SeventhDominant, Suspension: Sus4, Extensions: []Extension{{Type: Ninth}}}},
		{"E♭9(sus4)(no5)(add6)", "E♭", Parts{Third: ThirdMajor, Fifth: FifthNone, Sixth: SixthMajor, Seventh: SeventhDominant, Suspension: Sus4, Extensions: []Extension{{Type: Ninth}}}},
		{"G5", "G", Parts{Third: ThirdNone}},
		{"Cm(no 5)", "C", Parts{Third: ThirdMinor, Fifth: FifthNone}},
		{" A7 (no3) ", "A", Parts{Third: ThirdNone, Seventh: SeventhDominant}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert := assert.New(t)
			c, err := ParseChord(tt.symbol)
			if !assert.Nil(err) {
				return
			}
			assert.Equal(tt.root, c.Root().String())
			assert.Equal(0, c.Inversion())
			want := New(tt.parts)
			assert.True(c.Type().Equal(want), "got %s, want %s", c.Type().Description(), want.Description())
			assert.True(c.Equal(NewChord(key(tt.root), want)))
		})
	}
}

func TestParseNumeralsStackExtensions(t *testing.T) {
	tests := []struct {
		notation string
		want     []int
	}{
		{"9", []int{0, 4, 7, 10, 14}},
		{"11", []int{0, 4, 7, 10, 14, 17}},
		{"13", []int{0, 4, 7, 10, 14, 17, 21}},
		{"m13", []int{0, 3, 7, 10, 14, 17, 21}},
		{"(add9)", []int{0, 4, 7, 14}},
		{"m(add11)", []int{0, 3, 7, 17}},
		{"7(#9)", []int{0, 4, 7, 10, 15}},
		{"7(♭9)", []int{0, 4, 7, 10, 13}},
		{"(b9)", []int{0, 4, 7, 10, 13}},
		{"(+11)", []int{0, 4, 7, 10, 14, 18}},
		{"maj7(#11)", []int{0, 4, 7, 11, 14, 18}},
		{"(M9)", []int{0, 4, 7, 10, 14}},
		{"(maj11)", []int{0, 4, 7, 10, 14, 17}},
		{"9(no9)", []int{0, 4, 7, 10}},
		{"7(no7)", []int{0, 4, 7}},
		{"m(#5)", []int{0, 3, 8}},
		{"", []int{0, 4, 7}},
		{"()", []int{0, 4, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			ct, err := ParseType(tt.notation)
			if assert.Nil(t, err) {
				assert.Equal(t, tt.want, semitones(ct.Intervals()))
			}
		})
	}
}

func TestParseAddedExtensionIsMarked(t *testing.T) {
	assert := assert.New(t)
	ct, err := ParseType("(add9)")
	assert.Nil(err)
	assert.True(ct.Extensions()[0].Added)
	assert.Equal("(add9)", ct.Notation())

	ct, err = ParseType("9")
	assert.Nil(err)
	assert.False(ct.Extensions()[0].Added)
}

func TestParseHalfDiminishedMatchesFlatFive(t *testing.T) {
	a, err := ParseType("ø7")
	assert.Nil(t, err)
	b, err := ParseType("m7(b5)")
	assert.Nil(t, err)
	assert.True(t, a.Equal(b))
}

func TestParseSlashBass(t *testing.T) {
	assert := assert.New(t)
	c, err := ParseChord("C/E")
	assert.Nil(err)
	assert.Equal(1, c.Inversion())
	assert.Equal("C/E", c.Notation())

	c, err = ParseChord("Am7/G")
	assert.Nil(err)
	assert.Equal(3, c.Inversion())
	assert.Equal([]string{"G", "A", "C", "E"}, keyNames(c.Keys()))

	c, err = ParseChord("C#m/Ab")
	assert.Nil(err)
	assert.Equal(2, c.Inversion())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		symbol string
		stage  Stage
		token  string
	}{
		{"", StageRoot, ""},
		{"Hm", StageRoot, "Hm"},
		{"Dxyz", StageBase, "xyz"},
		{"C7x", StageBase, "7x"},
		{"C4", StageNumeral, "4"},
		{"C15", StageNumeral, "15"},
		{"C(9)", StageModifier, "9"},
		{"C(foo)", StageModifier, "foo"},
		{"C(add13)", StageModifier, "add13"},
		{"C(no11)", StageModifier, "no11"},
		{"C(sus3)", StageModifier, "sus3"},
		{"C(#13)", StageModifier, "#13"},
		{"C(maj5)", StageModifier, "maj5"},
		{"C7)", StageSegment, "7)"},
		{"C7(b5", StageSegment, "7(b5"},
		{"C$", StageSegment, "$"},
		{"C" + strings.Repeat("()", maxModifiers+1), StageSegment, strings.Repeat("()", maxModifiers+1)},
		{"C/F", StageBass, "F"},
		{"C/X", StageBass, "X"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert := assert.New(t)
			_, err := ParseChord(tt.symbol)
			assert.ErrorIs(err, ErrGrammar)

			var perr *ParseError
			if assert.True(errors.As(err, &perr)) {
				assert.Equal(tt.stage, perr.Stage)
				if tt.stage != StageRoot {
					assert.Equal(tt.token, perr.Token)
				}
				assert.Equal(tt.symbol, perr.Symbol)
				assert.Contains(err.Error(), string(tt.stage))
			}
		})
	}
}

func TestParseTypeIgnoresRootSpelling(t *testing.T) {
	a, err := ParseChord("Cb7")
	assert.Nil(t, err)
	assert.Equal(t, pitch.NewKey(pitch.C, pitch.Flat), a.Root())
	assert.Equal(t, []string{"C♭", "E♭", "G♭", "B𝄫"}, keyNames(a.Keys()))
}
