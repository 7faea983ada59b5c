package chord

import (
	"fmt"
	"testing"

	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/pitch"
	"github.com/stretchr/testify/assert"
)

func key(s string) pitch.Key {
	k, err := pitch.ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func pitchNames(ps []pitch.Pitch) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.String()
	}
	return res
}

func keyNames(ks []pitch.Key) []string {
	res := make([]string, len(ks))
	for i, k := range ks {
		res[i] = k.String()
	}
	return res
}

func TestTriadKeys(t *testing.T) {
	assert := assert.New(t)
	cmaj := NewChord(key("C"), New(Parts{Third: ThirdMajor}))
	assert.Equal([]string{"C", "E", "G"}, keyNames(cmaj.Keys()))
	assert.Equal([]string{"C1", "E1", "G1"}, pitchNames(cmaj.Pitches(1)))

	cmin := NewChord(key("C"), New(Parts{Third: ThirdMinor}))
	assert.Equal([]string{"C", "E♭", "G"}, keyNames(cmin.Keys()))
}

func TestExtendedChordPitches(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  []string
	}{
		{
			name:  "dominant thirteenth",
			parts: Parts{Third: ThirdMajor, Seventh: SeventhDominant, Extensions: []Extension{{Type: Thirteenth}}},
			want:  []string{"C1", "E1", "G1", "B♭1", "D2", "F2", "A2"},
		},
		{
			name:  "minor thirteenth",
			parts: Parts{Third: ThirdMinor, Seventh: SeventhDominant, Extensions: []Extension{{Type: Thirteenth}}},
			want:  []string{"C1", "E♭1", "G1", "B♭1", "D2", "F2", "A2"},
		},
		{
			name:  "minor added thirteenth",
			parts: Parts{Third: ThirdMinor, Extensions: []Extension{{Type: Thirteenth}}},
			want:  []string{"C1", "E♭1", "G1", "A2"},
		},
		{
			name:  "flat ninth",
			parts: Parts{Third: ThirdMajor, Seventh: SeventhDominant, Extensions: []Extension{{Type: Ninth, Accidental: pitch.Flat}}},
			want:  []string{"C1", "E1", "G1", "B♭1", "D♭2"},
		},
		{
			name:  "suspended fourth",
			parts: Parts{Third: ThirdNone, Suspension: Sus4},
			want:  []string{"C1", "F1", "G1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChord(key("C"), New(tt.parts))
			assert.Equal(t, tt.want, pitchNames(c.Pitches(1)))
		})
	}
}

func TestInversions(t *testing.T) {
	c7 := NewChord(key("C"), New(Parts{Third: ThirdMajor, Seventh: SeventhDominant}))
	want := [][]string{
		{"C1", "E1", "G1", "B♭1"},
		{"E1", "G1", "B♭1", "C2"},
		{"G1", "B♭1", "C2", "E2"},
		{"B♭1", "C2", "E2", "G2"},
	}

	assert := assert.New(t)
	inversions := c7.Inversions()
	assert.Len(inversions, len(want))
	for i, inv := range inversions {
		assert.Equal(i, inv.Inversion())
		assert.Equal(want[i], pitchNames(inv.Pitches(1)), "inversion %d", i)
	}
	assert.Equal(1, c7.Invert(5).Inversion())
	assert.Panics(func() { c7.Invert(-1) })
}

func TestInversionStaysAscendingAcrossWideVoicings(t *testing.T) {
	c9 := NewChord(key("C"), New(Parts{Third: ThirdMajor, Seventh: SeventhDominant, Extensions: []Extension{{Type: Ninth}}}))
	ps := c9.Invert(1).Pitches(1)
	for i := 1; i < len(ps); i++ {
		assert.True(t, ps[i-1].Less(ps[i]), "%v", pitchNames(ps))
	}
	assert.Equal(t, "C3", ps[len(ps)-1].String())
}

func TestInversionOfChordWiderThanAnOctave(t *testing.T) {
	cAdd9 := NewChord(key("C"), New(Parts{Third: ThirdMajor, Extensions: []Extension{{Type: Ninth}}}))

	assert := assert.New(t)
	assert.Equal([]string{"C1", "E1", "G1", "D2"}, pitchNames(cAdd9.Pitches(1)))
	assert.Equal([]string{"E1", "G1", "D2", "C3"}, pitchNames(cAdd9.Invert(1).Pitches(1)))
	assert.Equal([]string{"G1", "D2", "C3", "E3"}, pitchNames(cAdd9.Invert(2).Pitches(1)))
	assert.Equal([]string{"D2", "C3", "E3", "G3"}, pitchNames(cAdd9.Invert(3).Pitches(1)))
}

func TestChordEquality(t *testing.T) {
	assert := assert.New(t)
	gSus4No5Add6 := NewChord(key("G"), New(Parts{Third: ThirdNone, Fifth: FifthNone, Sixth: SixthMajor, Suspension: Sus4}))
	cMaj := NewChord(key("C"), New(Parts{Third: ThirdMajor}))

	assert.True(gSus4No5Add6.Equal(cMaj.Invert(2)))
	assert.False(gSus4No5Add6.Equal(cMaj.Invert(1)))
	assert.False(cMaj.Equal(cMaj.Invert(1)))
	assert.True(NewChord(key("C#"), New(Parts{Third: ThirdMinor})).Equal(NewChord(key("Db"), New(Parts{Third: ThirdMinor}))))
}

func TestNotationAndDescription(t *testing.T) {
	tests := []struct {
		chord       Chord
		notation    string
		description string
	}{
		{NewChord(key("G"), New(Parts{Third: ThirdNone})), "G5", "G (no 3)"},
		{NewChord(key("C"), New(Parts{Third: ThirdMajor})), "C", "C Major"},
		{NewChord(key("E"), New(Parts{Third: ThirdMinor, Seventh: SeventhDominant})), "Em7", "E Minor Dominant 7th"},
		{NewChord(key("C"), New(Parts{Third: ThirdMinor, Seventh: SeventhDominant})).Invert(1), "Cm7/E♭", "C Minor Dominant 7th 1st Inversion"},
		{NewChord(key("Bb"), New(Parts{Third: ThirdMajor, Fifth: FifthAugmented})), "B♭+", "B♭ Major Augmented"},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tt.notation, tt.chord.Notation())
			assert.Equal(tt.notation, fmt.Sprint(tt.chord))
			assert.Equal(tt.description, tt.chord.Description())
		})
	}
}

func TestPitchesFor(t *testing.T) {
	assert := assert.New(t)
	c7 := NewChord(key("C"), New(Parts{Third: ThirdMajor, Seventh: SeventhDominant}))
	assert.Equal([]string{"B♭3", "E3"}, pitchNames(c7.PitchesFor(3, SeventhDominant, ThirdMajor)))
	assert.Panics(func() { c7.PitchesFor(3, SeventhMajor) })
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	c := NewChord(key("C"), New(Parts{Third: ThirdMinor})).Invert(1)
	up := c.Transpose(interval.MinorThird)
	assert.Equal("E♭", up.Root().String())
	assert.Equal(1, up.Inversion())
	assert.Equal("E♭m/G♭", up.Notation())
}

func TestProgression(t *testing.T) {
	assert := assert.New(t)
	p, err := ParseProgression("C - Am | F, G7")
	assert.Nil(err)
	assert.Equal("C - Am - F - G7", p.String())

	up := p.Transpose(interval.MajorSecond)
	assert.Equal("D - Bm - G - A7", up.String())
	assert.False(up.Equal(p))
	assert.True(up.Transpose(interval.MajorSecond).Equal(p.Transpose(interval.MajorThird)))

	_, err = ParseProgression("C Dxyz")
	assert.ErrorIs(err, ErrGrammar)
}
