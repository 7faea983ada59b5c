package cmd

import (
	"github.com/DJBen/MusicTheory/chord"
	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/model"
	"github.com/DJBen/MusicTheory/pitch"
	"github.com/DJBen/MusicTheory/util"
)

func toIntervalResult(i interval.Interval) model.IntervalResult {
	return model.IntervalResult{
		Notation:  i.Notation(),
		Roman:     i.Roman(),
		Name:      i.String(),
		Quality:   i.Quality.String(),
		Degree:    i.Degree,
		Semitones: i.Semitones,
	}
}

func toPitchResult(p pitch.Pitch) model.PitchResult {
	return model.PitchResult{
		Name:      p.String(),
		Midi:      p.RawValue(),
		Frequency: p.Frequency(),
	}
}

func toChordResult(symbol string, c chord.Chord, octave int) model.ChordResult {
	return model.ChordResult{
		Symbol:      symbol,
		Notation:    c.Notation(),
		Description: c.Description(),
		Intervals:   util.Map(c.Intervals(), toIntervalResult),
		Pitches:     util.Map(c.Pitches(octave), toPitchResult),
		Inversions:  util.Map(c.Inversions(), chord.Chord.Notation),
	}
}
