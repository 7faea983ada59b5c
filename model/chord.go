package model

type IntervalResult struct {
	Notation  string `json:"notation"`
	Roman     string `json:"roman"`
	Name      string `json:"name"`
	Quality   string `json:"quality"`
	Degree    int    `json:"degree"`
	Semitones int    `json:"semitones"`
}

type PitchResult struct {
	Name      string  `json:"name"`
	Midi      int     `json:"midi"`
	Frequency float64 `json:"frequency"`
}

type ChordResult struct {
	Symbol      string           `json:"symbol"`
	Notation    string           `json:"notation"`
	Description string           `json:"description"`
	Intervals   []IntervalResult `json:"intervals"`
	Pitches     []PitchResult    `json:"pitches"`

	// NOTE: notations only, one per rotation starting with root position
	Inversions []string `json:"inversions"`
}
