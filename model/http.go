package model

type ChordsRequestBody struct {
	Symbols []string `json:"symbols"`
	Octave  *int     `json:"octave,omitempty"`
}

type ChordsResponse struct {
	Octave int           `json:"octave"`
	Chords []ChordResult `json:"chords"`
}

type IntervalResponse struct {
	From     PitchResult    `json:"from"`
	To       PitchResult    `json:"to"`
	Interval IntervalResult `json:"interval"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
