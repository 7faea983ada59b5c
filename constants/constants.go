package constants

import (
	"os"
	"strconv"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetLogLevel() string {
	level := os.Getenv("MUSICTHEORY_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetDefaultOctave is the octave chords are voiced in when a request does
// not name one. Octave 4 holds middle C.
func GetDefaultOctave() int {
	raw := os.Getenv("MUSICTHEORY_OCTAVE")
	if raw == "" {
		return 4
	}
	octave, err := strconv.Atoi(raw)
	if err != nil {
		panic("MUSICTHEORY_OCTAVE is not a number: " + err.Error())
	}
	return octave
}

// MaxSymbolsPerRequest bounds how many chord symbols one request may parse.
const MaxSymbolsPerRequest = 64

// MaxRequestBytes caps the size of a request body.
const MaxRequestBytes = 64 << 10

const MinOctave, MaxOctave = -1, 9
