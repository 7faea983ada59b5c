package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DJBen/MusicTheory/chord"
	"github.com/DJBen/MusicTheory/constants"
	"github.com/DJBen/MusicTheory/model"
	"github.com/DJBen/MusicTheory/pitch"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord and interval lookups over HTTP",
	Long: `Serves chord and interval lookups over HTTP on $PORT (default 8080).

  POST /chords    {"symbols": ["Cm7", "G7(b9)"], "octave": 4}
  GET  /interval  ?from=C4&to=E♭4`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"function": "writeJSON"}).Error(err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.WithFields(log.Fields{
		"status": status,
	}).Info(err.Error())
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleParseChords(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}

	var input model.ChordsRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	if len(input.Symbols) == 0 || len(input.Symbols) > constants.MaxSymbolsPerRequest {
		writeError(w, http.StatusBadRequest, fmt.Errorf("between 1 and %d symbols are accepted, got %d", constants.MaxSymbolsPerRequest, len(input.Symbols)))
		return
	}

	octave := constants.GetDefaultOctave()
	if input.Octave != nil {
		octave = *input.Octave
	}
	if octave < constants.MinOctave || octave > constants.MaxOctave {
		writeError(w, http.StatusBadRequest, fmt.Errorf("octave %d is out of range", octave))
		return
	}

	res := model.ChordsResponse{Octave: octave, Chords: make([]model.ChordResult, 0, len(input.Symbols))}
	for _, symbol := range input.Symbols {
		c, err := chord.ParseChord(symbol)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		res.Chords = append(res.Chords, toChordResult(symbol, c, octave))
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, err := pitch.ParsePitch(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("from: %w", err))
		return
	}
	to, err := pitch.ParsePitch(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("to: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, model.IntervalResponse{
		From:     toPitchResult(from),
		To:       toPitchResult(to),
		Interval: toIntervalResult(pitch.Distance(from, to)),
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleParseChords).Methods("POST")
	router.HandleFunc("/interval", HandleInterval).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := ":" + constants.GetPort()
	log.WithFields(log.Fields{"addr": addr}).Info("serving")
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
