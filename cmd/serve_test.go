package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DJBen/MusicTheory/constants"
	"github.com/DJBen/MusicTheory/model"
	"github.com/stretchr/testify/assert"
)

func TestParseChordsBodyLimit(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"within limit", `{"symbols": ["C7"], "octave": 4}`, http.StatusOK},
		{"oversized", `{"symbols": ["` + strings.Repeat("C", constants.MaxRequestBytes) + `"]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			req := httptest.NewRequest(http.MethodPost, "/chords", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			HandleParseChords(w, req)

			assert.Equal(tt.status, w.Code)
			if tt.status != http.StatusOK {
				var errResp model.ErrorResponse
				assert.Nil(json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Contains(errResp.Error, "could not read request body")
			}
		})
	}
}
