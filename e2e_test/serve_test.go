package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexvitali001/rust-mc-theo/cmd"
	"github.com/alexvitali001/rust-mc-theo/model"
)

func createParseReqBody(t *testing.T, text string) io.Reader {
	data, err := json.Marshal(model.ParseRequest{Text: text})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestParseChordE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chord", createParseReqBody(t, "C minor seventh / 1"))
	w := httptest.NewRecorder()
	cmd.HandleChord(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var parsed model.ParseResponse
	err := json.Unmarshal(respBody, &parsed)
	assert.NoError(err)

	assert.Equal("C Minor Seventh (inversion 1)", parsed.Name)
	assert.Equal([]model.NoteResponse{
		{PitchClass: "D#", Octave: 4, Midi: 63},
		{PitchClass: "G", Octave: 4, Midi: 67},
		{PitchClass: "A#", Octave: 4, Midi: 70},
		{PitchClass: "C", Octave: 5, Midi: 72},
	}, parsed.Notes)
}

func TestParseScaleE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/scale", createParseReqBody(t, "A minor"))
	w := httptest.NewRecorder()
	cmd.HandleScale(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var parsed model.ParseResponse
	err := json.Unmarshal(respBody, &parsed)
	assert.NoError(err)

	assert.Equal("A Aeolian", parsed.Name)
	assert.Len(parsed.Notes, 8)
	assert.Equal(model.NoteResponse{PitchClass: "A", Octave: 4, Midi: 69}, parsed.Notes[0])
	assert.Equal(model.NoteResponse{PitchClass: "A", Octave: 5, Midi: 81}, parsed.Notes[7])
}

func TestParseChordBadInputE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chord", createParseReqBody(t, "C zzz"))
	w := httptest.NewRecorder()
	cmd.HandleChord(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResp model.ErrorResponse
	err := json.Unmarshal(respBody, &errResp)
	assert.NoError(err)
	assert.NotEmpty(errResp.Error)
}

func TestListChordsE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chords", nil)
	w := httptest.NewRecorder()
	cmd.HandleChordList(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var list model.ListResponse
	err := json.Unmarshal(respBody, &list)
	assert.NoError(err)
	assert.Len(list.Available, 22)
}

func TestListScalesE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scales", nil)
	w := httptest.NewRecorder()
	cmd.HandleScaleList(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var list model.ListResponse
	err := json.Unmarshal(respBody, &list)
	assert.NoError(err)
	assert.Len(list.Available, 9)
}
