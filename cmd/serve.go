package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/alexvitali001/rust-mc-theo/chord"
	"github.com/alexvitali001/rust-mc-theo/constants"
	"github.com/alexvitali001/rust-mc-theo/model"
	"github.com/alexvitali001/rust-mc-theo/note"
	"github.com/alexvitali001/rust-mc-theo/scale"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord and scale parser over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/scale", HandleScale).Methods("POST")
	router.HandleFunc("/chords", HandleChordList).Methods("GET")
	router.HandleFunc("/scales", HandleScaleList).Methods("GET")
	return router
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func toNoteResponses(notes []note.Note) []model.NoteResponse {
	res := make([]model.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.NoteResponse{
			PitchClass: n.PitchClass.String(),
			Octave:     n.Octave,
			Midi:       n.Midi(),
		})
	}
	return res
}

func decodeParseRequest(r *http.Request) (model.ParseRequest, error) {
	var input model.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, fmt.Errorf("could not decode request body: %w", err)
	}
	return input, nil
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	input, err := decodeParseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := chord.FromRegex(input.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, model.ParseResponse{
		Input: input.Text,
		Name:  c.String(),
		Notes: toNoteResponses(c.Notes()),
	})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	input, err := decodeParseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := scale.FromRegex(input.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, model.ParseResponse{
		Input: input.Text,
		Name:  s.String(),
		Notes: toNoteResponses(s.Notes()),
	})
}

func HandleChordList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ListResponse{Available: chord.AvailableChords()})
}

func HandleScaleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ListResponse{Available: scale.AvailableScales})
}

func serve() {
	addr := constants.GetServeAddr()
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
