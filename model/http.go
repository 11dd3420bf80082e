package model

type ParseRequest struct {
	Text string `json:"text"`
}

type NoteResponse struct {
	PitchClass string `json:"pitch_class"`
	Octave     int    `json:"octave"`
	Midi       uint8  `json:"midi"`
}

type ParseResponse struct {
	Input string         `json:"input"`
	Name  string         `json:"name"`
	Notes []NoteResponse `json:"notes"`
}

type ListResponse struct {
	Available []string `json:"available"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
