package constants

import "os"

// DefaultOctave is the octave chords and scales are rooted in, using
// scientific pitch notation (C4 = middle C).
const DefaultOctave = 4

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}
