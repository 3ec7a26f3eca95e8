// Package iojson writes the machine-readable output of chipselect commands:
// pick results and validate reports go to stdout, encoding failures go to
// stderr as an [Error] document.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the document written to stderr when output cannot be produced.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// MarshalError renders an [Error] as indented JSON. If data itself cannot be
// encoded the result still carries msg, with the encoder error under
// "json_error".
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err == nil {
		return string(bits)
	}

	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// WriteWith encodes obj to w. When obj cannot be encoded nothing is written
// to w and an [Error] naming the Go type of obj is written to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, MarshalError("cannot encode output", map[string]any{
			"type":       fmt.Sprintf("%T", obj),
			"json_error": err.Error(),
		}))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
