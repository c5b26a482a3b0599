// Package envelope writes the storefront API's result envelope: every
// response carries either a data payload or an error code, never both.
package envelope

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error side of the envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// Write sends a success payload.
func Write(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteError sends a typed business error code, e.g. "not-found".
func WriteError(w http.ResponseWriter, status int, code string) {
	Write(w, status, ErrorBody{Error: code})
}
