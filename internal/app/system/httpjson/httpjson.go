// internal/app/system/httpjson/httpjson.go

// Package httpjson writes the API's JSON envelopes. Success bodies carry
// "ok": true alongside their payload; every failure is {"error": msg}
// with a 400/401/500 status.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as the response body with the given status.
func Write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v interface{}) {
	Write(w, http.StatusOK, v)
}

// Error writes the error envelope.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Decode parses a JSON request body into v.
func Decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
