package models

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body of every JSON endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Data    any    `json:"data,omitempty"`
}

// Failure is an expected business outcome (duplicate user, wrong
// password, missing session...), as opposed to a Go error, which is
// reserved for infrastructure faults. Services return it alongside the
// success payload; handlers map it to the envelope as-is.
type Failure struct {
	Status int
	Msg    string
}

func Failf(status int, msg string) *Failure { return &Failure{Status: status, Msg: msg} }

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, status int, msg string, data any) {
	WriteJSON(w, status, Envelope{Success: true, Msg: msg, Data: data})
}

func WriteFailure(w http.ResponseWriter, f *Failure) {
	WriteJSON(w, f.Status, Envelope{Success: false, Msg: f.Msg})
}
