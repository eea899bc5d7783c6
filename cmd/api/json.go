package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

// envelope is the normalized body of every payment response.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	PaymentID string          `json:"paymentId,omitempty"`
	TxID      string          `json:"txid,omitempty"`
	Data      json.RawMessage `json:"data,omitempty" swaggertype:"object"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	Path      string          `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct. An empty body leaves data untouched so that
// missing fields are reported by validation rather than as a decode error.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
