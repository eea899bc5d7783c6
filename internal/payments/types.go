package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned before any network call when the adapter has no credential.
var ErrMissingAPIKey = errors.New("PI_API_KEY not configured")

type CompleteRequest struct {
	PaymentID string
	TxID      string
}

// Result is a successful (2xx) upstream response.
type Result struct {
	StatusCode int
	Body       []byte
}

// JSON returns the upstream body as it should appear in a response envelope.
func (r Result) JSON() json.RawMessage {
	return RawJSON(r.Body)
}

// UpstreamError is a non-2xx response from the payment platform.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pi api responded %d: %s", e.StatusCode, string(e.Body))
}

// Status returns the HTTP status to relay for err: the upstream status for an
// UpstreamError, 500 for anything else.
func Status(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.StatusCode > 0 {
		return ue.StatusCode
	}
	return http.StatusInternalServerError
}

// Details returns the upstream error body when there is one, otherwise the error message.
func Details(err error) json.RawMessage {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return RawJSON(ue.Body)
	}
	msg, _ := json.Marshal(err.Error())
	return msg
}

// RawJSON passes valid JSON through untouched and quotes anything else as a JSON string.
func RawJSON(body []byte) json.RawMessage {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
