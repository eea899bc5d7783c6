package main

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

var endpointMap = map[string]string{
	"approve":    "POST /api/pi/approve",
	"complete":   "POST /api/pi/complete",
	"cancel":     "POST /api/pi/cancel",
	"getPayment": "GET /api/pi/payment/:paymentId",
}

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports that the relay is running and lists the payment endpoints
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/ [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Message:   "Pi Payment Relay API Running",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Endpoints: endpointMap,
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
