package main

import (
	"net/http"

	"pirelay/internal/payments"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusInternalServerError, &envelope{
		Success: false,
		Error:   "Internal server error",
		Message: err.Error(),
	})
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusBadRequest, &envelope{
		Success: false,
		Error:   "Invalid request body",
		Message: err.Error(),
	})
}

func (app *application) missingFieldsResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("missing fields", "method", r.Method, "path", r.URL.Path, "error", message)

	writeJSON(w, http.StatusBadRequest, &envelope{
		Success: false,
		Error:   message,
	})
}

func (app *application) misconfiguredResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Errorw("refusing payment call", "method", r.Method, "path", r.URL.Path, "error", payments.ErrMissingAPIKey.Error())

	writeJSON(w, http.StatusInternalServerError, &envelope{
		Success: false,
		Error:   payments.ErrMissingAPIKey.Error(),
	})
}

// upstreamErrorResponse relays a failed Pi API call: the upstream status (500 on
// transport failure) and its body, or the error message, as details.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error, env envelope) {
	status := payments.Status(err)
	app.logger.Errorw("pi api call failed", "method", r.Method, "path", r.URL.Path, "status", status, "paymentId", env.PaymentID, "error", err.Error())

	env.Success = false
	env.Details = payments.Details(err)
	writeJSON(w, status, &env)
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSON(w, http.StatusUnauthorized, &envelope{
		Success: false,
		Error:   "unauthorized",
	})
}

func (app *application) endpointNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, &envelope{
		Success: false,
		Error:   "Endpoint not found",
		Path:    r.URL.Path,
	})
}
