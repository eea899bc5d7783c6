package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"net/url"

	"pirelay/internal/payments"

	"github.com/go-chi/chi/v5"
)

// upstreamCalls counts relayed Pi API calls as "<op>.ok" and "<op>.error".
var upstreamCalls = expvar.NewMap("upstream_calls")

type approvePaymentPayload struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

type completePaymentPayload struct {
	PaymentID string `json:"paymentId" validate:"required"`
	TxID      string `json:"txid" validate:"required"`
}

type cancelPaymentPayload struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// relayCall describes one upstream action and how its outcome is reported.
type relayCall struct {
	op         string
	successMsg string
	failureMsg string
	paymentID  string
	txID       string
	call       func(ctx context.Context) (payments.Result, error)
}

// relay performs the single upstream call and writes the envelope. The call is
// detached from the client's cancellation so a disconnect does not abort it.
func (app *application) relay(w http.ResponseWriter, r *http.Request, rc relayCall) {
	ctx := context.WithoutCancel(r.Context())

	app.logger.Infow("relaying payment call", "op", rc.op, "paymentId", rc.paymentID, "txid", rc.txID)

	res, err := rc.call(ctx)
	if errors.Is(err, payments.ErrMissingAPIKey) {
		app.misconfiguredResponse(w, r)
		return
	}
	if err != nil {
		upstreamCalls.Add(rc.op+".error", 1)
		app.upstreamErrorResponse(w, r, err, envelope{
			Error:     rc.failureMsg,
			PaymentID: rc.paymentID,
			TxID:      rc.txID,
		})
		return
	}

	upstreamCalls.Add(rc.op+".ok", 1)
	app.logger.Infow("payment call succeeded", "op", rc.op, "paymentId", rc.paymentID, "status", res.StatusCode)

	if err := writeJSON(w, http.StatusOK, &envelope{
		Success:   true,
		Message:   rc.successMsg,
		PaymentID: rc.paymentID,
		TxID:      rc.txID,
		Data:      res.JSON(),
	}); err != nil {
		app.logger.Errorw("writing response", "op", rc.op, "error", err.Error())
	}
}

// approvePaymentHandler godoc
//
//	@Summary		Approve a payment
//	@Description	Approves a Pi payment on the platform with the server API key
//	@Tags			pi
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		approvePaymentPayload	true	"Payment to approve"
//	@Success		200		{object}	envelope				"Payment approved successfully"
//	@Failure		400		{object}	envelope				"Payment ID required"
//	@Failure		500		{object}	envelope				"PI_API_KEY not configured or upstream unreachable"
//	@Router			/api/pi/approve [post]
func (app *application) approvePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload approvePaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.missingFieldsResponse(w, r, "Payment ID required")
		return
	}

	app.relay(w, r, relayCall{
		op:         "approve",
		successMsg: "Payment approved successfully",
		failureMsg: "Failed to approve payment",
		paymentID:  payload.PaymentID,
		call: func(ctx context.Context) (payments.Result, error) {
			return app.payments.Approve(ctx, payload.PaymentID)
		},
	})
}

// completePaymentHandler godoc
//
//	@Summary		Complete a payment
//	@Description	Completes a Pi payment with the blockchain transaction id
//	@Tags			pi
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		completePaymentPayload	true	"Payment and txid"
//	@Success		200		{object}	envelope				"Payment completed successfully"
//	@Failure		400		{object}	envelope				"Payment ID and txid required"
//	@Failure		500		{object}	envelope				"PI_API_KEY not configured or upstream unreachable"
//	@Router			/api/pi/complete [post]
func (app *application) completePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload completePaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.missingFieldsResponse(w, r, "Payment ID and txid required")
		return
	}

	app.relay(w, r, relayCall{
		op:         "complete",
		successMsg: "Payment completed successfully",
		failureMsg: "Failed to complete payment",
		paymentID:  payload.PaymentID,
		txID:       payload.TxID,
		call: func(ctx context.Context) (payments.Result, error) {
			return app.payments.Complete(ctx, payments.CompleteRequest{
				PaymentID: payload.PaymentID,
				TxID:      payload.TxID,
			})
		},
	})
}

// cancelPaymentHandler godoc
//
//	@Summary		Cancel a payment
//	@Tags			pi
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		cancelPaymentPayload	true	"Payment to cancel"
//	@Success		200		{object}	envelope				"Payment cancelled successfully"
//	@Failure		400		{object}	envelope				"Payment ID required"
//	@Failure		500		{object}	envelope				"PI_API_KEY not configured or upstream unreachable"
//	@Router			/api/pi/cancel [post]
func (app *application) cancelPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload cancelPaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.missingFieldsResponse(w, r, "Payment ID required")
		return
	}

	app.relay(w, r, relayCall{
		op:         "cancel",
		successMsg: "Payment cancelled successfully",
		failureMsg: "Failed to cancel payment",
		paymentID:  payload.PaymentID,
		call: func(ctx context.Context) (payments.Result, error) {
			return app.payments.Cancel(ctx, payload.PaymentID)
		},
	})
}

// getPaymentHandler godoc
//
//	@Summary		Get payment info
//	@Tags			pi
//	@Produce		json
//	@Param			paymentId	path		string		true	"Pi payment ID"
//	@Success		200			{object}	envelope	"Upstream payment record in data"
//	@Failure		404			{object}	envelope	"Failed to get payment info"
//	@Failure		500			{object}	envelope	"PI_API_KEY not configured or upstream unreachable"
//	@Router			/api/pi/payment/{paymentId} [get]
func (app *application) getPaymentHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")
	if unescaped, err := url.PathUnescape(paymentID); err == nil {
		paymentID = unescaped
	}

	app.relay(w, r, relayCall{
		op:         "get",
		failureMsg: "Failed to get payment info",
		paymentID:  paymentID,
		call: func(ctx context.Context) (payments.Result, error) {
			return app.payments.GetPayment(ctx, paymentID)
		},
	})
}
