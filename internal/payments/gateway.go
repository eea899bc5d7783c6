package payments

import "context"

// Gateway defines the payment lifecycle actions relayed to the upstream platform.
// Every method performs exactly one outbound call and returns the raw upstream body.
type Gateway interface {
	Approve(ctx context.Context, paymentID string) (Result, error)
	Complete(ctx context.Context, req CompleteRequest) (Result, error)
	Cancel(ctx context.Context, paymentID string) (Result, error)
	GetPayment(ctx context.Context, paymentID string) (Result, error)
}
