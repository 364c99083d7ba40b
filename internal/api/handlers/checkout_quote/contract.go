package checkout_quote

import (
	"context"

	checkoutQuote "github.com/staysuite/pricing-service/internal/usecase/checkout_quote"
)

type CheckoutQuoteUseCase interface {
	Execute(ctx context.Context, req *checkoutQuote.Request) (*checkoutQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
