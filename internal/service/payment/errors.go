package payment

import "errors"

var (
	ErrMissingOrderID  = errors.New("payment event order id is required")
	ErrUndefinedStatus = errors.New("undefined payment status")
)
