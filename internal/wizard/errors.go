package wizard

import "errors"

var (
	ErrNoAddressSelected   = errors.New("a saved shipping address must be selected before paying")
	ErrPaymentInFlight     = errors.New("a payment attempt is already in progress")
	ErrUnknownAddress      = errors.New("address is not in the saved list")
	ErrUnknownField        = errors.New("unknown checkout form field")
	ErrClosed              = errors.New("checkout session is closed")
	IllegalTransitionError = errors.New("illegal transition of checkout step")
)
