package domain

import "errors"

var ErrEmptyCart = errors.New("cart is empty")
var ErrMissingPaymentData = errors.New("missing required data")
