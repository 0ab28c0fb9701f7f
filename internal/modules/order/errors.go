package order

import "errors"

var (
	ErrNotFound = errors.New("order not found")

	// ErrOrderNumberTaken is surfaced when the database rejects an insert
	// on the order_number unique index after the generator's retries.
	ErrOrderNumberTaken = errors.New("order number already taken")

	ErrCouponInvalid       = errors.New("invalid coupon code")
	ErrCouponNotApplicable = errors.New("coupon not applicable")

	// ErrShipmentInfoMissing rejects a SHIPPED transition when neither the
	// request nor the stored order carries courier name and tracking id.
	ErrShipmentInfoMissing = errors.New("courier name and tracking id are required to mark an order shipped")

	// ErrValidation wraps bad-request conditions in order payloads.
	ErrValidation = errors.New("invalid request")
)
