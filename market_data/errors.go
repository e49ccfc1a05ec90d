package market_data

import "errors"

var (
	// ErrMarketNotFound is returned when the provider has no market for a catalog id
	ErrMarketNotFound = errors.New("market not found")
	// ErrFiatNotFound is returned when the fiat table has no rate for a symbol
	ErrFiatNotFound = errors.New("fiat rate not found")
	// ErrInvalidBalance is returned when a balance is not a decimal number
	ErrInvalidBalance = errors.New("invalid balance")
)
