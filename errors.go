package tradesim

import "errors"

// Error kinds reported by account operations. Callers match them with
// errors.Is; every failure is a rejected operation that leaves the account
// untouched, there is no fatal class.
var (
	// ErrInvalidInput rejects a non-positive amount or quantity, or an empty
	// account identifier at creation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds rejects a withdrawal or purchase that would drive
	// the cash balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings rejects a sale of more shares than currently
	// held, including a sale of a symbol not held at all.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
)
