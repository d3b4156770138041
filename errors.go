package clearing

import "errors"

// Every failure the core can report is one of these kinds. They are
// matched with errors.Is; decoding wraps ErrInvalidRecord with the
// offending line.
var (
	// ErrLockedAccount rejects any event routed to an account that has
	// undergone a chargeback.
	ErrLockedAccount = errors.New("account is locked")

	// ErrInsufficientFunds rejects a withdrawal exceeding the available funds.
	ErrInsufficientFunds = errors.New("insufficient funds to complete a withdrawal")

	// ErrInsufficientFundsForDispute rejects a dispute that would drive
	// the available funds negative.
	ErrInsufficientFundsForDispute = errors.New("insufficient funds to hold the disputed amount")

	// ErrInvalidDispute rejects a dispute referencing a transaction that is
	// unknown or already disputed.
	ErrInvalidDispute = errors.New("invalid dispute")

	// ErrInvalidResolve rejects a resolve referencing a transaction that is
	// unknown or not disputed.
	ErrInvalidResolve = errors.New("invalid resolve")

	// ErrInvalidChargeback rejects a chargeback referencing a transaction
	// that is unknown or not disputed.
	ErrInvalidChargeback = errors.New("invalid chargeback")

	// ErrInvalidRecord reports a malformed input record. It is raised by the
	// decoding layer only, never by the account core.
	ErrInvalidRecord = errors.New("invalid record")
)
