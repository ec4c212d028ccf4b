package ledger

import "errors"

// Expected, locally recoverable rejections. Anything else coming out of the
// ledger is a storage failure whose transaction was fully rolled back.
var (
	ErrAlreadyActiveRound = errors.New("already_active_round")
	ErrInsufficientFunds  = errors.New("insufficient_funds")
	ErrRoundNotFound      = errors.New("round_not_found")
	ErrInvalidWager       = errors.New("invalid_wager")
	ErrBonusNotReady      = errors.New("bonus_not_ready")
)
