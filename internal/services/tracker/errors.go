package tracker

import "github.com/KirkDiggler/dragontiger/internal/odds"

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

const (
	ErrInvalidConfig    TrackerError = "invalid config"
	ErrInvalidRound     TrackerError = "invalid round"
	ErrNilInput         TrackerError = "input cannot be nil"
	ErrNilSession       TrackerError = "session cannot be nil"
	ErrNilConfig        TrackerError = "config cannot be nil"
	ErrNilLedgerRepo    TrackerError = "ledger repository cannot be nil"
	ErrNilClock         TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator TrackerError = "UUID generator cannot be nil"
)

// ErrInsufficientShoe is returned by GetDisplay once fewer than two cards remain
var ErrInsufficientShoe = odds.ErrInsufficientShoe
