package odds

// OddsError is a custom error type for probability and EV errors
type OddsError string

// Error implements the error interface
func (e OddsError) Error() string {
	return string(e)
}

const (
	ErrInsufficientShoe OddsError = "fewer than two cards remain in the shoe"
)
