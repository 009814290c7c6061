package shoe

// ShoeError is a custom error type for shoe construction errors
type ShoeError string

// Error implements the error interface
func (e ShoeError) Error() string {
	return string(e)
}

const (
	ErrInvalidDeckCount ShoeError = "deck count must be at least 1"
)
