package types

import "fmt"

// CustomError carries an HTTP status plus a machine-readable type so the
// central fiber error handler can render the uniform JSON envelope.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
