package xapi

import (
	"errors"
	"fmt"
)

var (
	// ErrSocketUsage is the parent of every error caused by calling the
	// connection lifecycle out of order.
	ErrSocketUsage       = errors.New("socket usage error")
	ErrAlreadyConnected  = fmt.Errorf("%w: tried to connect() without calling close()", ErrSocketUsage)
	ErrNotConnected      = fmt.Errorf("%w: tried to close() without calling connect()", ErrSocketUsage)
	ErrUseWithoutConnect = fmt.Errorf("%w: tried to use the API without calling connect() first", ErrSocketUsage)

	ErrConnectionClosed  = errors.New("connection closed by the server")
	ErrFrameTooLarge     = errors.New("response frame exceeds the maximum size")
	ErrMalformedResponse = errors.New("response is not a valid JSON document")
	ErrTagMismatch       = errors.New("response customTag does not match the request")
	ErrEmptyReturnData   = errors.New("response has no returnData")
	ErrDecodeReturnData  = errors.New("returnData does not match the record schema")
	ErrInvalidParam      = errors.New("the param is invalid")
)

const (
	unknownErrorCode        = "Unknown Error"
	unknownErrorDescription = "Unknown Description"
)

// APIError is returned when the server answers with status false.
type APIError struct {
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("there was an error connecting to the API. %s: %s", e.Code, e.Description)
}

func newAPIError(code, description string) *APIError {
	if code == "" {
		code = unknownErrorCode
	}
	if description == "" {
		description = unknownErrorDescription
	}
	return &APIError{Code: code, Description: description}
}
