package vault

import "errors"

// ErrorKind tags a classified service outcome. The string value is the
// short phrase exposed in the error body of the HTTP layer.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "Not Found"
	KindBadRequest ErrorKind = "Bad Request"
	KindInternal   ErrorKind = "Internal Server Error"
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NotFoundError(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func BadRequestError(message string) error {
	return &ServiceError{Kind: KindBadRequest, Message: message}
}

func InternalError(message string) error {
	return &ServiceError{Kind: KindInternal, Message: message}
}

// Classify passes an already classified error through unchanged and
// wraps anything else as an internal error with the given message. The
// underlying cause is only for the caller to log, never to expose.
func Classify(err error, internalMessage string) error {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return InternalError(internalMessage)
}
