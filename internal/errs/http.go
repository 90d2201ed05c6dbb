package errs

import (
	"errors"
	"net/http"
	"strings"
)

// HTTPError is the JSON shape the upstream HTTP layer sends to clients.
//
// The core never writes responses itself; this only gives the transport a
// stable mapping from Kind to status and code.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HTTPStatus maps the Kind of err to an HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case ConnectionFailure:
		return http.StatusServiceUnavailable
	case Forbidden:
		return http.StatusForbidden
	case Invalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicError is implemented by wrapped errors that carry a code and
// message safe to show to clients, such as database constraint errors.
type PublicError interface {
	PublicCode() string
	PublicMessage() string
}

// ToHTTP converts err into an *HTTPError.
//
// Internal details (driver messages, SQL) are not leaked: the message is
// the status text, except for Invalid where the wrapped reason is safe to show
// and for errors carrying a PublicError.
func ToHTTP(err error) *HTTPError {
	status := HTTPStatus(err)
	code := MakeUpperCaseWithUnderscores(http.StatusText(status))
	message := http.StatusText(status)

	var e *Error
	if errors.As(err, &e) && e.Kind == Invalid && e.Err != nil {
		message = e.Err.Error()
	}

	var pub PublicError
	if errors.As(err, &pub) && pub.PublicMessage() != "" {
		message = pub.PublicMessage()
		if pub.PublicCode() != "" {
			code = pub.PublicCode()
		}
	}

	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
