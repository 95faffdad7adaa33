package inference

import "errors"

var (
	// ErrConfiguration indicates no credential is available for the remote service.
	ErrConfiguration = errors.New("inference not configured")
	// ErrService indicates the remote call failed or produced no reply.
	ErrService = errors.New("inference service failed")
	// ErrFormat indicates the reply is not valid JSON after fence stripping.
	ErrFormat = errors.New("inference reply is not valid json")
	// ErrSchema indicates the parsed reply lacks a components array.
	ErrSchema = errors.New("inference reply missing components array")
)

// Reason returns a short diagnostic label for an inference error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrService):
		return "service"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrSchema):
		return "schema"
	default:
		return "unknown"
	}
}
