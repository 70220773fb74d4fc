package route

import "errors"

var (
	// ErrInvalidPattern is returned when a route pattern cannot be parsed.
	ErrInvalidPattern = errors.New("invalid route pattern")
	// ErrUnsupported is returned when matching needs a request capability
	// the supplied Context does not provide.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrDuplicateRoute is returned when a route name is registered twice.
	ErrDuplicateRoute = errors.New("duplicate route name")
	// ErrUnknownRoute is returned when a named route does not exist.
	ErrUnknownRoute = errors.New("unknown route name")
)

// Context is the part of an HTTP request that route matching reads.
type Context interface {
	// ApplicationPath is the virtual root of the application, e.g. "/".
	ApplicationPath() string
	// AppRelativePath is the request path relative to the application root,
	// starting with the "~/" marker.
	AppRelativePath() string
	ServerVariables() map[string]string
}

// MethodContext is implemented by contexts that know the request method.
// Only routes with a method constraint need it.
type MethodContext interface {
	Context
	HTTPMethod() string
}
