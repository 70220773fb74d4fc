package assertions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"github.com/fatih/color"
)

// FailureKind classifies an assertion failure.
type FailureKind int

const (
	// TypeMismatch: the subject is not the expected result variant.
	TypeMismatch FailureKind = iota + 1
	// ValueMismatch: a declared field differs from the expected value.
	ValueMismatch
	// KeyNotFound: an expected key is absent from a key/value mapping.
	KeyNotFound
	// WrongModelType: the model cannot be narrowed to the requested type.
	WrongModelType
	// RouteNotFound: no route matches a URL or expresses a set of values.
	RouteNotFound
)

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrValueMismatch  = errors.New("value mismatch")
	ErrKeyNotFound    = errors.New("key not found")
	ErrWrongModelType = errors.New("wrong model type")
	ErrRouteNotFound  = errors.New("route not found")
)

func (k FailureKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case ValueMismatch:
		return "ValueMismatch"
	case KeyNotFound:
		return "KeyNotFound"
	case WrongModelType:
		return "WrongModelType"
	case RouteNotFound:
		return "RouteNotFound"
	default:
		return "Unknown"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case TypeMismatch:
		return ErrTypeMismatch
	case ValueMismatch:
		return ErrValueMismatch
	case KeyNotFound:
		return ErrKeyNotFound
	case WrongModelType:
		return ErrWrongModelType
	case RouteNotFound:
		return ErrRouteNotFound
	default:
		return nil
	}
}

// Failure describes a failed check. The message is built only when asked for.
type Failure struct {
	Kind     FailureKind
	Context  string // what was inspected, e.g. "ViewResult.ViewName"
	Expected any
	Actual   any
	Reason   string // already normalized to start with "because"
	Detail   string // extra lines such as a diff
	Err      error  // underlying cause, if any
}

func (f *Failure) Error() string {
	return f.render(plain)
}

// Unwrap exposes the kind sentinel and the underlying cause to errors.Is.
func (f *Failure) Unwrap() []error {
	errs := []error{f.Kind.sentinel()}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}

type palette struct {
	expected func(a ...any) string
	actual   func(a ...any) string
}

var plain = palette{expected: fmt.Sprint, actual: fmt.Sprint}

func colored() palette {
	return palette{
		expected: color.New(color.FgGreen).SprintFunc(),
		actual:   color.New(color.FgRed).SprintFunc(),
	}
}

func (f *Failure) render(p palette) string {
	reason := ""
	if f.Reason != "" {
		reason = " " + f.Reason
	}
	expected := p.expected(formatValue(f.Expected))
	actual := p.actual(formatValue(f.Actual))

	var msg string
	switch f.Kind {
	case KeyNotFound:
		msg = fmt.Sprintf("Expected %s to contain key %s%s, but found keys %s.", f.Context, expected, reason, actual)
	case WrongModelType:
		msg = fmt.Sprintf("Expected %s to be of type %s%s, but found %s.", f.Context, expected, reason, actual)
	case RouteNotFound:
		msg = fmt.Sprintf("Expected %s to match %s%s, but no route did.", f.Context, expected, reason)
	default:
		msg = fmt.Sprintf("Expected %s to be %s%s, but found %s.", f.Context, expected, reason, actual)
	}

	if f.Err != nil {
		msg += "\n" + f.Err.Error()
	}
	if f.Detail != "" {
		msg += "\n" + strings.TrimRight(f.Detail, "\n")
	}
	return msg
}

// label is printed without quotes, for type and variant names.
type label string

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case label:
		return string(val)
	case string:
		return strconv.Quote(val)
	case []byte:
		return fmt.Sprintf("[]byte(len=%d)", len(val))
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case route.Values:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// becauseReason turns the optional because arguments into a phrase that
// starts with "because". The first argument is a format string for the rest.
func becauseReason(because []any) string {
	if len(because) == 0 {
		return ""
	}

	var reason string
	format, ok := because[0].(string)
	switch {
	case ok && len(because) == 1:
		reason = format
	case ok:
		reason = fmt.Sprintf(format, because[1:]...)
	default:
		reason = fmt.Sprint(because...)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ""
	}
	if !startsWithBecause(reason) {
		reason = "because " + reason
	}
	return reason
}

// startsWithBecause reports whether s opens with the word "because", not
// merely with those letters.
func startsWithBecause(s string) bool {
	const word = "because"
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[len(word):])
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}
