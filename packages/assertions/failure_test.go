package assertions

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"github.com/stretchr/testify/assert"
)

// recordingT collects reported failures instead of stopping the test. Like
// testing.T it remembers which functions called Helper and attributes each
// failure to the first frame that did not.
type recordingT struct {
	messages    []string
	frames      []runtime.Frame
	failNows    int
	helpers     int
	helperFuncs map[string]bool
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
	r.frames = append(r.frames, r.callerFrame())
}

func (r *recordingT) FailNow() {
	r.failNows++
}

func (r *recordingT) Helper() {
	r.helpers++
	var pc [1]uintptr
	if runtime.Callers(2, pc[:]) == 0 {
		return
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	if r.helperFuncs == nil {
		r.helperFuncs = make(map[string]bool)
	}
	r.helperFuncs[frame.Function] = true
}

func (r *recordingT) callerFrame() runtime.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !r.helperFuncs[frame.Function] || !more {
			return frame
		}
	}
}

func (r *recordingT) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func newRecorder() (*recordingT, *Asserter) {
	rec := &recordingT{}
	return rec, New(rec, WithNoColor(true))
}

func TestBecauseReason(t *testing.T) {
	tests := []struct {
		name     string
		because  []any
		expected string
	}{
		{"none", nil, ""},
		{"empty string", []any{""}, ""},
		{"whitespace", []any{"   "}, ""},
		{"prefixed automatically", []any{"it is the landing page"}, "because it is the landing page"},
		{"already explanatory", []any{"because it is the landing page"}, "because it is the landing page"},
		{"capitalized because", []any{"Because reasons"}, "Because reasons"},
		{"because alone", []any{"because"}, "because"},
		{"because with punctuation", []any{"because: legal said so"}, "because: legal said so"},
		{"word starting with because", []any{"becauseless edits are rejected"}, "because becauseless edits are rejected"},
		{"format args", []any{"the %s page has id %d", "home", 7}, "because the home page has id 7"},
		{"percent without args", []any{"100% sure"}, "because 100% sure"},
		{"non-string", []any{42}, "because 42"},
		{"trimmed", []any{"  it matters  "}, "because it matters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, becauseReason(tt.because))
		})
	}
}

func TestFailure_Messages(t *testing.T) {
	tests := []struct {
		name     string
		failure  *Failure
		expected string
	}{
		{
			name:     "type mismatch",
			failure:  &Failure{Kind: TypeMismatch, Context: "ActionResult", Expected: label("ViewResult"), Actual: label("RedirectResult")},
			expected: "Expected ActionResult to be ViewResult, but found RedirectResult.",
		},
		{
			name:     "value mismatch with reason",
			failure:  &Failure{Kind: ValueMismatch, Context: "ViewResult.ViewName", Expected: "index", Actual: "xyz", Reason: "because it is the landing page"},
			expected: `Expected ViewResult.ViewName to be "index" because it is the landing page, but found "xyz".`,
		},
		{
			name:     "key not found",
			failure:  &Failure{Kind: KeyNotFound, Context: "ViewResult.TempData", Expected: "missing", Actual: []string{"key1"}},
			expected: `Expected ViewResult.TempData to contain key "missing", but found keys ["key1"].`,
		},
		{
			name:     "wrong model type",
			failure:  &Failure{Kind: WrongModelType, Context: "ViewResult.Model", Expected: label("int"), Actual: label("string")},
			expected: "Expected ViewResult.Model to be of type int, but found string.",
		},
		{
			name:     "route not found",
			failure:  &Failure{Kind: RouteNotFound, Context: "RouteTable", Expected: "~/a/b"},
			expected: `Expected RouteTable to match "~/a/b", but no route did.`,
		},
		{
			name:     "detail and cause",
			failure:  &Failure{Kind: ValueMismatch, Context: "X", Expected: 1, Actual: 2, Err: errors.New("boom"), Detail: "more\n"},
			expected: "Expected X to be 1, but found 2.\nboom\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.failure.Error())
		})
	}
}

func TestFailure_Is(t *testing.T) {
	cause := errors.New("cause")
	f := &Failure{Kind: KeyNotFound, Err: cause}

	assert.ErrorIs(t, f, ErrKeyNotFound)
	assert.ErrorIs(t, f, cause)
	assert.NotErrorIs(t, f, ErrValueMismatch)

	var target *Failure
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", f), &target))
	assert.Equal(t, KeyNotFound, target.Kind)
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "TypeMismatch", TypeMismatch.String())
	assert.Equal(t, "ValueMismatch", ValueMismatch.String())
	assert.Equal(t, "KeyNotFound", KeyNotFound.String())
	assert.Equal(t, "WrongModelType", WrongModelType.String())
	assert.Equal(t, "RouteNotFound", RouteNotFound.String())
	assert.Equal(t, "Unknown", FailureKind(0).String())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "<nil>", formatValue(nil))
	assert.Equal(t, `"a"`, formatValue("a"))
	assert.Equal(t, "ViewResult", formatValue(label("ViewResult")))
	assert.Equal(t, "[]byte(len=3)", formatValue([]byte("abc")))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "{id=1}", formatValue(route.ValuesOf(map[string]any{"id": 1})))
}

func TestChain_ReportsOnceAndShortCircuits(t *testing.T) {
	rec, a := newRecorder()

	wrapper := a.ViewResult(nil).
		WithViewName("index").
		WithMasterName("layout")

	assert.Len(t, rec.messages, 1)
	assert.Equal(t, 1, rec.failNows)
	assert.Positive(t, rec.helpers)
	assert.ErrorIs(t, wrapper.Err(), ErrTypeMismatch)
	assert.True(t, wrapper.Failed())
	assert.Equal(t, "Expected ViewResult to be ViewResult, but found <nil>.", rec.last())
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		expected any
		equal    bool
	}{
		{"same string", "value1", "value1", true},
		{"different string", "value1", "xyz", false},
		{"string number vs int", "444", 444, true},
		{"int vs float", 3, 3.0, true},
		{"numbers differ", "5", 6, false},
		{"bool text", true, "true", true},
		{"string vs slice", "[1 2]", []int{1, 2}, false},
		{"slice vs string", []int{1, 2}, "[1 2]", false},
		{"map vs string", map[string]int{"a": 1}, "map[a:1]", false},
		{"two strings", "abc", "ABC", false},
		{"bool vs int", true, 1, false},
		{"nil vs string", nil, "x", false},
		{"nil vs nil", nil, nil, true},
		{"slices", []int{1, 2}, []int{1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, valuesEqual(tt.actual, tt.expected))
		})
	}
}
