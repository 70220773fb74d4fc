package assertions

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/core/config"
	"github.com/abdul-hamid-achik/actionspec/packages/result"
	"github.com/abdul-hamid-achik/actionspec/packages/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestingT is what assertions report failures to. *testing.T satisfies it.
type TestingT = require.TestingT

type tHelper interface {
	Helper()
}

type noHelper struct{}

func (noHelper) Helper() {}

func helperOf(t TestingT) tHelper {
	if h, ok := t.(tHelper); ok {
		return h
	}
	return noHelper{}
}

type options struct {
	noColor bool
	routing []routing.Option
}

func (o *options) palette() palette {
	if o.noColor {
		return plain
	}
	return colored()
}

// Option configures an Asserter.
type Option func(*options)

// WithNoColor disables colored expected/actual values in reported failures.
func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

// WithRoutingOptions passes options to route resolution and URL generation.
func WithRoutingOptions(opts ...routing.Option) Option {
	return func(o *options) {
		o.routing = append(o.routing, opts...)
	}
}

// WithConfig applies color, routing and verbose logging settings from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.noColor = cfg.GetNoColor()
		o.routing = append(o.routing, routing.WithConfig(cfg))
		cfg.ApplyLogging()
	}
}

// Asserter creates assertion wrappers that report to the same TestingT.
type Asserter struct {
	t    TestingT
	opts options
}

// New returns an Asserter reporting to t.
func New(t TestingT, opts ...Option) *Asserter {
	a := &Asserter{t: t}
	for _, opt := range opts {
		opt(&a.opts)
	}
	return a
}

func (a *Asserter) newChain() *chain {
	return &chain{t: a.t, helper: helperOf(a.t), opts: &a.opts}
}

// chain is the state shared by every wrapper in one assertion expression.
// The first failure is kept and every later check becomes a no-op.
//
// Every function between a caller's check and fail calls helper.Helper()
// itself, so failures point at the test line rather than this package.
type chain struct {
	t       TestingT
	helper  tHelper
	opts    *options
	failure *Failure
}

// Err returns the first failure of the chain, or nil.
func (c *chain) Err() error {
	if c.failure == nil {
		return nil
	}
	return c.failure
}

// Failed reports whether a check in the chain has failed.
func (c *chain) Failed() bool {
	return c.failure != nil
}

func (c *chain) fail(f *Failure) {
	c.helper.Helper()
	if c.failure != nil {
		return
	}
	c.failure = f
	c.t.Errorf("%s", f.render(c.opts.palette()))
	c.t.FailNow()
}

// variant narrows subject to the wrapper's result type, failing with
// TypeMismatch when it is a different variant or a nil result.
func variant[T result.Result](c *chain, subject result.Result, want result.Kind, context string, because []any) (T, bool) {
	c.helper.Helper()
	var zero T
	if c.Failed() {
		return zero, false
	}
	v, ok := subject.(T)
	if ok && !isNilResult(subject) {
		return v, true
	}
	actual := result.KindOf(subject)
	if ok {
		actual = "<nil>"
	}
	c.fail(&Failure{
		Kind:     TypeMismatch,
		Context:  context,
		Expected: label(want.String()),
		Actual:   label(actual),
		Reason:   becauseReason(because),
	})
	return zero, false
}

func isNilResult(r result.Result) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// expectName compares names and identifiers case-insensitively.
func (c *chain) expectName(context, expected, actual string, because []any) {
	c.helper.Helper()
	if strings.EqualFold(expected, actual) {
		return
	}
	c.fail(&Failure{Kind: ValueMismatch, Context: context, Expected: expected, Actual: actual, Reason: becauseReason(because)})
}

// expectExact compares with exact equality.
func (c *chain) expectExact(context string, expected, actual any, because []any) {
	c.helper.Helper()
	if assert.ObjectsAreEqual(expected, actual) {
		return
	}
	c.fail(&Failure{Kind: ValueMismatch, Context: context, Expected: expected, Actual: actual, Reason: becauseReason(because)})
}

// expectEntry checks that m holds key (case-insensitively) with a value
// that equal considers the same as expected.
func (c *chain) expectEntry(context string, m map[string]any, key string, expected any, equal func(actual, expected any) bool, because []any) {
	c.helper.Helper()
	actual, ok := lookup(m, key)
	if !ok {
		c.fail(&Failure{Kind: KeyNotFound, Context: context, Expected: key, Actual: sortedKeys(m), Reason: becauseReason(because)})
		return
	}
	if equal(actual, expected) {
		return
	}
	c.fail(&Failure{
		Kind:     ValueMismatch,
		Context:  fmt.Sprintf("%s[%q]", context, key),
		Expected: expected,
		Actual:   actual,
		Reason:   becauseReason(because),
	})
}

func lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// exactEqual is the comparison for typed values such as temp and view data.
func exactEqual(actual, expected any) bool {
	return assert.ObjectsAreEqual(expected, actual)
}

// valuesEqual is the comparison for route values, which arrive as strings
// when parsed from a URL: exact equality, then numeric, then textual when
// exactly one side is a string and the other is a scalar.
func valuesEqual(actual, expected any) bool {
	if assert.ObjectsAreEqual(expected, actual) {
		return true
	}

	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if aOk && eOk {
		return actualNum == expectedNum
	}

	if !isScalar(actual) || !isScalar(expected) {
		return false
	}
	_, aStr := actual.(string)
	_, eStr := expected.(string)
	if aStr == eStr {
		return false
	}
	return fmt.Sprintf("%v", actual) == fmt.Sprintf("%v", expected)
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
