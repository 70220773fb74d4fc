package assertions

import (
	"errors"

	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"github.com/abdul-hamid-achik/actionspec/packages/routing"
)

// RouteDataAssertions checks the outcome of matching a URL against a route table.
type RouteDataAssertions struct {
	*chain
	data *route.Data
	url  string
}

// RouteData wraps already resolved route data. A nil data fails with
// RouteNotFound at the first check.
func RouteData(t TestingT, data *route.Data) *RouteDataAssertions {
	return New(t).RouteData(data)
}

func (a *Asserter) RouteData(data *route.Data) *RouteDataAssertions {
	return &RouteDataAssertions{chain: a.newChain(), data: data}
}

// Route resolves url against table through a fake context and wraps the
// result. Failing to resolve is reported right away.
func Route(t TestingT, table *route.Table, url string) *RouteDataAssertions {
	helperOf(t).Helper()
	return New(t).Route(table, url)
}

func (a *Asserter) Route(table *route.Table, url string) *RouteDataAssertions {
	ra := &RouteDataAssertions{chain: a.newChain(), url: routing.NormalizeURL(url)}
	ra.helper.Helper()
	data, err := routing.ResolveRoute(table, url, a.opts.routing...)
	if err != nil {
		ra.fail(routeFailure(ra.url, err, nil))
		return ra
	}
	ra.data = data
	return ra
}

func routeFailure(expected any, err error, because []any) *Failure {
	f := &Failure{
		Kind:     RouteNotFound,
		Context:  "RouteTable",
		Expected: expected,
		Reason:   becauseReason(because),
	}
	// The not-found case is already described by the message itself.
	if !errors.Is(err, routing.ErrRouteNotFound) {
		f.Err = err
	}
	return f
}

// Data returns the matched route data, or nil.
func (a *RouteDataAssertions) Data() *route.Data {
	return a.data
}

func (a *RouteDataAssertions) matched(because []any) *route.Data {
	a.helper.Helper()
	if a.Failed() {
		return nil
	}
	if a.data == nil {
		expected := any(a.url)
		if a.url == "" {
			expected = label("a URL")
		}
		a.fail(routeFailure(expected, nil, because))
		return nil
	}
	return a.data
}

// HaveValue checks a route value, compared loosely since matched values are strings.
func (a *RouteDataAssertions) HaveValue(key string, expected any, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		a.expectEntry("RouteData.Values", d.Values.Map(), key, expected, valuesEqual, because)
	}
	return a
}

func (a *RouteDataAssertions) HaveController(expected string, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		a.expectName("RouteData.Controller", expected, d.Controller(), because)
	}
	return a
}

func (a *RouteDataAssertions) HaveAction(expected string, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		a.expectName("RouteData.Action", expected, d.Action(), because)
	}
	return a
}

// HaveArea checks the "area" route value or data token.
func (a *RouteDataAssertions) HaveArea(expected string, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		a.expectName("RouteData.Area", expected, d.Area(), because)
	}
	return a
}

func (a *RouteDataAssertions) HaveDataToken(key string, expected any, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		a.expectEntry("RouteData.DataTokens", d.DataTokens.Map(), key, expected, valuesEqual, because)
	}
	return a
}

// HaveRouteName checks which named route matched.
func (a *RouteDataAssertions) HaveRouteName(expected string, because ...any) *RouteDataAssertions {
	a.helper.Helper()
	if d := a.matched(because); d != nil {
		name := ""
		if d.Route != nil {
			name = d.Route.Name
		}
		a.expectName("RouteData.RouteName", expected, name, because)
	}
	return a
}

// URLAssertions checks a URL generated from route values.
type URLAssertions struct {
	*chain
	url string
}

// GeneratedURL generates the URL for values and wraps it. Failing to
// generate is reported right away.
func GeneratedURL(t TestingT, table *route.Table, values route.Values, opts ...routing.Option) *URLAssertions {
	helperOf(t).Helper()
	return New(t).GeneratedURL(table, values, opts...)
}

func (a *Asserter) GeneratedURL(table *route.Table, values route.Values, opts ...routing.Option) *URLAssertions {
	ua := &URLAssertions{chain: a.newChain()}
	ua.helper.Helper()
	all := append(append([]routing.Option{}, a.opts.routing...), opts...)
	url, err := routing.GenerateURL(table, values, all...)
	if err != nil {
		ua.fail(routeFailure(values, err, nil))
		return ua
	}
	ua.url = url
	return ua
}

// URL returns the generated URL, or "" after a failure.
func (a *URLAssertions) URL() string {
	return a.url
}

func (a *URLAssertions) Be(expected string, because ...any) *URLAssertions {
	a.helper.Helper()
	if !a.Failed() {
		a.expectExact("GeneratedURL", expected, a.url, because)
	}
	return a
}
