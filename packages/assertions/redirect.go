package assertions

import (
	"github.com/abdul-hamid-achik/actionspec/packages/result"
	"github.com/abdul-hamid-achik/actionspec/packages/route"
)

// RedirectResultAssertions checks a *result.Redirect.
type RedirectResultAssertions struct {
	*chain
	subject result.Result
}

func RedirectResult(t TestingT, r result.Result) *RedirectResultAssertions {
	return New(t).RedirectResult(r)
}

func (a *Asserter) RedirectResult(r result.Result) *RedirectResultAssertions {
	return &RedirectResultAssertions{chain: a.newChain(), subject: r}
}

func (a *RedirectResultAssertions) redirect(because []any) *result.Redirect {
	a.helper.Helper()
	v, _ := variant[*result.Redirect](a.chain, a.subject, result.KindRedirect, "RedirectResult", because)
	return v
}

func (a *RedirectResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *RedirectResultAssertions) WithURL(expected string, because ...any) *RedirectResultAssertions {
	a.helper.Helper()
	if r := a.redirect(because); r != nil {
		a.expectExact("RedirectResult.URL", expected, r.URL, because)
	}
	return a
}

func (a *RedirectResultAssertions) WithPermanent(expected bool, because ...any) *RedirectResultAssertions {
	a.helper.Helper()
	if r := a.redirect(because); r != nil {
		a.expectExact("RedirectResult.Permanent", expected, r.Permanent, because)
	}
	return a
}

// RedirectToRouteResultAssertions checks a *result.RedirectToRoute.
type RedirectToRouteResultAssertions struct {
	*chain
	subject result.Result
}

func RedirectToRouteResult(t TestingT, r result.Result) *RedirectToRouteResultAssertions {
	return New(t).RedirectToRouteResult(r)
}

func (a *Asserter) RedirectToRouteResult(r result.Result) *RedirectToRouteResultAssertions {
	return &RedirectToRouteResultAssertions{chain: a.newChain(), subject: r}
}

func (a *RedirectToRouteResultAssertions) redirect(because []any) *result.RedirectToRoute {
	a.helper.Helper()
	v, _ := variant[*result.RedirectToRoute](a.chain, a.subject, result.KindRedirectToRoute, "RedirectToRouteResult", because)
	return v
}

func (a *RedirectToRouteResultAssertions) Subject() result.Result {
	return a.subject
}

// RouteValues returns a copy of the declared route values, or empty values
// after a failure.
func (a *RedirectToRouteResultAssertions) RouteValues() route.Values {
	a.helper.Helper()
	if r := a.redirect(nil); r != nil {
		return r.RouteValues.Clone()
	}
	return route.Values{}
}

func (a *RedirectToRouteResultAssertions) WithRouteName(expected string, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	if r := a.redirect(because); r != nil {
		a.expectName("RedirectToRouteResult.RouteName", expected, r.RouteName, because)
	}
	return a
}

func (a *RedirectToRouteResultAssertions) WithRouteValue(key string, expected any, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	if r := a.redirect(because); r != nil {
		a.expectEntry("RedirectToRouteResult.RouteValues", r.RouteValues.Map(), key, expected, valuesEqual, because)
	}
	return a
}

func (a *RedirectToRouteResultAssertions) WithController(expected string, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	return a.withNamedValue("controller", expected, because)
}

func (a *RedirectToRouteResultAssertions) WithAction(expected string, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	return a.withNamedValue("action", expected, because)
}

func (a *RedirectToRouteResultAssertions) WithArea(expected string, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	return a.withNamedValue("area", expected, because)
}

func (a *RedirectToRouteResultAssertions) WithPermanent(expected bool, because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	if r := a.redirect(because); r != nil {
		a.expectExact("RedirectToRouteResult.Permanent", expected, r.Permanent, because)
	}
	return a
}

func (a *RedirectToRouteResultAssertions) withNamedValue(key, expected string, because []any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	r := a.redirect(because)
	if r == nil {
		return a
	}
	if !r.RouteValues.Has(key) {
		a.fail(&Failure{
			Kind:     KeyNotFound,
			Context:  "RedirectToRouteResult.RouteValues",
			Expected: key,
			Actual:   r.RouteValues.Keys(),
			Reason:   becauseReason(because),
		})
		return a
	}
	a.expectName("RedirectToRouteResult.RouteValues[\""+key+"\"]", expected, r.RouteValues.StringValue(key), because)
	return a
}
