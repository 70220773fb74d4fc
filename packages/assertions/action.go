package assertions

import "github.com/abdul-hamid-achik/actionspec/packages/result"

// ActionResultAssertions checks which variant an action produced.
type ActionResultAssertions struct {
	*chain
	subject result.Result
}

// ActionResult wraps r for assertions reported to t.
func ActionResult(t TestingT, r result.Result) *ActionResultAssertions {
	return New(t).ActionResult(r)
}

func (a *Asserter) ActionResult(r result.Result) *ActionResultAssertions {
	return &ActionResultAssertions{chain: a.newChain(), subject: r}
}

// Subject returns the wrapped result.
func (a *ActionResultAssertions) Subject() result.Result {
	return a.subject
}

// BeKind checks that the result is of variant kind.
func (a *ActionResultAssertions) BeKind(kind result.Kind, because ...any) *ActionResultAssertions {
	a.helper.Helper()
	if a.Failed() {
		return a
	}
	if !isNilResult(a.subject) && a.subject.Kind() == kind {
		return a
	}
	actual := result.KindOf(a.subject)
	if a.subject != nil && isNilResult(a.subject) {
		actual = "<nil>"
	}
	a.fail(&Failure{
		Kind:     TypeMismatch,
		Context:  "ActionResult",
		Expected: label(kind.String()),
		Actual:   label(actual),
		Reason:   becauseReason(because),
	})
	return a
}

func (a *ActionResultAssertions) BeView(because ...any) *ViewResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindView, because...)
	return &ViewResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BePartialView(because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindPartialView, because...)
	return &PartialViewResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BeRedirect(because ...any) *RedirectResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindRedirect, because...)
	return &RedirectResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BeRedirectToRoute(because ...any) *RedirectToRouteResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindRedirectToRoute, because...)
	return &RedirectToRouteResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BeContent(because ...any) *ContentResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindContent, because...)
	return &ContentResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BeEmpty(because ...any) *ActionResultAssertions {
	a.helper.Helper()
	return a.BeKind(result.KindEmpty, because...)
}

func (a *ActionResultAssertions) BeStatusCode(because ...any) *StatusCodeResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindStatusCode, because...)
	return &StatusCodeResultAssertions{chain: a.chain, subject: a.subject}
}

func (a *ActionResultAssertions) BeFile(because ...any) *FileResultAssertions {
	a.helper.Helper()
	a.BeKind(result.KindFile, because...)
	return &FileResultAssertions{chain: a.chain, subject: a.subject}
}
