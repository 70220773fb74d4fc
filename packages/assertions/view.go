package assertions

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
	"github.com/google/go-cmp/cmp"
)

// ViewResultAssertions checks a *result.View.
type ViewResultAssertions struct {
	*chain
	subject result.Result
}

// ViewResult wraps r for view assertions. A non-view result fails at the first check.
func ViewResult(t TestingT, r result.Result) *ViewResultAssertions {
	return New(t).ViewResult(r)
}

func (a *Asserter) ViewResult(r result.Result) *ViewResultAssertions {
	return &ViewResultAssertions{chain: a.newChain(), subject: r}
}

func (a *ViewResultAssertions) view(because []any) *result.View {
	a.helper.Helper()
	v, _ := variant[*result.View](a.chain, a.subject, result.KindView, "ViewResult", because)
	return v
}

// Subject returns the wrapped result.
func (a *ViewResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *ViewResultAssertions) WithViewName(expected string, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectName("ViewResult.ViewName", expected, v.ViewName, because)
	}
	return a
}

// WithDefaultViewName checks that no explicit view name was set.
func (a *ViewResultAssertions) WithDefaultViewName(because ...any) *ViewResultAssertions {
	a.helper.Helper()
	return a.WithViewName("", because...)
}

func (a *ViewResultAssertions) WithMasterName(expected string, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectName("ViewResult.MasterName", expected, v.MasterName, because)
	}
	return a
}

func (a *ViewResultAssertions) WithTempData(key string, expected any, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectEntry("ViewResult.TempData", v.TempData, key, expected, exactEqual, because)
	}
	return a
}

func (a *ViewResultAssertions) WithViewData(key string, expected any, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectEntry("ViewResult.ViewData", v.ViewData, key, expected, exactEqual, because)
	}
	return a
}

// WithModel checks the model with deep equality. The failure includes a diff.
func (a *ViewResultAssertions) WithModel(expected any, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectModel("ViewResult.Model", expected, v.Model, because)
	}
	return a
}

// WithModelMatchingSchema validates the JSON encoding of the model against
// the JSON schema file at schemaPath.
func (a *ViewResultAssertions) WithModelMatchingSchema(schemaPath string, because ...any) *ViewResultAssertions {
	a.helper.Helper()
	if v := a.view(because); v != nil {
		a.expectModelSchema("ViewResult.Model", v.Model, schemaPath, because)
	}
	return a
}

// Model returns the declared model, or nil after a failure.
func (a *ViewResultAssertions) Model() any {
	a.helper.Helper()
	if v := a.view(nil); v != nil {
		return v.Model
	}
	return nil
}

// ModelAs returns the model of a view result narrowed to T. It fails with
// WrongModelType when the model is not a T and returns the zero T.
func ModelAs[T any](a *ViewResultAssertions, because ...any) T {
	a.helper.Helper()
	var zero T
	v := a.view(because)
	if v == nil {
		return zero
	}
	return narrowModel[T](a.chain, "ViewResult.Model", v.Model, because)
}

// PartialViewResultAssertions checks a *result.PartialView.
type PartialViewResultAssertions struct {
	*chain
	subject result.Result
}

// PartialViewResult wraps r for partial view assertions.
func PartialViewResult(t TestingT, r result.Result) *PartialViewResultAssertions {
	return New(t).PartialViewResult(r)
}

func (a *Asserter) PartialViewResult(r result.Result) *PartialViewResultAssertions {
	return &PartialViewResultAssertions{chain: a.newChain(), subject: r}
}

func (a *PartialViewResultAssertions) partial(because []any) *result.PartialView {
	a.helper.Helper()
	v, _ := variant[*result.PartialView](a.chain, a.subject, result.KindPartialView, "PartialViewResult", because)
	return v
}

func (a *PartialViewResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *PartialViewResultAssertions) WithViewName(expected string, because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	if v := a.partial(because); v != nil {
		a.expectName("PartialViewResult.ViewName", expected, v.ViewName, because)
	}
	return a
}

func (a *PartialViewResultAssertions) WithDefaultViewName(because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	return a.WithViewName("", because...)
}

func (a *PartialViewResultAssertions) WithTempData(key string, expected any, because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	if v := a.partial(because); v != nil {
		a.expectEntry("PartialViewResult.TempData", v.TempData, key, expected, exactEqual, because)
	}
	return a
}

func (a *PartialViewResultAssertions) WithViewData(key string, expected any, because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	if v := a.partial(because); v != nil {
		a.expectEntry("PartialViewResult.ViewData", v.ViewData, key, expected, exactEqual, because)
	}
	return a
}

func (a *PartialViewResultAssertions) WithModel(expected any, because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	if v := a.partial(because); v != nil {
		a.expectModel("PartialViewResult.Model", expected, v.Model, because)
	}
	return a
}

func (a *PartialViewResultAssertions) WithModelMatchingSchema(schemaPath string, because ...any) *PartialViewResultAssertions {
	a.helper.Helper()
	if v := a.partial(because); v != nil {
		a.expectModelSchema("PartialViewResult.Model", v.Model, schemaPath, because)
	}
	return a
}

func (a *PartialViewResultAssertions) Model() any {
	a.helper.Helper()
	if v := a.partial(nil); v != nil {
		return v.Model
	}
	return nil
}

// PartialModelAs is ModelAs for partial views.
func PartialModelAs[T any](a *PartialViewResultAssertions, because ...any) T {
	a.helper.Helper()
	var zero T
	v := a.partial(because)
	if v == nil {
		return zero
	}
	return narrowModel[T](a.chain, "PartialViewResult.Model", v.Model, because)
}

func narrowModel[T any](c *chain, context string, model any, because []any) T {
	c.helper.Helper()
	if m, ok := model.(T); ok {
		return m
	}
	var zero T
	c.fail(&Failure{
		Kind:     WrongModelType,
		Context:  context,
		Expected: label(typeName[T]()),
		Actual:   label(fmt.Sprintf("%T", model)),
		Reason:   becauseReason(because),
	})
	return zero
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func (c *chain) expectModel(context string, expected, actual any, because []any) {
	c.helper.Helper()
	if reflect.DeepEqual(expected, actual) {
		return
	}
	c.fail(&Failure{
		Kind:     ValueMismatch,
		Context:  context,
		Expected: expected,
		Actual:   actual,
		Reason:   becauseReason(because),
		Detail:   modelDiff(expected, actual),
	})
}

func modelDiff(expected, actual any) string {
	if expected == nil || actual == nil || reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return ""
	}
	diff := cmp.Diff(expected, actual, cmp.Exporter(func(reflect.Type) bool { return true }))
	if diff == "" {
		return ""
	}
	return "diff (-expected +actual):\n" + diff
}

func (c *chain) expectModelSchema(context string, model any, schemaPath string, because []any) {
	c.helper.Helper()
	data, err := json.Marshal(model)
	if err != nil {
		c.fail(&Failure{
			Kind:     ValueMismatch,
			Context:  context,
			Expected: label("JSON matching " + schemaPath),
			Actual:   label(fmt.Sprintf("%T", model)),
			Reason:   becauseReason(because),
			Err:      err,
		})
		return
	}
	c.expectSchema(context, data, schemaPath, because)
}
