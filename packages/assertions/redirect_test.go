package assertions

import (
	"testing"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"github.com/stretchr/testify/assert"
)

func TestRedirectResult(t *testing.T) {
	redirect := &result.Redirect{URL: "/Account/Login", Permanent: false}

	rec, a := newRecorder()
	a.ActionResult(redirect).BeRedirect().WithURL("/Account/Login").WithPermanent(false)
	assert.Empty(t, rec.messages)

	wrapper := a.RedirectResult(redirect).WithURL("/account/login")
	assert.ErrorIs(t, wrapper.Err(), ErrValueMismatch)
	assert.Equal(t, `Expected RedirectResult.URL to be "/account/login", but found "/Account/Login".`, rec.last())

	wrapper = a.RedirectResult(redirect).WithPermanent(true, "the page moved for good")
	assert.Equal(t, "Expected RedirectResult.Permanent to be true because the page moved for good, but found false.", rec.last())
	assert.ErrorIs(t, wrapper.Err(), ErrValueMismatch)
}

func TestRedirectToRouteResult(t *testing.T) {
	redirect := &result.RedirectToRoute{
		RouteName: "Default",
		RouteValues: route.ValuesOf(map[string]any{
			"controller": "Product",
			"action":     "Details",
			"id":         12,
		}),
	}

	tests := []struct {
		name     string
		check    func(*RedirectToRouteResultAssertions)
		kind     error
		expected string
	}{
		{
			name: "matching",
			check: func(a *RedirectToRouteResultAssertions) {
				a.WithRouteName("default").
					WithController("product").
					WithAction("DETAILS").
					WithRouteValue("ID", "12").
					WithPermanent(false)
			},
		},
		{
			name:     "controller mismatch",
			check:    func(a *RedirectToRouteResultAssertions) { a.WithController("Home") },
			kind:     ErrValueMismatch,
			expected: `Expected RedirectToRouteResult.RouteValues["controller"] to be "Home", but found "Product".`,
		},
		{
			name:     "area missing",
			check:    func(a *RedirectToRouteResultAssertions) { a.WithArea("Admin") },
			kind:     ErrKeyNotFound,
			expected: `Expected RedirectToRouteResult.RouteValues to contain key "area", but found keys ["action", "controller", "id"].`,
		},
		{
			name:     "route value mismatch",
			check:    func(a *RedirectToRouteResultAssertions) { a.WithRouteValue("id", 13) },
			kind:     ErrValueMismatch,
			expected: `Expected RedirectToRouteResult.RouteValues["id"] to be 13, but found 12.`,
		},
		{
			name:     "route name mismatch",
			check:    func(a *RedirectToRouteResultAssertions) { a.WithRouteName("Products") },
			kind:     ErrValueMismatch,
			expected: `Expected RedirectToRouteResult.RouteName to be "Products", but found "Default".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, a := newRecorder()
			wrapper := a.ActionResult(redirect).BeRedirectToRoute()
			tt.check(wrapper)

			if tt.expected == "" {
				assert.NoError(t, wrapper.Err())
				assert.Empty(t, rec.messages)
				return
			}
			assert.ErrorIs(t, wrapper.Err(), tt.kind)
			assert.Equal(t, tt.expected, rec.last())
		})
	}
}

func TestRedirectToRouteResult_Accessors(t *testing.T) {
	redirect := &result.RedirectToRoute{RouteValues: route.ValuesOf(map[string]any{"Controller": "Home"})}

	rec, a := newRecorder()
	wrapper := a.ActionResult(redirect).BeRedirectToRoute()
	assert.Same(t, redirect, wrapper.Subject())

	values := wrapper.RouteValues()
	values.Set("controller", "Other")
	assert.Equal(t, "Home", redirect.RouteValues.StringValue("controller"), "accessors must not expose the subject's values")
	assert.Empty(t, rec.messages)

	assert.Equal(t, 0, a.RedirectToRouteResult(&result.Empty{}).RouteValues().Len())
	assert.Len(t, rec.messages, 1)
}

func TestRedirectToRouteResult_WrongVariant(t *testing.T) {
	rec, a := newRecorder()
	a.ActionResult(&result.Redirect{URL: "/"}).BeRedirectToRoute().WithController("Home")

	assert.Len(t, rec.messages, 1)
	assert.Equal(t, "Expected ActionResult to be RedirectToRouteResult, but found RedirectResult.", rec.last())
}
