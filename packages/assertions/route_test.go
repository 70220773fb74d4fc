package assertions

import (
	"context"
	"log/slog"
	"testing"

	"github.com/abdul-hamid-achik/actionspec/packages/core/config"
	"github.com/abdul-hamid-achik/actionspec/packages/logger"
	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"github.com/abdul-hamid-achik/actionspec/packages/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopTable(t *testing.T) *route.Table {
	t.Helper()
	table := route.NewTable()

	_, err := table.MapRoute("Admin", "admin/{controller}/{action}", map[string]any{"action": "Index"},
		route.WithConstraints(map[string]string{"controller": "users|roles"}),
		route.WithDataTokens(map[string]any{"area": "Admin"}))
	require.NoError(t, err)

	_, err = table.MapRoute("Checkout", "checkout", map[string]any{"controller": "Cart", "action": "Checkout"},
		route.WithMethods("POST"))
	require.NoError(t, err)

	_, err = table.MapRoute("Default", "{controller}/{action}/{id}", map[string]any{
		"controller": "Home",
		"action":     "Index",
		"id":         route.Optional,
	}, route.WithConstraints(map[string]string{"id": `\d*`}))
	require.NoError(t, err)

	return table
}

func TestRoute(t *testing.T) {
	table := shopTable(t)

	tests := []struct {
		name     string
		url      string
		check    func(*RouteDataAssertions)
		kind     error
		expected string
	}{
		{
			name: "default route",
			url:  "~/Product/Edit/444",
			check: func(a *RouteDataAssertions) {
				a.HaveController("product").
					HaveAction("edit").
					HaveValue("id", 444).
					HaveRouteName("Default")
			},
		},
		{
			name: "rooted url with defaults",
			url:  "/",
			check: func(a *RouteDataAssertions) {
				a.HaveController("Home").HaveAction("Index")
			},
		},
		{
			name: "area from data token",
			url:  "admin/users",
			check: func(a *RouteDataAssertions) {
				a.HaveArea("admin").
					HaveDataToken("area", "Admin").
					HaveController("users").
					HaveAction("Index").
					HaveRouteName("Admin")
			},
		},
		{
			name:     "controller mismatch",
			url:      "Product/List",
			check:    func(a *RouteDataAssertions) { a.HaveController("Home", "the landing page is served by Home") },
			kind:     ErrValueMismatch,
			expected: `Expected RouteData.Controller to be "Home" because the landing page is served by Home, but found "Product".`,
		},
		{
			name:     "value missing",
			url:      "Product/List",
			check:    func(a *RouteDataAssertions) { a.HaveValue("category", "toys") },
			kind:     ErrKeyNotFound,
			expected: `Expected RouteData.Values to contain key "category", but found keys ["action", "controller"].`,
		},
		{
			name:     "constraint rejects url",
			url:      "Product/Edit/abc",
			check:    func(a *RouteDataAssertions) { a.HaveController("Product") },
			kind:     ErrRouteNotFound,
			expected: `Expected RouteTable to match "~/Product/Edit/abc", but no route did.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, a := newRecorder()
			wrapper := a.Route(table, tt.url)
			tt.check(wrapper)

			if tt.expected == "" {
				assert.NoError(t, wrapper.Err())
				assert.Empty(t, rec.messages)
				require.NotNil(t, wrapper.Data())
				return
			}
			assert.ErrorIs(t, wrapper.Err(), tt.kind)
			assert.Equal(t, tt.expected, rec.last())
			assert.Len(t, rec.messages, 1)
		})
	}
}

func TestRoute_UnsupportedCapability(t *testing.T) {
	rec, a := newRecorder()
	wrapper := a.Route(shopTable(t), "checkout").HaveController("Cart")

	assert.ErrorIs(t, wrapper.Err(), ErrRouteNotFound)
	assert.ErrorIs(t, wrapper.Err(), route.ErrUnsupported)
	assert.Len(t, rec.messages, 1)
	assert.Contains(t, rec.last(), "needs the request method")
}

func TestRouteData(t *testing.T) {
	table := shopTable(t)
	data, err := routing.ResolveRoute(table, "Product/List")
	require.NoError(t, err)

	rec, a := newRecorder()
	a.RouteData(data).HaveController("Product").HaveAction("List")
	assert.Empty(t, rec.messages)

	wrapper := a.RouteData(nil).HaveController("Product")
	assert.ErrorIs(t, wrapper.Err(), ErrRouteNotFound)
	assert.Equal(t, "Expected RouteTable to match a URL, but no route did.", rec.last())
}

func TestGeneratedURL(t *testing.T) {
	table := shopTable(t)
	values := route.ValuesOf(map[string]any{"controller": "product", "action": "edit", "id": 444})

	t.Run("app relative", func(t *testing.T) {
		rec, a := newRecorder()
		wrapper := a.GeneratedURL(table, values).Be("~/product/edit/444")
		assert.Equal(t, "~/product/edit/444", wrapper.URL())
		assert.Empty(t, rec.messages)
	})

	t.Run("compared exactly", func(t *testing.T) {
		rec, a := newRecorder()
		wrapper := a.GeneratedURL(table, values).Be("~/Product/Edit/444")
		assert.ErrorIs(t, wrapper.Err(), ErrValueMismatch)
		assert.Equal(t, `Expected GeneratedURL to be "~/Product/Edit/444", but found "~/product/edit/444".`, rec.last())
	})

	t.Run("prefix option", func(t *testing.T) {
		rec, a := newRecorder()
		a.GeneratedURL(table, values, routing.WithURLPrefix("/")).Be("/product/edit/444")
		assert.Empty(t, rec.messages)
	})

	t.Run("prefix from config", func(t *testing.T) {
		rec := &recordingT{}
		cfg := config.DefaultConfig().Merge(&config.Config{URLPrefix: "/store", NoColor: config.BoolPtr(true)})
		New(rec, WithConfig(cfg)).GeneratedURL(table, values).Be("/store/product/edit/444")
		assert.Empty(t, rec.messages)
	})

	t.Run("no route", func(t *testing.T) {
		rec, a := newRecorder()
		wrapper := a.GeneratedURL(table, values, routing.WithRouteName("Checkout")).Be("~/checkout")
		assert.ErrorIs(t, wrapper.Err(), ErrRouteNotFound)
		assert.Empty(t, wrapper.URL())
		assert.Len(t, rec.messages, 1)
	})

	t.Run("package level", func(t *testing.T) {
		rec := &recordingT{}
		GeneratedURL(rec, table, route.ValuesOf(map[string]any{"controller": "Home", "action": "Index"})).Be("~/")
		Route(rec, table, "~/").HaveController("Home")
		RouteData(rec, nil)
		assert.Empty(t, rec.messages)
	})
}

func TestWithRoutingOptions(t *testing.T) {
	table := shopTable(t)
	rec := &recordingT{}
	a := New(rec, WithNoColor(true), WithRoutingOptions(routing.WithApplicationPath("/shop")))

	a.Route(table, "Product/List").HaveController("Product")
	assert.Empty(t, rec.messages)
}

func TestWithConfig_Verbose(t *testing.T) {
	t.Cleanup(func() { logger.SetLevel(slog.LevelInfo) })
	logger.SetLevel(slog.LevelInfo)

	cfg := config.DefaultConfig().Merge(&config.Config{Verbose: config.BoolPtr(true)})
	rec := &recordingT{}
	New(rec, WithConfig(cfg)).Route(shopTable(t), "Product/List").HaveController("Product")

	assert.True(t, logger.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.Empty(t, rec.messages)
}
