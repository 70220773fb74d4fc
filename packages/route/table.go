package route

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/logger"
)

// Data is the result of matching a URL against a table.
type Data struct {
	Route      *Route
	Values     Values
	DataTokens Values
}

func (d *Data) Controller() string {
	return d.Values.StringValue("controller")
}

func (d *Data) Action() string {
	return d.Values.StringValue("action")
}

// Area returns the "area" route value, falling back to the "area" data token.
func (d *Data) Area() string {
	if area := d.Values.StringValue("area"); area != "" {
		return area
	}
	return d.DataTokens.StringValue("area")
}

// Table is an ordered collection of routes. Earlier routes win.
type Table struct {
	routes []*Route
	byName map[string]*Route
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{
		routes: make([]*Route, 0),
		byName: make(map[string]*Route),
	}
}

// Add appends a route. Named routes must be unique (case-insensitive).
func (t *Table) Add(r *Route) error {
	if r.Name != "" {
		if _, exists := t.byName[fold(r.Name)]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, r.Name)
		}
		t.byName[fold(r.Name)] = r
	}
	t.routes = append(t.routes, r)
	return nil
}

// MapRoute parses pattern, applies defaults and opts, and appends the route.
func (t *Table) MapRoute(name, pattern string, defaults map[string]any, opts ...Option) (*Route, error) {
	all := append([]Option{WithName(name), WithDefaults(defaults)}, opts...)
	r, err := NewRoute(pattern, all...)
	if err != nil {
		return nil, err
	}
	if err := t.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Routes returns the routes in match order.
func (t *Table) Routes() []*Route {
	return t.routes
}

// Named returns the route registered under name.
func (t *Table) Named(name string) (*Route, bool) {
	r, ok := t.byName[fold(name)]
	return r, ok
}

// GetRouteData returns the data of the first route matching ctx, or nil
// when no route matches.
func (t *Table) GetRouteData(ctx Context) (*Data, error) {
	path := ctx.AppRelativePath()
	for _, r := range t.routes {
		values, ok, err := r.Match(ctx)
		if err != nil {
			logger.Warn("route cannot be matched with this context", "path", path, "route", r.String(), "error", err)
			return nil, fmt.Errorf("matching %s against %s: %w", path, r, err)
		}
		if !ok {
			continue
		}
		logger.Debug("route matched", "path", path, "route", r.String(), "values", values.String())
		return &Data{
			Route:      r,
			Values:     values,
			DataTokens: r.DataTokens.Clone(),
		}, nil
	}
	logger.Debug("no route matched", "path", path, "routes", len(t.routes))
	return nil, nil
}

// GetVirtualPath returns the path generated by the first route able to
// express values, or nil when none can.
func (t *Table) GetVirtualPath(values Values) (*VirtualPath, error) {
	for _, r := range t.routes {
		if vp := buildVirtualPath(r, values); vp != nil {
			return vp, nil
		}
	}
	logger.Debug("no route generated a path", "values", values.String())
	return nil, nil
}

// GetVirtualPathFor generates a path with the named route only.
func (t *Table) GetVirtualPathFor(name string, values Values) (*VirtualPath, error) {
	r, ok := t.Named(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return buildVirtualPath(r, values), nil
}

func buildVirtualPath(r *Route, values Values) *VirtualPath {
	path, ok := r.BuildPath(values)
	if !ok {
		return nil
	}
	logger.Debug("route generated path", "route", r.String(), "path", path)
	return &VirtualPath{
		Route:      r,
		Path:       path,
		DataTokens: r.DataTokens.Clone(),
	}
}

func (t *Table) String() string {
	parts := make([]string, 0, len(t.routes))
	for _, r := range t.routes {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
