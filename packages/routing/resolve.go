package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/core/config"
	"github.com/abdul-hamid-achik/actionspec/packages/route"
)

// ErrRouteNotFound is returned when no route matches a URL or can express
// a set of route values.
var ErrRouteNotFound = errors.New("route not found")

type options struct {
	applicationPath string
	urlPrefix       string
	routeName       string
}

// Option configures ResolveRoute and GenerateURL.
type Option func(*options)

// WithApplicationPath sets the application root of the fake context. Rooted
// URLs under it are resolved relative to it.
func WithApplicationPath(path string) Option {
	return func(o *options) {
		o.applicationPath = path
	}
}

// WithURLPrefix sets the prefix put in front of generated paths. The
// default "~/" keeps URLs app-relative; "/" produces rooted URLs.
func WithURLPrefix(prefix string) Option {
	return func(o *options) {
		o.urlPrefix = prefix
	}
}

// WithRouteName limits URL generation to the named route.
func WithRouteName(name string) Option {
	return func(o *options) {
		o.routeName = name
	}
}

// WithConfig applies the URL prefix, application path and verbose logging from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		if cfg.URLPrefix != "" {
			o.urlPrefix = cfg.URLPrefix
		}
		if cfg.ApplicationPath != "" {
			o.applicationPath = cfg.ApplicationPath
		}
		cfg.ApplyLogging()
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		applicationPath: DefaultApplicationPath,
		urlPrefix:       AppRelativeMarker,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ResolveRoute reports which route, and which route values, the table
// produces for url. url may be app-relative ("~/x"), rooted ("/x") or bare ("x").
func ResolveRoute(table *route.Table, url string, opts ...Option) (*route.Data, error) {
	o := newOptions(opts)
	ctx := NewFakeContext(o.applicationPath, url)

	data, err := table.GetRouteData(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, ctx.AppRelativePath())
	}
	return data, nil
}

// GenerateURL builds the outgoing URL for values.
func GenerateURL(table *route.Table, values route.Values, opts ...Option) (string, error) {
	o := newOptions(opts)

	var (
		vp  *route.VirtualPath
		err error
	)
	if o.routeName != "" {
		vp, err = table.GetVirtualPathFor(o.routeName, values)
	} else {
		vp, err = table.GetVirtualPath(values)
	}
	if err != nil {
		return "", err
	}
	if vp == nil {
		return "", fmt.Errorf("%w: no route can express %s", ErrRouteNotFound, values)
	}

	return joinPrefix(o.urlPrefix, vp.Path), nil
}

func joinPrefix(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + path
}
