package routing

import (
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/route"
)

// AppRelativeMarker prefixes application-relative URLs.
const AppRelativeMarker = "~/"

// DefaultApplicationPath is the application root used by ResolveRoute.
const DefaultApplicationPath = "/"

// NormalizeURL rewrites url into app-relative form. A URL already starting
// with "~/" is returned unchanged, a leading "/" becomes "~/", and anything
// else gets "~/" prepended.
func NormalizeURL(url string) string {
	switch {
	case strings.HasPrefix(url, AppRelativeMarker):
		return url
	case strings.HasPrefix(url, "/"):
		return "~" + url
	default:
		return AppRelativeMarker + url
	}
}

// AppRelativeURL converts url into app-relative form under appPath. A rooted
// URL inside appPath loses that prefix first, so "/shop/Product/List" under
// "/shop" becomes "~/Product/List". Other URLs go through NormalizeURL.
func AppRelativeURL(appPath, url string) string {
	root := strings.TrimRight(appPath, "/")
	if root != "" && !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	if root == "" || !strings.HasPrefix(url, "/") || len(url) < len(root) {
		return NormalizeURL(url)
	}
	if !strings.EqualFold(url[:len(root)], root) {
		return NormalizeURL(url)
	}

	rest := url[len(root):]
	switch {
	case rest == "" || rest[0] == '?' || rest[0] == '#':
		return AppRelativeMarker + rest
	case rest[0] == '/':
		return NormalizeURL(rest)
	default:
		// "/shopping" is not inside "/shop".
		return NormalizeURL(url)
	}
}

// FakeContext carries just enough request state to drive route matching
// without a server. It implements route.Context and nothing more: a route
// that asks for anything else (the request method, for instance) fails with
// route.ErrUnsupported instead of seeing a made-up value.
type FakeContext struct {
	applicationPath string
	relativePath    string
	serverVariables map[string]string
}

var _ route.Context = (*FakeContext)(nil)

// NewFakeContext builds a context for relativeURL under appPath. Rooted
// URLs are made relative to appPath.
func NewFakeContext(appPath, relativeURL string) *FakeContext {
	return &FakeContext{
		applicationPath: appPath,
		relativePath:    AppRelativeURL(appPath, relativeURL),
		serverVariables: map[string]string{},
	}
}

func (c *FakeContext) ApplicationPath() string {
	return c.applicationPath
}

func (c *FakeContext) AppRelativePath() string {
	return c.relativePath
}

// ServerVariables is always empty. A copy is returned so the context stays read-only.
func (c *FakeContext) ServerVariables() map[string]string {
	vars := make(map[string]string, len(c.serverVariables))
	for k, v := range c.serverVariables {
		vars[k] = v
	}
	return vars
}
