package route

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

type optional struct{}

func (optional) String() string { return "Optional" }

// Optional marks a parameter default that may be left out of the URL.
// Optional parameters missing from a URL are absent from the matched values.
var Optional any = optional{}

func isOptional(v any) bool {
	_, ok := v.(optional)
	return ok
}

type segment struct {
	literal  string
	param    string
	catchAll bool
}

func (s segment) isParam() bool {
	return s.param != ""
}

// Route is a URL pattern with defaults, constraints and data tokens.
type Route struct {
	Name        string
	Pattern     string
	Defaults    Values
	Constraints map[string]string
	Methods     []string
	DataTokens  Values

	segments    []segment
	params      map[string]bool
	constraints map[string]*regexp.Regexp
}

// Option configures a Route.
type Option func(*Route)

// WithDefaults sets default values for parameters and non-parameter keys.
func WithDefaults(defaults map[string]any) Option {
	return func(r *Route) {
		r.Defaults = r.Defaults.Merge(ValuesOf(defaults))
	}
}

// WithConstraints adds regular expression constraints keyed by parameter name.
// Expressions are anchored and case-insensitive.
func WithConstraints(constraints map[string]string) Option {
	return func(r *Route) {
		if r.Constraints == nil {
			r.Constraints = make(map[string]string)
		}
		for k, v := range constraints {
			r.Constraints[k] = v
		}
	}
}

// WithMethods restricts the route to the given HTTP methods.
func WithMethods(methods ...string) Option {
	return func(r *Route) {
		r.Methods = append(r.Methods, methods...)
	}
}

// WithDataTokens attaches data tokens returned with every match.
func WithDataTokens(tokens map[string]any) Option {
	return func(r *Route) {
		r.DataTokens = r.DataTokens.Merge(ValuesOf(tokens))
	}
}

// WithName sets the route name.
func WithName(name string) Option {
	return func(r *Route) {
		r.Name = name
	}
}

// NewRoute parses pattern and applies opts.
func NewRoute(pattern string, opts ...Option) (*Route, error) {
	r := &Route{
		Pattern:     pattern,
		params:      make(map[string]bool),
		constraints: make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(r)
	}

	segments, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	r.segments = segments
	for _, s := range segments {
		if s.isParam() {
			r.params[fold(s.param)] = true
		}
	}

	for name, expr := range r.Constraints {
		re, err := regexp.Compile(`(?i)^(?:` + expr + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w: constraint for %q: %v", ErrInvalidPattern, name, err)
		}
		r.constraints[fold(name)] = re
	}

	return r, nil
}

func parsePattern(pattern string) ([]segment, error) {
	if strings.HasPrefix(pattern, "/") || strings.HasPrefix(pattern, "~") {
		return nil, fmt.Errorf("%w: %q must not start with '/' or '~'", ErrInvalidPattern, pattern)
	}
	if strings.Contains(pattern, "?") {
		return nil, fmt.Errorf("%w: %q must not contain '?'", ErrInvalidPattern, pattern)
	}
	if pattern == "" {
		return nil, nil
	}

	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}
		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return nil, fmt.Errorf("%w: segment %q mixes literals and parameters", ErrInvalidPattern, part)
			}
			segments = append(segments, segment{literal: part})
			continue
		}
		if !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("%w: segment %q mixes literals and parameters", ErrInvalidPattern, part)
		}

		name := part[1 : len(part)-1]
		s := segment{}
		if strings.HasPrefix(name, "*") {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: catch-all %q must be the last segment", ErrInvalidPattern, part)
			}
			s.catchAll = true
			name = name[1:]
		}
		if name == "" || strings.ContainsAny(name, "{}*/") {
			return nil, fmt.Errorf("%w: bad parameter name in %q", ErrInvalidPattern, part)
		}
		if seen[fold(name)] {
			return nil, fmt.Errorf("%w: parameter %q appears more than once", ErrInvalidPattern, name)
		}
		seen[fold(name)] = true
		s.param = name
		segments = append(segments, s)
	}

	return segments, nil
}

// Params returns the parameter names in pattern order.
func (r *Route) Params() []string {
	var names []string
	for _, s := range r.segments {
		if s.isParam() {
			names = append(names, s.param)
		}
	}
	return names
}

func (r *Route) hasParam(name string) bool {
	return r.params[fold(name)]
}

// Match matches ctx against the route and returns the extracted values.
func (r *Route) Match(ctx Context) (Values, bool, error) {
	reqSegments := splitPath(ctx.AppRelativePath())

	values, ok := r.matchSegments(reqSegments)
	if !ok {
		return Values{}, false, nil
	}

	for _, key := range r.Defaults.Keys() {
		if r.hasParam(key) {
			continue
		}
		def, _ := r.Defaults.Get(key)
		if !isOptional(def) {
			values.Set(key, def)
		}
	}

	if !r.checkConstraints(values) {
		return Values{}, false, nil
	}

	if len(r.Methods) > 0 {
		mc, ok := ctx.(MethodContext)
		if !ok {
			return Values{}, false, fmt.Errorf("%w: route %q needs the request method", ErrUnsupported, r.Pattern)
		}
		if !r.allowsMethod(mc.HTTPMethod()) {
			return Values{}, false, nil
		}
	}

	return values, true, nil
}

// splitPath turns an app-relative path into unescaped segments.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, "~")
	if idx := strings.IndexAny(p, "?#"); idx != -1 {
		p = p[:idx]
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if unescaped, err := url.PathUnescape(part); err == nil {
			parts[i] = unescaped
		}
	}
	return parts
}

func (r *Route) matchSegments(req []string) (Values, bool) {
	var values Values

	for i, s := range r.segments {
		if s.catchAll {
			rest := ""
			if i < len(req) {
				rest = strings.Join(req[i:], "/")
			}
			if rest == "" {
				r.applyDefault(&values, s.param)
			} else {
				values.Set(s.param, rest)
			}
			return values, true
		}

		if i < len(req) {
			if s.isParam() {
				if req[i] == "" {
					return Values{}, false
				}
				values.Set(s.param, req[i])
				continue
			}
			if !strings.EqualFold(s.literal, req[i]) {
				return Values{}, false
			}
			continue
		}

		if !s.isParam() {
			return Values{}, false
		}
		if !r.applyDefault(&values, s.param) {
			return Values{}, false
		}
	}

	if len(req) > len(r.segments) {
		return Values{}, false
	}
	return values, true
}

// applyDefault copies the default for param into values. It reports false
// when the parameter has no default at all.
func (r *Route) applyDefault(values *Values, param string) bool {
	def, ok := r.Defaults.Get(param)
	if !ok {
		return false
	}
	if !isOptional(def) {
		values.Set(param, def)
	}
	return true
}

func (r *Route) checkConstraints(values Values) bool {
	for name, re := range r.constraints {
		if !re.MatchString(values.StringValue(name)) {
			return false
		}
	}
	return true
}

func (r *Route) allowsMethod(method string) bool {
	for _, m := range r.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// VirtualPath is the outcome of URL generation.
type VirtualPath struct {
	Route      *Route
	Path       string
	DataTokens Values
}

// BuildPath generates a relative path (no leading slash) for values.
// It reports false when the route cannot express them.
func (r *Route) BuildPath(values Values) (string, bool) {
	for _, key := range r.Defaults.Keys() {
		if r.hasParam(key) {
			continue
		}
		def, _ := r.Defaults.Get(key)
		if isOptional(def) {
			continue
		}
		if supplied, ok := values.Get(key); ok && !sameValue(supplied, def) {
			return "", false
		}
	}

	resolved := make([]string, len(r.segments))
	present := make([]bool, len(r.segments))
	for i, s := range r.segments {
		if !s.isParam() {
			resolved[i] = s.literal
			present[i] = true
			continue
		}
		v, ok := values.Get(s.param)
		if ok && !isEmptyValue(v) {
			resolved[i] = fmt.Sprintf("%v", v)
			present[i] = true
			continue
		}
		def, hasDef := r.Defaults.Get(s.param)
		if !hasDef {
			return "", false
		}
		if !isOptional(def) {
			resolved[i] = fmt.Sprintf("%v", def)
			present[i] = true
		}
	}

	check := values.Clone()
	for i, s := range r.segments {
		if s.isParam() && present[i] {
			check.Set(s.param, resolved[i])
		}
	}
	if !r.checkConstraints(check) {
		return "", false
	}

	// Trailing parameters that equal their defaults are left out.
	end := len(r.segments)
	for end > 0 {
		s := r.segments[end-1]
		if !s.isParam() {
			break
		}
		if present[end-1] {
			def, hasDef := r.Defaults.Get(s.param)
			if !hasDef || isOptional(def) || !sameValue(resolved[end-1], def) {
				break
			}
		}
		end--
	}

	parts := make([]string, 0, end)
	for i := 0; i < end; i++ {
		if !present[i] {
			return "", false
		}
		if r.segments[i].catchAll {
			parts = append(parts, escapeCatchAll(resolved[i]))
			continue
		}
		parts = append(parts, url.PathEscape(resolved[i]))
	}
	path := strings.Join(parts, "/")

	if query := r.extraQuery(values); query != "" {
		path += "?" + query
	}
	return path, true
}

func (r *Route) extraQuery(values Values) string {
	q := url.Values{}
	for _, key := range values.Keys() {
		if r.hasParam(key) || r.Defaults.Has(key) {
			continue
		}
		v, _ := values.Get(key)
		if isEmptyValue(v) {
			continue
		}
		q.Set(key, fmt.Sprintf("%v", v))
	}
	return q.Encode()
}

func escapeCatchAll(v string) string {
	parts := strings.Split(v, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func isEmptyValue(v any) bool {
	if v == nil || isOptional(v) {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func sameValue(a, b any) bool {
	return strings.EqualFold(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func (r *Route) String() string {
	if r.Name == "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Pattern)
}
