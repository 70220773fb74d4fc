package assertions

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// ContentResultAssertions checks a *result.Content.
type ContentResultAssertions struct {
	*chain
	subject result.Result
}

// ContentResult wraps r for content assertions.
func ContentResult(t TestingT, r result.Result) *ContentResultAssertions {
	return New(t).ContentResult(r)
}

func (a *Asserter) ContentResult(r result.Result) *ContentResultAssertions {
	return &ContentResultAssertions{chain: a.newChain(), subject: r}
}

func (a *ContentResultAssertions) content(because []any) *result.Content {
	a.helper.Helper()
	v, _ := variant[*result.Content](a.chain, a.subject, result.KindContent, "ContentResult", because)
	return v
}

func (a *ContentResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *ContentResultAssertions) WithContent(expected string, because ...any) *ContentResultAssertions {
	a.helper.Helper()
	if c := a.content(because); c != nil {
		a.expectExact("ContentResult.Content", expected, c.Content, because)
	}
	return a
}

func (a *ContentResultAssertions) WithContentType(expected string, because ...any) *ContentResultAssertions {
	a.helper.Helper()
	if c := a.content(because); c != nil {
		a.expectName("ContentResult.ContentType", expected, c.ContentType, because)
	}
	return a
}

func (a *ContentResultAssertions) WithContentEncoding(expected string, because ...any) *ContentResultAssertions {
	a.helper.Helper()
	if c := a.content(because); c != nil {
		a.expectName("ContentResult.ContentEncoding", expected, c.ContentEncoding, because)
	}
	return a
}

// WithJSONPath reads path from the JSON content (gjson syntax; [N] indexes
// are accepted) and compares it loosely with expected.
func (a *ContentResultAssertions) WithJSONPath(path string, expected any, because ...any) *ContentResultAssertions {
	a.helper.Helper()
	c := a.content(because)
	if c == nil {
		return a
	}
	if !gjson.Valid(c.Content) {
		a.fail(&Failure{
			Kind:     ValueMismatch,
			Context:  "ContentResult.Content",
			Expected: label("valid JSON"),
			Actual:   c.Content,
			Reason:   becauseReason(because),
		})
		return a
	}

	found := gjson.Get(c.Content, convertBracketNotation(path))
	if !found.Exists() {
		a.fail(&Failure{
			Kind:     KeyNotFound,
			Context:  "ContentResult.Content",
			Expected: path,
			Actual:   topLevelKeys(c.Content),
			Reason:   becauseReason(because),
		})
		return a
	}
	if !valuesEqual(found.Value(), expected) {
		a.fail(&Failure{
			Kind:     ValueMismatch,
			Context:  fmt.Sprintf("ContentResult.Content[%q]", path),
			Expected: expected,
			Actual:   found.Value(),
			Reason:   becauseReason(because),
		})
	}
	return a
}

// MatchSchema validates the content against the JSON schema file at schemaPath.
func (a *ContentResultAssertions) MatchSchema(schemaPath string, because ...any) *ContentResultAssertions {
	a.helper.Helper()
	if c := a.content(because); c != nil {
		a.expectSchema("ContentResult.Content", []byte(c.Content), schemaPath, because)
	}
	return a
}

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// convertBracketNotation converts "items[0].id" to gjson's "items.0.id".
func convertBracketNotation(path string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(path, ".$1"), ".")
}

func topLevelKeys(doc string) []string {
	var keys []string
	gjson.Parse(doc).ForEach(func(key, _ gjson.Result) bool {
		if key.Type == gjson.String {
			keys = append(keys, key.String())
		}
		return true
	})
	return keys
}

func (c *chain) expectSchema(context string, document []byte, schemaPath string, because []any) {
	c.helper.Helper()
	schemaFail := func(err error, detail string) {
		c.helper.Helper()
		c.fail(&Failure{
			Kind:     ValueMismatch,
			Context:  context,
			Expected: label("JSON matching " + schemaPath),
			Actual:   label("a non-conforming document"),
			Reason:   becauseReason(because),
			Err:      err,
			Detail:   detail,
		})
	}

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		schemaFail(fmt.Errorf("failed to read schema file: %w", err), "")
		return
	}

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaData), gojsonschema.NewBytesLoader(document))
	if err != nil {
		schemaFail(fmt.Errorf("schema validation error: %w", err), "")
		return
	}
	if res.Valid() {
		return
	}

	problems := make([]string, 0, len(res.Errors()))
	for _, desc := range res.Errors() {
		problems = append(problems, "  - "+desc.String())
	}
	schemaFail(nil, strings.Join(problems, "\n"))
}
