package assertions

import (
	"bytes"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
)

// StatusCodeResultAssertions checks a *result.StatusCode.
type StatusCodeResultAssertions struct {
	*chain
	subject result.Result
}

func StatusCodeResult(t TestingT, r result.Result) *StatusCodeResultAssertions {
	return New(t).StatusCodeResult(r)
}

func (a *Asserter) StatusCodeResult(r result.Result) *StatusCodeResultAssertions {
	return &StatusCodeResultAssertions{chain: a.newChain(), subject: r}
}

func (a *StatusCodeResultAssertions) status(because []any) *result.StatusCode {
	a.helper.Helper()
	v, _ := variant[*result.StatusCode](a.chain, a.subject, result.KindStatusCode, "HttpStatusCodeResult", because)
	return v
}

func (a *StatusCodeResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *StatusCodeResultAssertions) WithStatusCode(expected int, because ...any) *StatusCodeResultAssertions {
	a.helper.Helper()
	if s := a.status(because); s != nil {
		a.expectExact("HttpStatusCodeResult.StatusCode", expected, s.Code, because)
	}
	return a
}

func (a *StatusCodeResultAssertions) WithStatusDescription(expected string, because ...any) *StatusCodeResultAssertions {
	a.helper.Helper()
	if s := a.status(because); s != nil {
		a.expectExact("HttpStatusCodeResult.StatusDescription", expected, s.Description, because)
	}
	return a
}

// FileResultAssertions checks a *result.File.
type FileResultAssertions struct {
	*chain
	subject result.Result
}

func FileResult(t TestingT, r result.Result) *FileResultAssertions {
	return New(t).FileResult(r)
}

func (a *Asserter) FileResult(r result.Result) *FileResultAssertions {
	return &FileResultAssertions{chain: a.newChain(), subject: r}
}

func (a *FileResultAssertions) file(because []any) *result.File {
	a.helper.Helper()
	v, _ := variant[*result.File](a.chain, a.subject, result.KindFile, "FileResult", because)
	return v
}

func (a *FileResultAssertions) Subject() result.Result {
	return a.subject
}

func (a *FileResultAssertions) WithContentType(expected string, because ...any) *FileResultAssertions {
	a.helper.Helper()
	if f := a.file(because); f != nil {
		a.expectName("FileResult.ContentType", expected, f.ContentType, because)
	}
	return a
}

func (a *FileResultAssertions) WithFileDownloadName(expected string, because ...any) *FileResultAssertions {
	a.helper.Helper()
	if f := a.file(because); f != nil {
		a.expectExact("FileResult.FileDownloadName", expected, f.FileDownloadName, because)
	}
	return a
}

// WithFileName checks the path of a file served from disk.
func (a *FileResultAssertions) WithFileName(expected string, because ...any) *FileResultAssertions {
	a.helper.Helper()
	if f := a.file(because); f != nil {
		a.expectExact("FileResult.FileName", expected, f.FileName, because)
	}
	return a
}

// WithFileContents checks the bytes of an in-memory file.
func (a *FileResultAssertions) WithFileContents(expected []byte, because ...any) *FileResultAssertions {
	a.helper.Helper()
	f := a.file(because)
	if f == nil || bytes.Equal(expected, f.Contents) {
		return a
	}
	a.fail(&Failure{
		Kind:     ValueMismatch,
		Context:  "FileResult.Contents",
		Expected: expected,
		Actual:   f.Contents,
		Reason:   becauseReason(because),
		Detail:   modelDiff(string(expected), string(f.Contents)),
	})
	return a
}
