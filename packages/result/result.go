// Package result models the outcomes a controller action can produce.
//
// Result is a closed sum type: View, PartialView, Redirect, RedirectToRoute,
// Content, Empty, StatusCode and File are its only implementations. Code
// that inspects a result switches on its concrete type or on Kind.
package result

import (
	"io"

	"github.com/abdul-hamid-achik/actionspec/packages/route"
)

// Kind identifies a result variant.
type Kind int

const (
	KindView Kind = iota + 1
	KindPartialView
	KindRedirect
	KindRedirectToRoute
	KindContent
	KindEmpty
	KindStatusCode
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "ViewResult"
	case KindPartialView:
		return "PartialViewResult"
	case KindRedirect:
		return "RedirectResult"
	case KindRedirectToRoute:
		return "RedirectToRouteResult"
	case KindContent:
		return "ContentResult"
	case KindEmpty:
		return "EmptyResult"
	case KindStatusCode:
		return "HttpStatusCodeResult"
	case KindFile:
		return "FileResult"
	default:
		return "UnknownResult"
	}
}

// Result is implemented only by the variant types in this package.
type Result interface {
	Kind() Kind
	isResult()
}

// KindOf returns the variant label of r, or "<nil>" for a nil result.
func KindOf(r Result) string {
	if r == nil {
		return "<nil>"
	}
	return r.Kind().String()
}

// View renders a full view.
type View struct {
	ViewName   string
	MasterName string
	Model      any
	ViewData   map[string]any
	TempData   map[string]any
}

func (*View) Kind() Kind { return KindView }
func (*View) isResult()  {}

// PartialView renders a view fragment.
type PartialView struct {
	ViewName string
	Model    any
	ViewData map[string]any
	TempData map[string]any
}

func (*PartialView) Kind() Kind { return KindPartialView }
func (*PartialView) isResult()  {}

// Redirect sends the client to a literal URL.
type Redirect struct {
	URL       string
	Permanent bool
}

func (*Redirect) Kind() Kind { return KindRedirect }
func (*Redirect) isResult()  {}

// RedirectToRoute sends the client to a URL generated from route values.
type RedirectToRoute struct {
	RouteName   string
	RouteValues route.Values
	Permanent   bool
}

func (*RedirectToRoute) Kind() Kind { return KindRedirectToRoute }
func (*RedirectToRoute) isResult()  {}

// Content writes a literal body.
type Content struct {
	Content         string
	ContentType     string
	ContentEncoding string
}

func (*Content) Kind() Kind { return KindContent }
func (*Content) isResult()  {}

// Empty writes nothing.
type Empty struct{}

func (*Empty) Kind() Kind { return KindEmpty }
func (*Empty) isResult()  {}

// StatusCode writes only a status line.
type StatusCode struct {
	Code        int
	Description string
}

func (*StatusCode) Kind() Kind { return KindStatusCode }
func (*StatusCode) isResult()  {}

// File sends a file. Exactly one of FileName, Contents or Stream is
// normally set, mirroring path, byte and stream file results.
type File struct {
	ContentType      string
	FileDownloadName string
	FileName         string
	Contents         []byte
	Stream           io.Reader
}

func (*File) Kind() Kind { return KindFile }
func (*File) isResult()  {}
