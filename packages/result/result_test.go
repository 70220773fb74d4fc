package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{&View{}, "ViewResult"},
		{&PartialView{}, "PartialViewResult"},
		{&Redirect{}, "RedirectResult"},
		{&RedirectToRoute{}, "RedirectToRouteResult"},
		{&Content{}, "ContentResult"},
		{&Empty{}, "EmptyResult"},
		{&StatusCode{}, "HttpStatusCodeResult"},
		{&File{}, "FileResult"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.result))
		})
	}
}

func TestKind_Unknown(t *testing.T) {
	assert.Equal(t, "UnknownResult", Kind(0).String())
	assert.Equal(t, "UnknownResult", Kind(99).String())
}
