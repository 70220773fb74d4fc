package http

import (
	"bytes"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
)

// Response is a handler response captured by Record.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

// Header looks a header up case-insensitively.
func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// ContentType returns the media type without parameters.
func (r *Response) ContentType() string {
	mediaType, _ := splitContentType(r.Header("Content-Type"))
	return mediaType
}

// Charset returns the charset parameter of Content-Type, if any.
func (r *Response) Charset() string {
	_, charset := splitContentType(r.Header("Content-Type"))
	return charset
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "json")
}

// IsRedirect reports a 3xx status with a Location header.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400 && r.Header("Location") != ""
}

// IsAttachment reports whether the response carries a Content-Disposition header.
func (r *Response) IsAttachment() bool {
	return r.Header("Content-Disposition") != ""
}

// DownloadName returns the filename parameter of Content-Disposition.
func (r *Response) DownloadName() string {
	_, params, err := mime.ParseMediaType(r.Header("Content-Disposition"))
	if err != nil {
		return ""
	}
	return params["filename"]
}

// Result classifies the response as an action result:
//   - 3xx with Location is a Redirect (301 and 308 are permanent)
//   - Content-Disposition makes it a File
//   - 4xx and 5xx become StatusCode, the trimmed body is the description
//   - an empty body is Empty
//   - anything else is Content
func (r *Response) Result() result.Result {
	switch {
	case r.IsRedirect():
		return &result.Redirect{
			URL:       r.Header("Location"),
			Permanent: r.StatusCode == http.StatusMovedPermanently || r.StatusCode == http.StatusPermanentRedirect,
		}
	case r.IsAttachment():
		return &result.File{
			ContentType:      r.ContentType(),
			FileDownloadName: r.DownloadName(),
			Contents:         bytes.Clone(r.Body),
		}
	case r.StatusCode >= 400:
		return &result.StatusCode{
			Code:        r.StatusCode,
			Description: strings.TrimSpace(r.BodyString()),
		}
	case len(r.Body) == 0:
		return &result.Empty{}
	default:
		return &result.Content{
			Content:         r.BodyString(),
			ContentType:     r.ContentType(),
			ContentEncoding: r.Charset(),
		}
	}
}

func splitContentType(value string) (string, string) {
	if value == "" {
		return "", ""
	}
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.TrimSpace(strings.SplitN(value, ";", 2)[0]), ""
	}
	return mediaType, params["charset"]
}
