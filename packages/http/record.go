package http

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/abdul-hamid-achik/actionspec/packages/result"
)

// Record serves req with handler in memory and captures the response.
func Record(handler http.Handler, req *http.Request) *Response {
	rec := httptest.NewRecorder()
	start := time.Now()
	handler.ServeHTTP(rec, req)
	duration := time.Since(start)

	res := rec.Result()
	defer res.Body.Close()

	headers := make(map[string]string, len(res.Header))
	for key, values := range res.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	return &Response{
		StatusCode: res.StatusCode,
		Headers:    headers,
		Body:       rec.Body.Bytes(),
		Duration:   duration,
	}
}

// RecordResult serves req with handler and classifies the response.
func RecordResult(handler http.Handler, req *http.Request) result.Result {
	return Record(handler, req).Result()
}
