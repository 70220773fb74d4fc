// Package http turns plain net/http handlers into action results.
//
// Record serves a request in memory through httptest and captures status,
// headers and body. Response.Result then classifies the capture as one of
// the result variants so the same assertions apply to handlers and to
// controller actions:
//   - Redirects (3xx with a Location header)
//   - File downloads (Content-Disposition)
//   - Status-only failures (4xx, 5xx)
//   - Empty and content responses
package http
