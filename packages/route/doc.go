// Package route provides route values, route tables and the two operations
// tests run against them: inbound matching (URL to route data) and outbound
// URL generation (route values to a relative path).
//
// Patterns are made of "/"-separated segments. A segment is either a literal,
// a parameter such as {controller}, or a final catch-all such as {*path}.
// Matching reads only the narrow Context interface, so a fake request context
// is enough to drive it.
//
//	table := route.NewTable()
//	table.MapRoute("Default", "{controller}/{action}/{id}", map[string]any{
//		"controller": "Home",
//		"action":     "Index",
//		"id":         route.Optional,
//	})
package route
