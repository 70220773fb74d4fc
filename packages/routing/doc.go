// Package routing runs route tables outside a live server.
//
// It builds a FakeContext (application path plus app-relative URL) and hands
// it to the table's matcher, and it forwards route values to the table's URL
// generator. Everything is in memory and synchronous.
//
//	data, err := routing.ResolveRoute(table, "Product/List")
//	url, err := routing.GenerateURL(table, route.ValuesOf(map[string]any{
//		"controller": "product", "action": "edit", "id": 444,
//	})) // "~/product/edit/444"
package routing
