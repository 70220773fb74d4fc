// Package assertions provides fluent assertions for action results and routes.
//
// Supported assertions:
//   - Result variant checks (ActionResult(t, r).BeView())
//   - View and partial view fields (WithViewName, WithMasterName, WithTempData, WithViewData)
//   - Models (WithModel, ModelAs[T], WithModelMatchingSchema)
//   - Redirects (WithURL, WithPermanent, WithRouteValue, WithController, WithAction)
//   - Content (WithContent, WithContentType, WithJSONPath, MatchSchema)
//   - Status codes and files (WithStatusCode, WithFileDownloadName, WithFileContents)
//   - Route matching and URL generation (Route(t, table, url).HaveController, GeneratedURL(...).Be)
//
// Every check returns its wrapper so checks chain left to right. The first
// failing check is reported to the TestingT (Errorf then FailNow) and the
// rest of the chain does nothing. Every check takes optional because
// arguments, a format string and its args, which end up in the message:
//
//	assertions.ActionResult(t, r).
//		BeView().
//		WithViewName("index", "the %s page is the landing page", "home").
//		WithTempData("key1", "value1")
//
// Failures are *Failure values; errors.Is matches them against
// ErrTypeMismatch, ErrValueMismatch, ErrKeyNotFound, ErrWrongModelType and
// ErrRouteNotFound.
package assertions
