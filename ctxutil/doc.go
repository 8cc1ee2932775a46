// Package ctxutil manages request-scoped values: the gin context bridge,
// trace ids and the content negotiation outcome.
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx = ctxutil.SetHypermedia(ctx, hateoas.MediaType, true)
//	if ctxutil.IsHypermedia(ctx) {
//	    // attach links
//	}
package ctxutil
