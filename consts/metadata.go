package consts

// GinContextKey gin context key
const GinContextKey = "gin-context"

// TraceKey trace id header
const TraceKey string = "X-Trace-Id"

// TotalKey result total with response
const TotalKey string = "X-Total-Count"

// AcceptKey content negotiation header
const AcceptKey string = "Accept"

// ForwardedProtoKey scheme set by reverse proxies
const ForwardedProtoKey string = "X-Forwarded-Proto"
