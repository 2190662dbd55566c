package log

type ctxKey string

// RequestIDKey is the context key under which the HTTP layer stores the request ID.
const RequestIDKey ctxKey = "request_id"
