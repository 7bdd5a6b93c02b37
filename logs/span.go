package logs

// Span identifies one unit of work, such as an inbound connection
type Span string

type spanKey struct{}

var SpanKey spanKey
