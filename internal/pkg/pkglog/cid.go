package pkglog

import "context"

type correlationKey struct{}

// noCorrelationID is returned when the context carries no ID.
const noCorrelationID = "-"

// SetCorrelationID returns a child of ctx carrying cid.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}

// GetCorrelationID returns the ID set by SetCorrelationID, or "-".
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := ctx.Value(correlationKey{}).(string); ok && cid != "" {
		return cid
	}
	return noCorrelationID
}
