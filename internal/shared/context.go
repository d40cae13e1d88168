package shared

import "context"

type clientIDContextKey struct{}

// ContextWithClientID stores the caller's client ID in context.
func ContextWithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDContextKey{}, id)
}

// ClientIDFromContext extracts the client ID from context.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDContextKey{}).(string)
	return id
}
