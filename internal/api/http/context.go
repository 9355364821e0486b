package http

import (
	"context"
	"fmt"
)

type contextKey string

const userIDKey contextKey = "user-id"

// WithUserID stores the authenticated actor's id on the request context.
func WithUserID(ctx context.Context, userID int32) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts the authenticated actor's id placed on the
// context by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (int32, error) {
	userID, ok := ctx.Value(userIDKey).(int32)
	if !ok {
		return 0, fmt.Errorf("user id is not present in context")
	}
	return userID, nil
}
