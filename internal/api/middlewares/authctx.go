package middlewares

import (
	"context"

	"github.com/5w1tchy/bookshelf/internal/auth"
)

const identityKey ctxKey = 1

func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom reports the logged-in admin, if any.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	v, ok := ctx.Value(identityKey).(auth.Identity)
	return v, ok && v.Username != ""
}
