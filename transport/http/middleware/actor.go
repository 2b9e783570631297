package middleware

import (
	"context"

	"farn/shared/constant"
)

// withActor records who performs the mutation. Every request comes from the
// front desk; there is no per-user authentication surface.
func withActor(ctx context.Context) context.Context {
	return context.WithValue(ctx, constant.ContextKeyActor, constant.ActorFrontDesk)
}
