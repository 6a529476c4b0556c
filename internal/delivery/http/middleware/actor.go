package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// CtxActorIDKey holds the worker id of the request's actor, when supplied.
const CtxActorIDKey = "actor_id"

// ActorMiddleware reads the X-Actor-ID header so worker-facing endpoints can
// scope responses without a login flow. A missing header leaves the request
// anonymous; a malformed one is rejected outright.
type ActorMiddleware struct{}

func NewActorMiddleware() *ActorMiddleware {
	return &ActorMiddleware{}
}

func (m *ActorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("X-Actor-ID"))
		if raw == "" {
			return c.Next()
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return NewAppError(fiber.StatusBadRequest, "invalid X-Actor-ID header", nil, err)
		}
		c.Locals(CtxActorIDKey, id)
		return c.Next()
	}
}

// ActorID returns the actor recorded by the middleware, if any.
func ActorID(c fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(CtxActorIDKey).(int64)
	return id, ok
}
