package components

import (
	"homefix-scheduling/internal/handler"
	"homefix-scheduling/internal/handler/api"
	"homefix-scheduling/internal/handler/middleware"
	"homefix-scheduling/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		NewBookingLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBookingLimiter(rdb *redis.Client, cfg config.Config) *middleware.RedisRateLimiter {
	return middleware.NewRedisRateLimiter(rdb, cfg.Redis.BookingRPM, cfg.Redis.RateLimitWindow, "booking")
}
