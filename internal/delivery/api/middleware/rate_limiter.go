package middleware

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"elderguard/config"
	"elderguard/internal/delivery/api/response"
	"elderguard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/fx"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// RateLimiter bounds requests per client IP over a fixed window.
type RateLimiter struct {
	limiter   *limiter.Limiter
	metrics   *metrics.Metrics
	logger    *slog.Logger
	skipPaths []string
}

// NewRateLimiter creates an in-memory limiter from rateLimit.windowMs and rateLimit.max.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rate := limiter.Rate{
		Period: params.Config.RateLimit.Window(),
		Limit:  params.Config.RateLimit.Max,
	}

	return &RateLimiter{
		limiter:   limiter.New(memory.NewStore(), rate),
		metrics:   params.Metrics,
		logger:    params.Logger,
		skipPaths: []string{"/metrics"},
	}
}

// Handle rejects a request with 429 once its IP exhausted the window.
func (l *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		for _, prefix := range l.skipPaths {
			if strings.HasPrefix(path, prefix) {
				return next(c)
			}
		}

		limitCtx, err := l.limiter.Get(c.Request().Context(), "ip:"+c.RealIP())
		if err != nil {
			// Fail open on store errors.
			l.logger.Warn("Rate limiter store failed", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.FormatInt(limitCtx.Limit, 10))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(limitCtx.Remaining, 10))
		header.Set("X-RateLimit-Reset", strconv.FormatInt(limitCtx.Reset, 10))

		if limitCtx.Reached {
			retryAfter := max(int(time.Until(time.Unix(limitCtx.Reset, 0)).Seconds()), 0)
			header.Set("Retry-After", strconv.Itoa(retryAfter))
			l.metrics.IncRateLimitDenied(routePath(c))

			return response.TooManyRequests(c, "RATE_LIMITED", rateLimitMessage)
		}

		return next(c)
	}
}
