package http

import (
	"log/slog"
	"net/http"
	"time"

	"tours/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the middleware stack.
type RouterConfig struct {
	// RateLimitPerSecond bounds booking and contact submissions per client IP.
	// Zero disables the limiter.
	RateLimitPerSecond float64

	// Metrics, when set, observes every request and is served at /metrics.
	Metrics RequestMetrics
}

// RequestMetrics records served requests and exposes them over HTTP.
type RequestMetrics interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// NewRouter builds the echo instance serving the API, its OpenAPI document
// at /openapi.json and the Swagger UI under /swagger/.
func NewRouter(server *Server, doc *openapi3.T, cfg RouterConfig, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		requestLogger(logger, cfg.Metrics),
		middleware.CORS(),
	)

	var write []echo.MiddlewareFunc
	if cfg.RateLimitPerSecond > 0 {
		write = append(write, rateLimiter(cfg.RateLimitPerSecond))
	}
	api.RegisterHandlersWithBaseURL(e, server, "", write...)

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}

	return e
}

func requestLogger(logger *slog.Logger, metrics RequestMetrics) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Error != nil || v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)

			if metrics != nil {
				route := ctx.Path()
				if route == "" {
					route = "unmatched"
				}
				metrics.ObserveRequest(v.Method, route, v.Status, v.Latency)
			}
			return nil
		},
	})
}

func rateLimiter(perSecond float64) echo.MiddlewareFunc {
	burst := max(int(perSecond), 1)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, api.Error{
				Code:    http.StatusTooManyRequests,
				Message: "Too many requests, please slow down",
			})
		},
	})
}
