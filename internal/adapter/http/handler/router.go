package handler

import (
	"net/http"
	"time"

	"pushpay/internal/adapter/http/middleware"
	"pushpay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Checkout       ports.CheckoutService
	Registry       ports.MerchantRegistry
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        http.Handler // nil = /metrics not served
	MetricsPath    string
	MaxBodyBytes   int64
	Mode           string // gin mode; empty = release
	Clock          func() time.Time
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))
	r.Use(middleware.AuditLog(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1")

	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	v1.POST("/checkout", jwtAuth, rl("checkout"), checkoutHandler.ProcessPayment)

	merchantHandler := NewMerchantHandler(deps.Registry, deps.Clock)
	merchants := v1.Group("/merchants")
	{
		merchants.GET("", rl("merchant_read"), merchantHandler.List)
		merchants.POST("", jwtAuth, rl("merchant_register"), merchantHandler.Register)

		merchants.GET("/:id", rl("merchant_read"), merchantHandler.Get)
		merchants.GET("/:id/certification", rl("merchant_read"), merchantHandler.GetCertification)
		merchants.GET("/:id/fee-rate", rl("merchant_read"), merchantHandler.GetFeeRate)
		merchants.GET("/:id/stats", rl("merchant_read"), merchantHandler.GetStats)
		merchants.GET("/:id/payments/:record_id", rl("merchant_read"), merchantHandler.GetPayment)

		merchants.PUT("/:id/certification", jwtAuth, rl("merchant_admin"), merchantHandler.SetCertification)
		merchants.PUT("/:id/fee-rate", jwtAuth, rl("merchant_admin"), merchantHandler.SetFeeRate)
		merchants.PUT("/:id/admin", jwtAuth, rl("merchant_admin"), merchantHandler.TransferAdmin)
	}

	return r
}
