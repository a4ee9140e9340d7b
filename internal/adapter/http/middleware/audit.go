package middleware

import (
	"net/http"

	"pushpay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type auditRoute struct {
	method string
	path   string
}

var auditActions = map[auditRoute]string{
	{http.MethodPost, "/api/v1/checkout"}:                   "checkout",
	{http.MethodPost, "/api/v1/merchants"}:                  "register_merchant",
	{http.MethodPut, "/api/v1/merchants/:id/certification"}: "set_certification",
	{http.MethodPut, "/api/v1/merchants/:id/fee-rate"}:      "set_fee_rate",
	{http.MethodPut, "/api/v1/merchants/:id/admin"}:         "transfer_admin",
}

// AuditLog writes one audit line per state-changing request, including
// rejected attempts, after the handler has run.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action, ok := auditActions[auditRoute{c.Request.Method, c.FullPath()}]
		if !ok {
			return
		}

		status := c.Writer.Status()
		outcome := "success"
		if status >= http.StatusBadRequest {
			outcome = "rejected"
		}

		caller, _ := Caller(c)
		log.Info().
			Str("action", action).
			Str("outcome", outcome).
			Int("status", status).
			Str("caller", string(caller)).
			Str("merchant_id", c.Param("id")).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("client_ip", c.ClientIP()).
			Msg("audit")
	}
}
