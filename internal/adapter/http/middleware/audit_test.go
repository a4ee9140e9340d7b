package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushpay/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditRouter(buf *bytes.Buffer, status int) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(zerolog.New(buf)))
	handler := func(c *gin.Context) {
		c.Set(CtxCaller, domain.Identity("alice"))
		c.Status(status)
	}
	r.PUT("/api/v1/merchants/:id/fee-rate", handler)
	r.GET("/api/v1/merchants/:id", handler)
	r.POST("/api/v1/unmapped", handler)
	return r
}

func TestAuditLog_AdminAction(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/merchants/shop-1/fee-rate", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "audit", entry["message"])
	assert.Equal(t, "set_fee_rate", entry["action"])
	assert.Equal(t, "success", entry["outcome"])
	assert.Equal(t, "alice", entry["caller"])
	assert.Equal(t, "shop-1", entry["merchant_id"])
}

func TestAuditLog_RejectedAttempt(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusForbidden)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/merchants/shop-1/fee-rate", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rejected", entry["outcome"])
	assert.Equal(t, float64(403), entry["status"])
}

func TestAuditLog_SkipsReadsAndUnmappedRoutes(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/merchants/shop-1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/unmapped", nil))

	assert.Empty(t, strings.TrimSpace(buf.String()))
}
