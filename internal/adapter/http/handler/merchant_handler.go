package handler

import (
	"strconv"
	"time"

	"pushpay/internal/adapter/http/dto"
	"pushpay/internal/adapter/http/middleware"
	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"
	"pushpay/pkg/apperror"
	"pushpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler serves merchant ledgers: registration, public reads and
// the admin-gated configuration surface.
type MerchantHandler struct {
	registry ports.MerchantRegistry
	now      func() time.Time
}

// NewMerchantHandler creates a new merchant handler. A nil now uses time.Now.
func NewMerchantHandler(registry ports.MerchantRegistry, now func() time.Time) *MerchantHandler {
	if now == nil {
		now = time.Now
	}
	return &MerchantHandler{registry: registry, now: now}
}

// Register handles POST /api/v1/merchants. The caller becomes the administrator.
func (h *MerchantHandler) Register(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	l, err := h.registry.Register(c.Request.Context(), ports.RegisterMerchantRequest{
		ID:                 domain.MerchantID(req.ID),
		Name:               req.Name,
		Admin:              caller,
		FeeRateBasisPoints: req.FeeRateBasisPoints,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewMerchantResponse(l.Profile(), h.now()))
}

// List handles GET /api/v1/merchants.
func (h *MerchantHandler) List(c *gin.Context) {
	ledgers := h.registry.List()
	now := h.now()
	items := make([]dto.MerchantResponse, 0, len(ledgers))
	for _, l := range ledgers {
		items = append(items, dto.NewMerchantResponse(l.Profile(), now))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/merchants/:id.
func (h *MerchantHandler) Get(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewMerchantResponse(l.Profile(), h.now()))
}

// GetCertification handles GET /api/v1/merchants/:id/certification.
func (h *MerchantHandler) GetCertification(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewCertificationResponse(l.GetCertification(), h.now()))
}

// GetFeeRate handles GET /api/v1/merchants/:id/fee-rate.
func (h *MerchantHandler) GetFeeRate(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewFeeRateResponse(l.GetFeeRate()))
}

// GetStats handles GET /api/v1/merchants/:id/stats.
func (h *MerchantHandler) GetStats(c *gin.Context) {
	l, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, dto.StatsResponse{MerchantID: string(l.ID()), LedgerStats: l.GetStats()})
}

// GetPayment handles GET /api/v1/merchants/:id/payments/:record_id.
func (h *MerchantHandler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("record_id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation("record_id must be a positive integer"))
		return
	}

	l, ok := h.ledger(c)
	if !ok {
		return
	}

	rec, err := l.GetRecord(c.Request.Context(), domain.RecordID(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentRecordResponse(rec))
}

// SetCertification handles PUT /api/v1/merchants/:id/certification.
func (h *MerchantHandler) SetCertification(c *gin.Context) {
	caller, l, ok := h.adminTarget(c)
	if !ok {
		return
	}

	var req dto.SetCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != nil {
		expiresAt = req.ExpiresAt.UTC()
	}

	if err := l.SetCertification(c.Request.Context(), caller, *req.Certified, req.Hash, expiresAt); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCertificationResponse(l.GetCertification(), h.now()))
}

// SetFeeRate handles PUT /api/v1/merchants/:id/fee-rate.
func (h *MerchantHandler) SetFeeRate(c *gin.Context) {
	caller, l, ok := h.adminTarget(c)
	if !ok {
		return
	}

	var req dto.SetFeeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	rate, err := req.BasisPoints()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := l.SetFeeRate(c.Request.Context(), caller, rate); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewFeeRateResponse(l.GetFeeRate()))
}

// TransferAdmin handles PUT /api/v1/merchants/:id/admin.
func (h *MerchantHandler) TransferAdmin(c *gin.Context) {
	caller, l, ok := h.adminTarget(c)
	if !ok {
		return
	}

	var req dto.TransferAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := l.TransferAdmin(c.Request.Context(), caller, domain.Identity(req.NewAdmin)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewMerchantResponse(l.Profile(), h.now()))
}

// ledger resolves :id, writing the error response on failure.
func (h *MerchantHandler) ledger(c *gin.Context) (ports.MerchantLedger, bool) {
	l, err := h.registry.Get(domain.MerchantID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return l, true
}

// adminTarget resolves the caller and :id for an admin operation. The admin
// check itself belongs to the ledger.
func (h *MerchantHandler) adminTarget(c *gin.Context) (domain.Identity, ports.MerchantLedger, bool) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", nil, false
	}
	l, ok := h.ledger(c)
	if !ok {
		return "", nil, false
	}
	return caller, l, true
}
