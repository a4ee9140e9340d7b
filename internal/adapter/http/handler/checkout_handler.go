package handler

import (
	"pushpay/internal/adapter/http/dto"
	"pushpay/internal/adapter/http/middleware"
	"pushpay/internal/core/domain"
	"pushpay/internal/core/ports"
	"pushpay/pkg/apperror"
	"pushpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles payer checkouts.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// ProcessPayment handles POST /api/v1/checkout. The bearer identity is the payer.
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	payer, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.checkoutSvc.ProcessPayment(c.Request.Context(), ports.PaymentRequest{
		Payer:            payer,
		MerchantID:       domain.MerchantID(req.MerchantID),
		Amount:           req.Amount,
		VerificationHash: req.VerificationHash,
		FaceProof:        req.FaceProof,
		FingerProof:      req.FingerProof,
		Metadata:         req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewCheckoutResponse(result))
}
