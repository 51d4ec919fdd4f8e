package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/services"
	"github.com/GouravKumar19/slooze/utils"
)

type PaymentMethodController struct{ Svc *services.PaymentService }

func NewPaymentMethodController(s *services.PaymentService) *PaymentMethodController {
	return &PaymentMethodController{Svc: s}
}

// GET /payment-methods
func (h *PaymentMethodController) List(c *gin.Context) {
	methods, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, methods)
}

// POST /payment-methods
func (h *PaymentMethodController) Create(c *gin.Context) {
	var req services.CreatePaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "type and last four digits are required")
		return
	}

	pm, err := h.Svc.Create(utils.CurrentClaims(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, pm)
}

// PUT /payment-methods
func (h *PaymentMethodController) Update(c *gin.Context) {
	var req services.UpdatePaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "payment method id is required")
		return
	}

	pm, err := h.Svc.Update(utils.CurrentClaims(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, pm)
}

// DELETE /payment-methods?id=
func (h *PaymentMethodController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "payment method id is required")
		return
	}

	if err := h.Svc.Delete(utils.CurrentClaims(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment method deleted successfully"})
}
