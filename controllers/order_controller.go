package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/services"
	"github.com/GouravKumar19/slooze/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /orders — add a menu item to the caller's cart
func (h *OrderController) Create(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "menu item id is required")
		return
	}

	order, err := h.Svc.AddItem(utils.CurrentClaims(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List(utils.CurrentClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.Svc.Detail(utils.CurrentClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id — update a line's quantity on the caller's draft order
func (h *OrderController) UpdateQuantity(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req services.UpdateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "item id is required")
		return
	}

	order, err := h.Svc.UpdateItemQuantity(utils.CurrentClaims(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — cancel a submitted order
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.Svc.Cancel(utils.CurrentClaims(c), id); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order cancelled successfully"})
}

// POST /orders/:id/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	// body is optional; an empty body means "use the default payment method"
	var req services.CheckoutIn
	_ = c.ShouldBindJSON(&req)

	order, err := h.Svc.Checkout(utils.CurrentClaims(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order placed successfully", "order": order})
}
