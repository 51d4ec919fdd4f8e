package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/services"
	"github.com/GouravKumar19/slooze/utils"
)

type CartController struct{ Svc *services.OrderService }

func NewCartController(s *services.OrderService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Cart(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.ClearCart(utils.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
