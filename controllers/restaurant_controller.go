package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/services"
	"github.com/GouravKumar19/slooze/utils"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Svc.List(utils.CurrentClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := h.Svc.Detail(utils.CurrentClaims(c), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, rest)
}
