package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/configs"
	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/utils"
)

type AuthController struct {
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthController(repo *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Repo: repo, Cfg: cfg}
}

type LoginRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
		"country": gin.H{
			"id":   u.Country.ID,
			"name": u.Country.Name,
			"code": u.Country.Code,
		},
	}
}

// POST /auth/login
// Demo login: pick a user, get a session token. No password involved.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "user id is required")
		return
	}

	user, err := a.Repo.GetWithCountry(req.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	token, err := utils.GenerateToken(user, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": userJSON(user)})
}

// GET /auth/users
// The login picker: every demo user with its country.
func (a *AuthController) Users(c *gin.Context) {
	users, err := a.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	resp.OK(c, out)
}
