package handler

import (
	"github.com/gin-gonic/gin"

	"burgerhouse/internal/core/auth"
	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
	"burgerhouse/internal/transport/http/middleware"
	resp "burgerhouse/internal/transport/http/response"
)

type userJSON struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	Nom       string   `json:"nom"`
	Prenom    string   `json:"prenom"`
	Telephone string   `json:"telephone"`
	Roles     []string `json:"roles"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{ID: u.ID, Email: u.Email, Nom: u.Nom, Prenom: u.Prenom, Telephone: u.Telephone, Roles: u.Roles}
}

type registerReq struct {
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	Nom       *string  `json:"nom"`
	Prenom    *string  `json:"prenom"`
	Telephone *string  `json:"telephone"`
	Roles     []string `json:"roles"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	svc *service.UserService
	jwt *auth.JWTer
}

func NewAuthHandler(svc *service.UserService, jwt *auth.JWTer) *AuthHandler {
	return &AuthHandler{svc: svc, jwt: jwt}
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Email == nil || req.Password == nil || req.Nom == nil || req.Prenom == nil || req.Telephone == nil {
		resp.BadRequest(c, "incomplete data")
		return
	}
	u, err := h.svc.Register(service.RegisterInput{
		Email:     *req.Email,
		Password:  *req.Password,
		Nom:       *req.Nom,
		Prenom:    *req.Prenom,
		Telephone: *req.Telephone,
		Roles:     req.Roles,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "user registered", "user": toUserJSON(u)})
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Authenticate(req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.FromError(c, err)
		return
	}
	token, err := h.jwt.Issue(u.ID, u.Roles)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": toUserJSON(u)})
}

// GET /api/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetUint(middleware.KeyUserID)
	u, err := h.svc.Get(uid)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, toUserJSON(u))
}
