package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
	resp "burgerhouse/internal/transport/http/response"
)

// burgerJSON is the wire shape; the archived flag stays internal.
type burgerJSON struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

func toBurgerJSON(b *domain.Burger) burgerJSON {
	return burgerJSON{ID: b.ID, Name: b.Name, Description: b.Description, Price: b.Price, Image: b.Image}
}

type burgerReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

type BurgerHandler struct{ svc *service.BurgerService }

func NewBurgerHandler(svc *service.BurgerService) *BurgerHandler {
	return &BurgerHandler{svc: svc}
}

// GET /api/burgers
func (h *BurgerHandler) List(c *gin.Context) {
	burgers, err := h.svc.ListActive()
	if err != nil {
		resp.FromError(c, err)
		return
	}
	out := make([]burgerJSON, 0, len(burgers))
	for i := range burgers {
		out = append(out, toBurgerJSON(&burgers[i]))
	}
	resp.OK(c, out)
}

// POST /api/burgers
func (h *BurgerHandler) Create(c *gin.Context) {
	var req burgerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == nil || req.Price == nil {
		resp.BadRequest(c, "name and price are required")
		return
	}
	b, err := h.svc.Create(service.BurgerInput{
		Name:        *req.Name,
		Description: deref(req.Description),
		Price:       *req.Price,
		Image:       deref(req.Image),
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "burger created", "burger": toBurgerJSON(b)})
}

// PUT /api/burgers/:id
func (h *BurgerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req burgerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Request.Context(), id, service.BurgerPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "burger updated", "burger": toBurgerJSON(b)})
}

// PUT /api/burgers/:id/archive
func (h *BurgerHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "burger archived"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// pathID parses the :id segment; a non-numeric id can never match a record.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "not found")
		return 0, false
	}
	return uint(id), true
}
