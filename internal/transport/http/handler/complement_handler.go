package handler

import (
	"github.com/gin-gonic/gin"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
	resp "burgerhouse/internal/transport/http/response"
)

type complementJSON struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Type        string  `json:"type"`
}

func toComplementJSON(x *domain.Complement) complementJSON {
	return complementJSON{ID: x.ID, Name: x.Name, Description: x.Description, Price: x.Price, Image: x.Image, Type: x.Type}
}

type complementReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Type        *string  `json:"type"`
}

type ComplementHandler struct{ svc *service.ComplementService }

func NewComplementHandler(svc *service.ComplementService) *ComplementHandler {
	return &ComplementHandler{svc: svc}
}

// GET /api/complements
func (h *ComplementHandler) List(c *gin.Context) {
	items, err := h.svc.ListActive()
	if err != nil {
		resp.FromError(c, err)
		return
	}
	out := make([]complementJSON, 0, len(items))
	for i := range items {
		out = append(out, toComplementJSON(&items[i]))
	}
	resp.OK(c, out)
}

// POST /api/complements
func (h *ComplementHandler) Create(c *gin.Context) {
	var req complementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == nil || req.Price == nil || req.Type == nil {
		resp.BadRequest(c, "name, price and type are required")
		return
	}
	x, err := h.svc.Create(service.ComplementInput{
		Name:        *req.Name,
		Description: deref(req.Description),
		Price:       *req.Price,
		Image:       deref(req.Image),
		Type:        *req.Type,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "complement created", "complement": toComplementJSON(x)})
}

// PUT /api/complements/:id
func (h *ComplementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req complementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	x, err := h.svc.Update(c.Request.Context(), id, service.ComplementPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Type:        req.Type,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "complement updated", "complement": toComplementJSON(x)})
}

// PUT /api/complements/:id/archive
func (h *ComplementHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "complement archived"})
}
