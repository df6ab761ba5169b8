package handler

import (
	"github.com/gin-gonic/gin"

	"burgerhouse/internal/domain"
	"burgerhouse/internal/service"
	resp "burgerhouse/internal/transport/http/response"
)

type menuMemberJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type menuJSON struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Burgers     []menuMemberJSON `json:"burgers"`
	Complements []menuMemberJSON `json:"complements"`
}

func toMenuJSON(m *domain.Menu) menuJSON {
	out := menuJSON{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Burgers:     make([]menuMemberJSON, 0, len(m.Burgers)),
		Complements: make([]menuMemberJSON, 0, len(m.Complements)),
	}
	for i := range m.Burgers {
		out.Burgers = append(out.Burgers, menuMemberJSON{ID: m.Burgers[i].ID, Name: m.Burgers[i].Name})
	}
	for i := range m.Complements {
		out.Complements = append(out.Complements, menuMemberJSON{ID: m.Complements[i].ID, Name: m.Complements[i].Name})
	}
	return out
}

type menuReq struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
	BurgerIDs     *[]uint `json:"burgerIds"`
	ComplementIDs *[]uint `json:"complementIds"`
}

type MenuHandler struct{ svc *service.MenuService }

func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// GET /api/menus
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	out := make([]menuJSON, 0, len(menus))
	for i := range menus {
		out = append(out, toMenuJSON(&menus[i]))
	}
	resp.OK(c, out)
}

// POST /api/menus
func (h *MenuHandler) Create(c *gin.Context) {
	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == nil || req.BurgerIDs == nil || req.ComplementIDs == nil {
		resp.BadRequest(c, "name, burgerIds and complementIds are required")
		return
	}
	m, err := h.svc.Create(c.Request.Context(), service.MenuInput{
		Name:          *req.Name,
		Description:   deref(req.Description),
		Image:         deref(req.Image),
		BurgerIDs:     *req.BurgerIDs,
		ComplementIDs: *req.ComplementIDs,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "menu created", "menu": toMenuJSON(m)})
}

// PUT /api/menus/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, service.MenuPatch{
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		BurgerIDs:     req.BurgerIDs,
		ComplementIDs: req.ComplementIDs,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu updated", "menu": toMenuJSON(m)})
}

// PUT /api/menus/:id/archive
func (h *MenuHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Archive(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu archived"})
}

// GET /api/menus/:id/price
func (h *MenuHandler) Price(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pb, err := h.svc.PriceBreakdown(id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, pb)
}
