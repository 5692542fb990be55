package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/httperr"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/httpresp"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/timeblock"
)

type TimeBlockHandler struct {
	svc *timeblock.Service
}

func NewTimeBlockHandler(svc *timeblock.Service) *TimeBlockHandler {
	return &TimeBlockHandler{svc: svc}
}

func (h *TimeBlockHandler) Create(c *gin.Context) {
	var req timeblock.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tb, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tb)
}

func (h *TimeBlockHandler) List(c *gin.Context) {
	blocks, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_time_blocks", "Erro ao listar bloqueios.")
		return
	}
	httpresp.List(c, blocks)
}

func (h *TimeBlockHandler) GetByID(c *gin.Context) {
	tb, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	httpresp.OK(c, tb)
}

func (h *TimeBlockHandler) Update(c *gin.Context) {
	var req timeblock.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tb, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, tb)
}

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	if _, err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
