package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/httperr"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/httpresp"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/settings"
)

type SettingsHandler struct {
	svc *settings.Service
}

func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type UpdateSettingsRequest struct {
	BusinessName    *string `json:"business_name"`
	OpenTime        *string `json:"open_time"`
	CloseTime       *string `json:"close_time"`
	WorkingDays     []int   `json:"working_days"`
	SlotIntervalMin *int    `json:"slot_interval_min"`
	MaxAdvanceDays  *int    `json:"max_advance_days"`
	MinAdvanceHours *int    `json:"min_advance_hours"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	st, err := h.svc.Get(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erro ao carregar configurações.")
		return
	}
	httpresp.OK(c, st)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	st, err := h.svc.Update(c.Request.Context(), settings.UpdateInput{
		BusinessName:    req.BusinessName,
		OpenTime:        req.OpenTime,
		CloseTime:       req.CloseTime,
		WorkingDays:     req.WorkingDays,
		SlotIntervalMin: req.SlotIntervalMin,
		MaxAdvanceDays:  req.MaxAdvanceDays,
		MinAdvanceHours: req.MinAdvanceHours,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, st)
}
