package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/httperr"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/httpresp"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create  *appointment.CreateAppointment
	update  *appointment.UpdateAppointment
	remove  *appointment.RemoveAppointment
	list    *appointment.ListAppointments
	get     *appointment.GetAppointment
	slots   *appointment.GetAvailableSlots
	history *appointment.ClientHistory

	loc *time.Location
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	update *appointment.UpdateAppointment,
	remove *appointment.RemoveAppointment,
	list *appointment.ListAppointments,
	get *appointment.GetAppointment,
	slots *appointment.GetAvailableSlots,
	history *appointment.ClientHistory,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:  create,
		update:  update,
		remove:  remove,
		list:    list,
		get:     get,
		slots:   slots,
		history: history,
		loc:     loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartsAt string  `json:"starts_at" binding:"required"`
	EndsAt   *string `json:"ends_at"`

	ServiceID string `json:"service_id" binding:"required"`

	UserID     *string `json:"user_id"`
	ClientName string  `json:"client_name"`
	BarberID   *string `json:"barber_id"`

	Status string `json:"status"`
}

type UpdateAppointmentRequest struct {
	StartsAt *string `json:"starts_at"`
	EndsAt   *string `json:"ends_at"`

	ServiceID *string `json:"service_id"`

	UserID     *string `json:"user_id"`
	ClientName *string `json:"client_name"`

	Status *string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	startsAt, err := parseDateTimeIn(h.loc, req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Data de início inválida.")
		return
	}

	in := appointment.CreateAppointmentInput{
		StartsAt:   startsAt,
		ServiceID:  req.ServiceID,
		UserID:     req.UserID,
		ClientName: req.ClientName,
		BarberID:   req.BarberID,
		Status:     req.Status,
	}

	if req.EndsAt != nil {
		endsAt, err := parseDateTimeIn(h.loc, *req.EndsAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_ends_at", "Data de término inválida.")
			return
		}
		in.EndsAt = &endsAt
	}

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	in := appointment.ListAppointmentsInput{
		UserID:   c.Query("user_id"),
		BarberID: c.Query("barber_id"),
		Status:   c.Query("status"),
		Page:     parseIntQuery(c, "page", 1),
		Limit:    parseIntQuery(c, "limit", 10),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDateIn(h.loc, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato YYYY-MM-DD.")
			return
		}
		in.Date = &date
	}

	if c.Query("order") == "desc" {
		in.OrderDesc = true
	}

	data, total, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Paged(c, data, total, in.Page, in.Limit)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := appointment.UpdateAppointmentInput{
		ServiceID:  req.ServiceID,
		UserID:     req.UserID,
		ClientName: req.ClientName,
		Status:     req.Status,
	}

	if req.StartsAt != nil {
		startsAt, err := parseDateTimeIn(h.loc, *req.StartsAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_starts_at", "Data de início inválida.")
			return
		}
		in.StartsAt = &startsAt
	}

	if req.EndsAt != nil {
		endsAt, err := parseDateTimeIn(h.loc, *req.EndsAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_ends_at", "Data de término inválida.")
			return
		}
		in.EndsAt = &endsAt
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if _, err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")

	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Informe date e service_id.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato YYYY-MM-DD.")
		return
	}

	result, err := h.slots.Execute(c.Request.Context(), date, serviceID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// CLIENT HISTORY
// ======================================================

func (h *AppointmentHandler) ClientHistory(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	data, total, err := h.history.Execute(
		c.Request.Context(),
		c.Query("client_name"),
		c.Query("phone"),
		page,
		limit,
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Paged(c, data, total, page, limit)
}

// ======================================================
// HELPERS
// ======================================================

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
