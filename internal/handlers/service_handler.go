package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/httperr"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/httpresp"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/models"
)

// ======================================================
// CATÁLOGO DE SERVIÇOS
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "A duração deve ser maior que zero.")
		return
	}
	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "O preço não pode ser negativo.")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Service{})

	// Por padrão só lista serviços ativos; ?all=true traz todos.
	if c.Query("all") != "true" {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name asc").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	var svc models.Service
	err := h.db.WithContext(c.Request.Context()).
		First(&svc, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var svc models.Service
	err := h.db.WithContext(c.Request.Context()).
		First(&svc, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "O preço não pode ser negativo.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "A duração deve ser maior que zero.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

// Delete desativa o serviço em vez de apagar, preservando o histórico
// de agendamentos que apontam para ele.
func (h *ServiceHandler) Delete(c *gin.Context) {
	var svc models.Service
	err := h.db.WithContext(c.Request.Context()).
		First(&svc, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	svc.Active = false
	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}
