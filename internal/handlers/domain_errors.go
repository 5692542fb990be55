package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/domain/schedule"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/httperr"
)

// ======================================================
// MAPEAMENTO DE ERROS DE DOMÍNIO -> HTTP
// ======================================================

// writeDomainError traduz os erros tipados do domínio para a resposta
// HTTP correspondente. Qualquer coisa fora da taxonomia vira 500.
func writeDomainError(c *gin.Context, err error) {
	if ve, ok := schedule.AsValidation(err); ok {
		httperr.BadRequest(c, "validation_error", ve.Message)
		return
	}

	if nf, ok := schedule.AsNotFound(err); ok {
		httperr.NotFound(c, "not_found", nf.Error())
		return
	}

	if ce, ok := schedule.AsConflict(err); ok {
		httperr.Conflict(c, "schedule_conflict", ce.Message)
		return
	}

	// Corrida perdida contra a constraint de exclusão no banco.
	if httperr.IsExclusionConflict(err) {
		httperr.Conflict(c, "schedule_conflict", "Este horário acabou de ser reservado por outra pessoa.")
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
