package api

import (
	"net/http"

	"bookcase-rental/internal/domain/settlement"
	reqdto "bookcase-rental/internal/handler/dto/request"
	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/handler/httperr"
	"bookcase-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReconciliationHandler struct {
	cmds commands.ReconciliationCommands
}

func NewReconciliationHandler(cmds commands.ReconciliationCommands) *ReconciliationHandler {
	return &ReconciliationHandler{cmds: cmds}
}

// @Summary Run overdue reconciliation
// @Description Offset overdue rent against deposits for the given month; suspends and evicts as needed
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReconciliationRequest true "Month to reconcile (YYYY-MM)"
// @Success 200 {object} resdto.ReconciliationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reconciliations [post]
func (h *ReconciliationHandler) Run(c *gin.Context) {
	var req reqdto.ReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	month, err := settlement.ParseMonth(req.Month)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}

	report, err := h.cmds.ProcessMonthlyOverdue(c.Request.Context(), month)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconciliationReport(report))
}
