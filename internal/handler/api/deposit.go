package api

import (
	"net/http"

	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/handler/httperr"
	"bookcase-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DepositHandler struct {
	q queries.DepositQueries
}

func NewDepositHandler(q queries.DepositQueries) *DepositHandler {
	return &DepositHandler{q: q}
}

// @Summary Owner deposit
// @Description Get an owner's deposit balance together with every offset drawn from it
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Owner ID"
// @Success 200 {object} resdto.DepositResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owners/{id}/deposit [get]
func (h *DepositHandler) GetByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if !canActFor(c, ownerID) {
		httperr.AbortWithError(c, http.StatusForbidden, errOwnerMismatch, "Insufficient permissions", nil)
		return
	}

	view, err := h.q.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepositView(view))
}
