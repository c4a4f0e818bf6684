package api

import (
	"net/http"

	"bookcase-rental/internal/domain/principal"
	reqdto "bookcase-rental/internal/handler/dto/request"
	resdto "bookcase-rental/internal/handler/dto/response"
	"bookcase-rental/internal/handler/httperr"
	"bookcase-rental/internal/handler/middleware"
	"bookcase-rental/internal/pkg/errs"
	"bookcase-rental/internal/usecase/commands"
	"bookcase-rental/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errOwnerMismatch = errors.New("owner may only act on own account")

type OccupancyHandler struct {
	cmds commands.OccupancyCommands
	q    queries.OccupancyQueries
}

func NewOccupancyHandler(cmds commands.OccupancyCommands, q queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{cmds: cmds, q: q}
}

// @Summary Occupy book cases
// @Description Occupy one or more book cases for an owner, generate monthly rent obligations and add to the owner's deposit
// @Tags occupancies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OccupyRequest true "Occupy request"
// @Success 201 {array} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /occupancies [post]
func (h *OccupancyHandler) Occupy(c *gin.Context) {
	var req reqdto.OccupyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !canActFor(c, req.OwnerID) {
		httperr.AbortWithError(c, http.StatusForbidden, errOwnerMismatch, "Insufficient permissions", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid expiration date", nil)
		return
	}

	records, err := h.cmds.Occupy(c.Request.Context(), cmd)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOccupancies(records))
}

// @Summary Release book cases
// @Description End occupancy of the given book cases and move their unsold items to pending retrieval
// @Tags occupancies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReleaseRequest true "Release request"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /occupancies/release [post]
func (h *OccupancyHandler) Release(c *gin.Context) {
	var req reqdto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if role, _ := middleware.GetUserRole(c); role == principal.RoleOwner {
		for _, id := range req.BookCaseIDs {
			if !h.heldByCaller(c, id) {
				return
			}
		}
	}

	itemIDs, err := h.cmds.UnOccupy(c.Request.Context(), req.BookCaseIDs)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReleasedItems(itemIDs))
}

// @Summary Book case occupancy
// @Description Report whether a book case is occupied and, if so, its active occupancy
// @Tags book-cases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book case ID"
// @Success 200 {object} resdto.BookCaseOccupancyResponse
// @Failure 400 {object} httperr.Response
// @Router /book-cases/{id}/occupancy [get]
func (h *OccupancyHandler) GetBookCaseOccupancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetActiveOccupancy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrOccupancyNotFound) {
			c.JSON(http.StatusOK, resdto.BookCaseOccupancyResponse{Occupied: false})
			return
		}
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookCaseOccupancyResponse{
		Occupied:  true,
		Occupancy: resdto.FromOccupancyView(view),
	})
}

// @Summary Occupancy obligations
// @Description List the monthly rent obligations of an occupancy, oldest month first
// @Tags occupancies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occupancy ID"
// @Success 200 {array} resdto.ObligationResponse
// @Failure 400 {object} httperr.Response
// @Router /occupancies/{id}/obligations [get]
func (h *OccupancyHandler) ListObligations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	items, err := h.q.ListObligations(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromObligationViews(items))
}

// heldByCaller aborts unless the book case's active occupancy belongs to the calling owner.
// Unoccupied book cases pass through so UnOccupy reports the precise error.
func (h *OccupancyHandler) heldByCaller(c *gin.Context, bookCaseID uuid.UUID) bool {
	view, err := h.q.GetActiveOccupancy(c.Request.Context(), bookCaseID)
	if err != nil {
		if errors.Is(err, errs.ErrOccupancyNotFound) {
			return true
		}
		abortWithDomainError(c, err)
		return false
	}
	if !canActFor(c, view.OwnerID) {
		httperr.AbortWithError(c, http.StatusForbidden, errOwnerMismatch, "Insufficient permissions", nil)
		return false
	}
	return true
}

// canActFor lets staff and admins act for anyone; owners only for themselves.
func canActFor(c *gin.Context, ownerID uuid.UUID) bool {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return false
	}
	if middleware.HasMinimumRole(role, principal.RoleStaff) {
		return true
	}
	userID, ok := middleware.GetUserID(c)
	return ok && userID == ownerID
}
