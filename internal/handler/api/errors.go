package api

import (
	"net/http"

	"bookcase-rental/internal/domain/settlement"
	"bookcase-rental/internal/handler/httperr"
	"bookcase-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{errs.ErrBookCaseNotFound, http.StatusNotFound, "Book case not found"},
	{errs.ErrOccupancyNotFound, http.StatusNotFound, "Occupancy not found"},
	{errs.ErrDepositNotFound, http.StatusNotFound, "Deposit not found"},
	{errs.ErrEmptyRequest, http.StatusBadRequest, "No book cases given"},
	{errs.ErrAlreadyOccupied, http.StatusConflict, "Book case already occupied"},
	{errs.ErrNotOccupied, http.StatusConflict, "Book case not occupied"},
	{errs.ErrUnsettledSalesExist, http.StatusConflict, "Book case has unsettled sales"},
	{errs.ErrInvalidDepositAmount, http.StatusBadRequest, "Deposit amount must be positive"},
	{errs.ErrInvalidOccupancyPeriod, http.StatusBadRequest, "Expiration date is before occupancy start"},
	{settlement.ErrInvalidMonth, http.StatusBadRequest, "Invalid month"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
}

func abortWithDomainError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
