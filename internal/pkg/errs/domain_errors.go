package errs

import "errors"

// Sentinels shared by the command and query layers. Handlers match on these with errors.Is.
var (
	// Not found
	ErrBookCaseNotFound  = errors.New("book case not found")
	ErrOccupancyNotFound = errors.New("occupancy not found")
	ErrDepositNotFound   = errors.New("deposit not found")

	// Conflicts
	ErrEmptyRequest        = errors.New("empty request")
	ErrAlreadyOccupied     = errors.New("book case already occupied")
	ErrNotOccupied         = errors.New("book case not occupied")
	ErrUnsettledSalesExist = errors.New("unsettled sales exist for book case")

	// Validation
	ErrDomainValidation       = errors.New("domain validation error")
	ErrInvalidDepositAmount   = errors.New("deposit amount must be positive")
	ErrInvalidOccupancyPeriod = errors.New("expiration date is before occupancy start")

	// Persistence
	ErrPersistenceIntegrity    = errors.New("persistence integrity failure")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
