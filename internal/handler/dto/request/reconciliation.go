package request

// Month is formatted YYYY-MM; it is parsed by the handler so the error maps to 400.
type ReconciliationRequest struct {
	Month string `json:"month" binding:"required"`
}
