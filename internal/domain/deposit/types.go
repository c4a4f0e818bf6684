package deposit

type Status string

const (
	StatusHeld     Status = "HELD"
	StatusDepleted Status = "DEPLETED"
	StatusReturned Status = "RETURNED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusDepleted, StatusReturned:
		return true
	default:
		return false
	}
}
