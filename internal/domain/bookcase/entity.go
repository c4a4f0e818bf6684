package bookcase

import (
	"errors"
	"strings"

	"bookcase-rental/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyBookCaseName   = errors.New("book case name cannot be empty")
	ErrBookCaseNameTooLong = errors.New("book case name is too long (max 255 characters)")
	ErrInvalidMonthlyPrice = errors.New("monthly price must be positive")
)

const (
	MaxBookCaseNameLength = 255
)

// BookCase is the rentable unit. Its monthly price comes from its type.
type BookCase struct {
	id           uuid.UUID
	typeID       uuid.UUID
	name         string
	monthlyPrice money.Money
}

func NewBookCase(id, typeID uuid.UUID, name string, monthlyPrice money.Money) (*BookCase, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !monthlyPrice.IsPositive() {
		return nil, ErrInvalidMonthlyPrice
	}

	return &BookCase{
		id:           id,
		typeID:       typeID,
		name:         strings.TrimSpace(name),
		monthlyPrice: monthlyPrice,
	}, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyBookCaseName
	}
	if len(name) > MaxBookCaseNameLength {
		return ErrBookCaseNameTooLong
	}
	return nil
}

func (b *BookCase) ID() uuid.UUID             { return b.id }
func (b *BookCase) TypeID() uuid.UUID         { return b.typeID }
func (b *BookCase) Name() string              { return b.name }
func (b *BookCase) MonthlyPrice() money.Money { return b.monthlyPrice }
