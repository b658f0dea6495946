package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProductNotFoundError reports a batch entry whose product id did not resolve.
type ProductNotFoundError struct {
	Index     int
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("products[%d]: product %d does not exist", e.Index, e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// notFound maps gorm's missing-row error onto ErrNotFound and passes anything else through.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// IsMissing reports whether err is gorm's missing-row error.
func IsMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
