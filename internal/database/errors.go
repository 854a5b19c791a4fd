package database

import (
	"errors"

	"gorm.io/gorm"
)

// Domain-expected storage outcomes. Anything the stores return that is not
// one of these is an unclassified persistence failure.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrHasPosts  = errors.New("user still owns posts")
)

// Translate maps GORM's error values onto the domain error kinds. Unknown
// errors pass through unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
