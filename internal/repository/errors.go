package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrNotInRelation    = errors.New("relation does not exist")
	ErrSelfSubscription = errors.New("users cannot subscribe to themselves")
	ErrInUse            = errors.New("record is referenced by other records")
	ErrCheckViolated    = errors.New("value violates a check constraint")
)

// translate maps gorm/driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInUse
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrCheckViolated
	default:
		return err
	}
}

// Page is a limit/offset window over an ordered listing.
type Page struct {
	Limit  int
	Offset int
}
