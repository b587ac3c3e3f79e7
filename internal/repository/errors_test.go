package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "duplicate", in: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: ErrAlreadyExists},
		{name: "foreign key", in: gorm.ErrForeignKeyViolated, want: ErrInUse},
		{name: "check constraint", in: fmt.Errorf("insert: %w", gorm.ErrCheckConstraintViolated), want: ErrCheckViolated},
		{name: "passthrough", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
