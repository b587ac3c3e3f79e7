package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagInput struct {
	Name  string `json:"name" binding:"required,max=5"`
	Color string `json:"color" binding:"required,tagcolor"`
	Slug  string `json:"slug" binding:"required,slug"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterOn(v))
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		input   tagInput
		invalid map[string]string
	}{
		{
			name:  "valid long color",
			input: tagInput{Name: "Lunch", Color: "#49B64E", Slug: "lunch_1"},
		},
		{
			name:  "valid short color",
			input: tagInput{Name: "Lunch", Color: "#abc", Slug: "lunch-time"},
		},
		{
			name:  "bad color and slug",
			input: tagInput{Name: "Lunch", Color: "49B64E", Slug: "lunch time"},
			invalid: map[string]string{
				"color": messages["tagcolor"],
				"slug":  messages["slug"],
			},
		},
		{
			name:  "missing and too long",
			input: tagInput{Name: "Breakfast", Color: "#1234", Slug: ""},
			invalid: map[string]string{
				"name":  "Ensure this field has no more than 5 characters.",
				"color": messages["tagcolor"],
				"slug":  messages["required"],
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			fields, ok := FieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.invalid, fields)
		})
	}
}

func TestUsernameValidator(t *testing.T) {
	v := newValidator(t)
	type input struct {
		Username string `json:"username" binding:"username"`
	}

	assert.NoError(t, v.Struct(input{Username: "vasya.pupkin+1@x"}))

	fields, ok := FieldErrors(v.Struct(input{Username: "vasya pupkin"}))
	require.True(t, ok)
	assert.Equal(t, messages["username"], fields["username"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	_, ok := FieldErrors(assert.AnError)
	assert.False(t, ok)
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestStructListRules(t *testing.T) {
	type item struct {
		ID     uint `json:"id" binding:"required"`
		Amount int  `json:"amount" binding:"gte=1"`
	}
	type order struct {
		Items []item `json:"items" binding:"required,min=1,unique=ID,dive"`
		IDs   []uint `json:"ids" binding:"required,min=1,unique,dive,required"`
		Note  string `json:"note" binding:"required,notblank"`
	}

	tests := []struct {
		name    string
		input   order
		invalid map[string]string
	}{
		{
			name:  "valid",
			input: order{Items: []item{{ID: 1, Amount: 2}, {ID: 2, Amount: 1}}, IDs: []uint{1, 2}, Note: "ok"},
		},
		{
			name:  "repeated items and ids",
			input: order{Items: []item{{ID: 1, Amount: 2}, {ID: 1, Amount: 3}}, IDs: []uint{4, 4}, Note: "ok"},
			invalid: map[string]string{
				"items": messages["unique"],
				"ids":   messages["unique"],
			},
		},
		{
			name:  "item rule reported under the list",
			input: order{Items: []item{{ID: 1, Amount: 0}}, IDs: []uint{1}, Note: "   "},
			invalid: map[string]string{
				"items": "Ensure this value is greater than or equal to 1.",
				"note":  messages["notblank"],
			},
		},
		{
			name:  "empty lists",
			input: order{Items: []item{}, IDs: []uint{}, Note: "ok"},
			invalid: map[string]string{
				"items": "Ensure this list has at least 1 item(s).",
				"ids":   "Ensure this list has at least 1 item(s).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Struct(tt.input)
			require.NoError(t, err)
			if tt.invalid == nil {
				assert.Nil(t, fields)
				return
			}
			assert.Equal(t, tt.invalid, fields)
		})
	}
}
