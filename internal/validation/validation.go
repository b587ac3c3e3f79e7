// Package validation registers the custom binding tags used by request
// models and turns validator errors into field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	tagColorPattern = regexp.MustCompile(`^#(([a-zA-Z0-9]{6})|([a-zA-Z0-9]{3}))$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

	registerOnce sync.Once
	registerErr  error

	standaloneOnce sync.Once
	standalone     *validator.Validate
	standaloneErr  error
)

// Register installs the custom validators into gin's binding engine.
// Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected binding validator engine")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom validators into v.
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("tagcolor", func(fl validator.FieldLevel) bool {
		return tagColorPattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register tagcolor: %w", err)
	}
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register slug: %w", err)
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register username: %w", err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return nil
}

// Validator returns a validator outside gin that reads the same binding
// tags, for checks that do not start from a request body.
func Validator() (*validator.Validate, error) {
	standaloneOnce.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		standaloneErr = RegisterOn(v)
		standalone = v
	})
	return standalone, standaloneErr
}

// Struct checks s against its binding tags. Failing fields come back as
// messages; err is set only when validation could not run.
func Struct(s interface{}) (map[string]string, error) {
	v, err := Validator()
	if err != nil {
		return nil, err
	}
	err = v.Struct(s)
	if err == nil {
		return nil, nil
	}
	if fields, ok := FieldErrors(err); ok {
		return fields, nil
	}
	return nil, err
}

var messages = map[string]string{
	"required": "This field is required.",
	"notblank": "This field may not be blank.",
	"unique":   "Items must not repeat.",
	"tagcolor": "Enter a color in HEX format, e.g. #49B64E.",
	"slug":     "Slug may contain only letters, digits, hyphens and underscores.",
	"email":    "Enter a valid email address.",
	"username": "Username may contain only letters, digits and @/./+/-/_ characters.",
}

// FieldErrors maps each failing field (by its JSON name) to a message. The
// bool is false when err is not a validation failure.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, ok := out[name]; !ok {
			out[name] = message(fe)
		}
	}
	return out, true
}

// fieldName reports errors inside a list under the list itself, so
// "ingredients[1].amount" becomes "ingredients".
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.Index(fe.Namespace(), "."); i >= 0 {
		name = fe.Namespace()[i+1:]
	}
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	return name
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this list has at least %s item(s).", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is at least %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
