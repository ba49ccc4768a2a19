package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const maxItemNameLength = 100

// itemNamePattern allows the characters seen on grocery receipts.
var itemNamePattern = regexp.MustCompile(`^[\p{L}\p{N} .,'&()/%+-]+$`)

// Validator wraps the go-playground validator with the domain rules and
// readable error messages.
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate for use with Echo.
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator.
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("item_name", validateItemName)

	// Report field names the way clients send them: query tag first, then json.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateItemName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || len([]rune(name)) > maxItemNameLength {
		return false
	}
	return itemNamePattern.MatchString(name)
}

// FieldMessages turns validator errors into field -> message pairs. It
// returns nil when err carries no field errors.
func FieldMessages(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	messages := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		messages[fe.Field()] = Message(fe)
	}
	return messages
}

// Message renders one field error for clients.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "item_name":
		return fmt.Sprintf("must be 1 to %d letters, digits or receipt punctuation", maxItemNameLength)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
