package prefix

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// CreatePrefixInput holds the parameters for creating a prefix.
// An empty Prefix declares the default namespace, as in Turtle's "@prefix : <...>".
type CreatePrefixInput struct {
	Prefix string `json:"prefix" validate:"omitempty,max=64,ncname"`
	URI    string `json:"uri"    validate:"required,max=2048,uri"`
}

var ncnameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("ncname", func(fl validator.FieldLevel) bool {
		return ncnameRe.MatchString(fl.Field().String())
	})
	return v
}

// Normalize trims surrounding whitespace from both fields.
func (i CreatePrefixInput) Normalize() CreatePrefixInput {
	return CreatePrefixInput{Prefix: strings.TrimSpace(i.Prefix), URI: strings.TrimSpace(i.URI)}
}

// Validate checks all fields and collects all errors.
func (i CreatePrefixInput) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "max " + fe.Param() + " characters"
	case "ncname":
		return "must start with a letter or underscore and contain only letters, digits, '_', '-' or '.'"
	case "uri":
		return "must be an absolute URI"
	}
	return "invalid"
}
