package rekuest

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
)

var (
	Validate = validator.New()

	entr ut.Translator
)

func init() {
	// violations should name the camelCase wire field, not the Go field
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	entr, _ = uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

// translate turns validator errors into per-field violations
func translate(ve validator.ValidationErrors) []*zmerr.Violation {
	violations := make([]*zmerr.Violation, 0, len(ve))

	for _, fe := range ve {
		violations = append(violations, &zmerr.Violation{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(entr),
		})
	}

	return violations
}

func validateStruct(s any) []*zmerr.Violation {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody parses the request body into dest via fiber#BodyParser and
// validates it. On failure it returns an INVALID_REQUEST error carrying the
// per-field violations; dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if violations := validateStruct(dest); violations != nil {
		return zmerr.NewInvalidViolations(violations)
	}

	return nil
}

func ValidStruct(dest any) error {
	if violations := validateStruct(dest); violations != nil {
		return zmerr.NewInvalidViolations(violations)
	}

	return nil
}

// ValidVar validates a single value against a tag, reporting it under the
// given field name.
func ValidVar(field string, value any, tag string) error {
	err := Validate.Var(value, tag)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		violations := translate(errs)
		for _, v := range violations {
			v.Field = field
		}
		return zmerr.NewInvalidViolations(violations)
	}
	return nil
}
