package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var requiredMessages = map[string]string{
	"isim":        "İsim belirtilmelidir",
	"tur":         "Tür belirtilmelidir",
	"rol":         "Rol belirtilmelidir",
	"girisTarihi": "Giriş tarihi belirtilmelidir",
	"baslik":      "Başlık belirtilmelidir",
	"bilgi":       "Bilgi belirtilmelidir",
	"ip":          "IP belirtilmelidir",
}

// Validate checks v against its struct tags. Callers normalize first so that
// whitespace-only values fail "required".
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return fe.Field() + " belirtilmelidir"
	case "oneof":
		return "Tür " + strings.Join(strings.Fields(fe.Param()), " veya ") + " olmalıdır"
	default:
		return fe.Error()
	}
}
