package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CodeZF375/crimsonbot/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// Logger is satisfied by echo.Logger.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// mapError converts a service error into status and body. internalMsg is used
// for anything unclassified.
func mapError(err error, info domain.CategoryInfo, internalMsg string) (int, any) {
	if ve, ok := domain.IsValidation(err); ok {
		return http.StatusBadRequest, validationResponse{Errors: ve.Fields}
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, messageResponse{Message: info.Noun + " bulunamadı"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, messageResponse{Message: info.Noun + " zaten mevcut"}
	default:
		return http.StatusInternalServerError, messageResponse{Message: internalMsg}
	}
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, validationResponse{
		Errors: []domain.FieldError{{Field: "body", Message: "Geçersiz JSON"}},
	})
}
