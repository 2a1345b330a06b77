package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/service"
)

// RecordHandler serves the CRUD routes of one category under /api/{category}.
type RecordHandler[T domain.Entity[T]] struct {
	svc    service.RecordService[T]
	info   domain.CategoryInfo
	logger Logger
}

func NewRecordHandler[T domain.Entity[T]](svc service.RecordService[T], logger Logger) *RecordHandler[T] {
	info, ok := domain.Info(svc.Category())
	if !ok {
		panic("api: no category info for " + string(svc.Category()))
	}
	return &RecordHandler[T]{svc: svc, info: info, logger: logger}
}

func (h *RecordHandler[T]) Register(g *echo.Group) {
	r := g.Group("/" + string(h.info.Category))
	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

func (h *RecordHandler[T]) List(c echo.Context) error {
	recs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, h.info.PluralNoun+" alınırken hata oluştu")
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecordHandler[T]) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, h.info.Noun+" alınırken hata oluştu")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler[T]) Create(c echo.Context) error {
	var payload T
	if err := c.Bind(&payload); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Create(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err, h.info.Noun+" oluşturulurken hata oluştu")
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *RecordHandler[T]) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	var payload T
	if err := c.Bind(&payload); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Update(c.Request().Context(), id, payload)
	if err != nil {
		return h.fail(c, err, h.info.Noun+" güncellenirken hata oluştu")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler[T]) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.notFound(c)
	}
	if _, err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, h.info.Noun+" silinirken hata oluştu")
	}
	return c.NoContent(http.StatusNoContent)
}

// 数値でない id はどのレコードにも一致しないので 404 扱い。
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *RecordHandler[T]) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, messageResponse{Message: h.info.Noun + " bulunamadı"})
}

func (h *RecordHandler[T]) fail(c echo.Context, err error, internalMsg string) error {
	status, body := mapError(err, h.info, internalMsg)
	if status == http.StatusInternalServerError {
		h.logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(status, body)
}
