package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
	"diary/internal/presentation"
)

type BlobHandler struct {
	getter abstraction.BlobGetter
}

func NewBlobHandler(getter abstraction.BlobGetter) *BlobHandler {
	return &BlobHandler{
		getter: getter,
	}
}

// HandleGet handles GET /uploads/:name, streaming the stored image.
func (h *BlobHandler) HandleGet(c echo.Context) error {
	body, info, err := h.getter.GetBlob(c.Request().Context(), c.Param(presentation.NameParam))
	if err != nil {
		return writeError(c, err)
	}
	defer body.Close()

	if info.Size >= 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, info.Type, body)
}
