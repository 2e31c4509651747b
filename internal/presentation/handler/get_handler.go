package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
	"diary/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	diary, err := h.getter.GetOwned(c.Request().Context(), uidFrom(c), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, diary)
}
