package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
	"diary/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
}

func NewUpdateHandler(updater abstraction.Updater) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
	}
}

// HandleUpdate handles PUT /:id requests carrying JSON or a multipart form.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	req, closeImage, err := parseUpdate(c)
	defer closeImage()
	if err != nil {
		return writeError(c, err)
	}

	diary, err := h.updater.Update(c.Request().Context(), uidFrom(c), c.Param(presentation.IDParam), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, diary)
}
