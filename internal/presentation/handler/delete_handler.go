package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
	"diary/internal/domain/dto"
	"diary/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	err := h.deleter.Delete(c.Request().Context(), uidFrom(c), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dto.Message{Message: "Diary deleted successfully"})
}
