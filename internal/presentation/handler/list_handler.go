package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleListOwned handles GET / requests.
func (h *ListHandler) HandleListOwned(c echo.Context) error {
	diaries, err := h.lister.ListOwned(c.Request().Context(), uidFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, diaries)
}

// HandleListPublic handles unauthenticated GET /public requests.
func (h *ListHandler) HandleListPublic(c echo.Context) error {
	diaries, err := h.lister.ListPublic(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, diaries)
}
