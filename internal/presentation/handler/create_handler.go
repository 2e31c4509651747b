package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/application/usecase/abstraction"
	"diary/internal/domain/dto"
)

type CreateHandler struct {
	creator abstraction.Creator
}

func NewCreateHandler(creator abstraction.Creator) *CreateHandler {
	return &CreateHandler{
		creator: creator,
	}
}

// HandleCreate handles multipart POST / requests.
func (h *CreateHandler) HandleCreate(c echo.Context) error {
	image, closeImage, err := formImage(c)
	defer closeImage()
	if err != nil {
		return writeError(c, err)
	}

	diary, err := h.creator.Create(c.Request().Context(), uidFrom(c), dto.CreateDiary{
		Title:    c.FormValue(titleField),
		Content:  c.FormValue(contentField),
		IsPublic: isPublic(c.FormValue(isPublicField)),
		Image:    image,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, diary)
}
