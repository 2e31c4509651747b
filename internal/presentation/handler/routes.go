package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"diary/internal/presentation"
)

type Handlers struct {
	Create *CreateHandler
	List   *ListHandler
	Get    *GetHandler
	Update *UpdateHandler
	Delete *DeleteHandler
	Blob   *BlobHandler
}

// Register mounts the diary API on e. auth guards every owner route.
func Register(e *echo.Echo, h Handlers, auth echo.MiddlewareFunc) {
	idPath := fmt.Sprintf("/:%s", presentation.IDParam)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/public", h.List.HandleListPublic)
	e.GET(fmt.Sprintf("/uploads/:%s", presentation.NameParam), h.Blob.HandleGet)

	e.POST("/", h.Create.HandleCreate, auth)
	e.GET("/", h.List.HandleListOwned, auth)
	e.GET(idPath, h.Get.HandleGet, auth)
	e.PUT(idPath, h.Update.HandleUpdate, auth)
	e.DELETE(idPath, h.Delete.HandleDelete, auth)
}
