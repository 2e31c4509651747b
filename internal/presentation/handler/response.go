package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
	"diary/internal/presentation"
)

// writeError turns a use case error into a status, an X-Reason header and a
// {"message": reason} body. Causes of server side failures only go to the log.
func writeError(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	reason := apperr.Reason(err)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "err", err)
	}

	c.Response().Header().Set(presentation.ReasonTag, reason)

	return c.JSON(status, dto.Message{Message: reason})
}

func uidFrom(c echo.Context) string {
	uid, _ := c.Get(presentation.UIDKey).(string)

	return uid
}
