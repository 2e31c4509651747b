package middleware

import (
	"net/http"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"diary/internal/domain/dto"
	"diary/internal/domain/repository/token"
	"diary/internal/presentation"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's uid under presentation.UIDKey.
func AuthMiddleware(verifier token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if authHeader == "" {
				return unauthorized(ctx, "No token, authorization denied")
			}

			raw, ok := strings.CutPrefix(authHeader, presentation.BearerPrefix)
			if !ok || strings.TrimSpace(raw) == "" {
				return unauthorized(ctx, "missing Bearer header prefix")
			}

			uid, err := verifier.Verify(strings.TrimSpace(raw))
			if err != nil {
				logger.Debug("rejected bearer token", "err", err)

				return unauthorized(ctx, "Token is not valid")
			}

			ctx.Set(presentation.UIDKey, uid)

			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, reason string) error {
	ctx.Response().Header().Set(presentation.ReasonTag, reason)

	return ctx.JSON(http.StatusUnauthorized, dto.Message{Message: reason})
}
