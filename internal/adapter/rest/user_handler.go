package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest/middleware"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

type UserHandler struct {
	users  *usecase.UserUsecase
	logger *logger.Logger
}

func NewUserHandler(users *usecase.UserUsecase, log *logger.Logger) *UserHandler {
	return &UserHandler{users: users, logger: log}
}

// Sync mirrors the verified token identity into the users collection. The
// client calls it once after sign-in; repeating it is harmless.
func (h *UserHandler) Sync(c echo.Context) error {
	identity := middleware.Identity(c)

	ctx, span := tracer.Start(c.Request().Context(), "UserHandler.Sync")
	defer span.End()

	user, err := h.users.Sync(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	span.SetAttributes(attribute.String("subject", string(user.Subject)))
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Me(c echo.Context) error {
	identity := middleware.Identity(c)

	ctx, span := tracer.Start(c.Request().Context(), "UserHandler.Me")
	defer span.End()

	user, err := h.users.Me(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
