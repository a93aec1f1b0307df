package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// mapDomainError translates the domain failure taxonomy into HTTP statuses.
// Unauthenticated (401, "log in") and Unauthorized (403, "you lack
// permission") are deliberately distinct and must stay so.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, ErrorResponse{Error: "log in required", Code: "LOGIN_REQUIRED"})
	case errors.Is(err, domain.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, ErrorResponse{Error: "permission denied", Code: "PERMISSION_DENIED"})
	case errors.Is(err, domain.ErrMotelNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Error: "motel not found", Code: "MOTEL_NOT_FOUND"})
	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Error: "user not found", Code: "USER_NOT_FOUND"})
	case errors.Is(err, domain.ErrPhotoNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Error: "photo not found", Code: "PHOTO_NOT_FOUND"})
	case errors.Is(err, domain.ErrPhotoQuotaExceeded):
		return echo.NewHTTPError(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "PHOTO_QUOTA_EXCEEDED"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "INVALID_STATUS"})
	case errors.Is(err, domain.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_INPUT"})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"})
	}
}
