package rest

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest/middleware"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

var tracer = otel.Tracer("motel-service/rest")

type MotelHandler struct {
	motels    *usecase.MotelUsecase
	photos    *usecase.PhotoUsecase
	cache     MotelCache
	publisher *nats.Publisher
	logger    *logger.Logger
}

func NewMotelHandler(
	motels *usecase.MotelUsecase,
	photos *usecase.PhotoUsecase,
	motelCache MotelCache,
	publisher *nats.Publisher,
	log *logger.Logger,
) *MotelHandler {
	return &MotelHandler{
		motels:    motels,
		photos:    photos,
		cache:     motelCache,
		publisher: publisher,
		logger:    log,
	}
}

func (h *MotelHandler) respond(c echo.Context, status int, motel *domain.Motel) error {
	return c.JSON(status, toMotelResponse(motel, h.photos.URLs(c.Request().Context(), motel)))
}

func (h *MotelHandler) respondList(c echo.Context, motels []*domain.Motel) error {
	ctx := c.Request().Context()
	out := make([]*MotelResponse, 0, len(motels))
	for _, m := range motels {
		out = append(out, toMotelResponse(m, h.photos.URLs(ctx, m)))
	}
	return c.JSON(http.StatusOK, out)
}

// parseOrigin reads optional lat/lng query parameters. Both must be present,
// parse, and fall inside valid coordinate ranges; anything else means "no
// caller location" and the native order is kept.
func parseOrigin(c echo.Context) *domain.Location {
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}
	return &domain.Location{Lat: lat, Lng: lng}
}

// List is the public directory: approved motels, nearest first when the
// caller shared a location.
func (h *MotelHandler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.List")
	defer span.End()

	origin := parseOrigin(c)
	span.SetAttributes(attribute.Bool("has_origin", origin != nil))

	motels, errCache := h.cache.GetApproved(ctx)
	if errCache != nil {
		h.logger.Warn("List: approved cache read failed", "error", errCache.Error())
	}
	if motels == nil {
		var err error
		motels, err = h.motels.ListApproved(ctx, nil)
		if err != nil {
			span.RecordError(err)
			return mapDomainError(err)
		}
		if errSet := h.cache.SetApproved(ctx, motels); errSet != nil {
			h.logger.Warn("List: approved cache write failed", "error", errSet.Error())
		}
	}

	// The cache holds the native order; ranking is applied per request.
	domain.SortByProximity(motels, origin)
	span.SetAttributes(attribute.Int("count", len(motels)))
	return h.respondList(c, motels)
}

func (h *MotelHandler) Get(c echo.Context) error {
	id := domain.MotelID(c.Param("id"))
	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.Get", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
	))
	defer span.End()

	if cached, errCache := h.cache.GetMotel(ctx, id); errCache == nil && cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return h.respond(c, http.StatusOK, cached)
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	motel, err := h.motels.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	if errSet := h.cache.SetMotel(ctx, motel); errSet != nil {
		h.logger.Warn("Get: cache write failed", "motel_id", string(id), "error", errSet.Error())
	}
	return h.respond(c, http.StatusOK, motel)
}

func (h *MotelHandler) Create(c echo.Context) error {
	identity := middleware.Identity(c)

	var req CreateMotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "malformed request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.Create", oteltrace.WithAttributes(
		attribute.String("name", req.Name),
		attribute.String("plan", req.Plan),
	))
	defer span.End()

	motel, err := h.motels.Create(ctx, identity, req.toInput())
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	span.SetAttributes(attribute.String("motel_id", string(motel.ID)))

	if errCache := h.cache.SetMotel(ctx, motel); errCache != nil {
		h.logger.Warn("Create: cache write failed", "motel_id", string(motel.ID), "error", errCache.Error())
	}
	if errPub := h.publisher.Publish(ctx, "motel.created", map[string]string{
		"id": string(motel.ID), "owner_id": string(motel.OwnerID),
	}); errPub != nil {
		h.logger.Warn("Create: event publish failed", "motel_id", string(motel.ID), "error", errPub.Error())
	}

	return h.respond(c, http.StatusCreated, motel)
}

func (h *MotelHandler) Update(c echo.Context) error {
	identity := middleware.Identity(c)
	id := domain.MotelID(c.Param("id"))

	var req UpdateMotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "malformed request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.Update", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
	))
	defer span.End()

	motel, err := h.motels.Update(ctx, identity, id, req.toPatch())
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}

	h.invalidate(c, motel)
	if errPub := h.publisher.Publish(ctx, "motel.updated", map[string]string{
		"id": string(motel.ID), "owner_id": string(motel.OwnerID),
	}); errPub != nil {
		h.logger.Warn("Update: event publish failed", "motel_id", string(id), "error", errPub.Error())
	}

	return h.respond(c, http.StatusOK, motel)
}

func (h *MotelHandler) ChangeStatus(c echo.Context) error {
	identity := middleware.Identity(c)
	id := domain.MotelID(c.Param("id"))

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "malformed request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.ChangeStatus", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
		attribute.String("new_status", req.Status),
	))
	defer span.End()

	motel, err := h.motels.ChangeStatus(ctx, identity, id, domain.Status(req.Status))
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}

	h.invalidate(c, motel)
	if errPub := h.publisher.Publish(ctx, "motel.status.updated", map[string]string{
		"id": string(motel.ID), "status": string(motel.Status), "owner_id": string(motel.OwnerID),
	}); errPub != nil {
		h.logger.Warn("ChangeStatus: event publish failed", "motel_id", string(id), "error", errPub.Error())
	}

	return h.respond(c, http.StatusOK, motel)
}

func (h *MotelHandler) Delete(c echo.Context) error {
	identity := middleware.Identity(c)
	id := domain.MotelID(c.Param("id"))

	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.Delete", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
	))
	defer span.End()

	if err := h.motels.Delete(ctx, identity, id); err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}

	if errCache := h.cache.DeleteMotel(ctx, id); errCache != nil {
		h.logger.Warn("Delete: cache eviction failed", "motel_id", string(id), "error", errCache.Error())
	}
	if errCache := h.cache.InvalidateApproved(ctx); errCache != nil {
		h.logger.Warn("Delete: approved cache invalidation failed", "error", errCache.Error())
	}
	if errPub := h.publisher.Publish(ctx, "motel.deleted", map[string]string{"id": string(id)}); errPub != nil {
		h.logger.Warn("Delete: event publish failed", "motel_id", string(id), "error", errPub.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *MotelHandler) ListMine(c echo.Context) error {
	identity := middleware.Identity(c)
	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.ListMine")
	defer span.End()

	motels, err := h.motels.ListMine(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	span.SetAttributes(attribute.Int("count", len(motels)))
	return h.respondList(c, motels)
}

// ListAllAdmin is the moderation view over every motel regardless of status.
func (h *MotelHandler) ListAllAdmin(c echo.Context) error {
	identity := middleware.Identity(c)
	ctx, span := tracer.Start(c.Request().Context(), "MotelHandler.ListAllAdmin")
	defer span.End()

	motels, err := h.motels.ListAll(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}
	span.SetAttributes(attribute.Int("count", len(motels)))
	return h.respondList(c, motels)
}

// invalidate refreshes the by-id entry and drops the directory list after a
// mutation.
func (h *MotelHandler) invalidate(c echo.Context, motel *domain.Motel) {
	ctx := c.Request().Context()
	if err := h.cache.SetMotel(ctx, motel); err != nil {
		h.logger.Warn("cache refresh failed", "motel_id", string(motel.ID), "error", err.Error())
	}
	if err := h.cache.InvalidateApproved(ctx); err != nil {
		h.logger.Warn("approved cache invalidation failed", "error", err.Error())
	}
}
