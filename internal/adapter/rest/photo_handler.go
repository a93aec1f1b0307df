package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest/middleware"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

const maxPhotoBytes = 10 << 20 // per file

type PhotoHandler struct {
	photos    *usecase.PhotoUsecase
	cache     MotelCache
	publisher *nats.Publisher
	logger    *logger.Logger
}

func NewPhotoHandler(photos *usecase.PhotoUsecase, motelCache MotelCache, publisher *nats.Publisher, log *logger.Logger) *PhotoHandler {
	return &PhotoHandler{photos: photos, cache: motelCache, publisher: publisher, logger: log}
}

// Upload accepts a multipart form with one or more files under the "photos"
// field. The whole batch is admitted or rejected as a unit.
func (h *PhotoHandler) Upload(c echo.Context) error {
	identity := middleware.Identity(c)
	id := domain.MotelID(c.Param("id"))

	ctx, span := tracer.Start(c.Request().Context(), "PhotoHandler.Upload", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
	))
	defer span.End()

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "multipart form expected", Code: "BAD_REQUEST"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "no files under the photos field", Code: "BAD_REQUEST"})
	}
	span.SetAttributes(attribute.Int("files", len(files)))

	uploads := make([]usecase.PhotoUpload, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxPhotoBytes {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "photo exceeds the 10MB limit", Code: "PHOTO_TOO_LARGE"})
		}
		src, errOpen := fh.Open()
		if errOpen != nil {
			return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "unreadable file part", Code: "BAD_REQUEST"})
		}
		data, errRead := io.ReadAll(src)
		src.Close()
		if errRead != nil {
			return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "unreadable file part", Code: "BAD_REQUEST"})
		}
		uploads = append(uploads, usecase.PhotoUpload{FileName: fh.Filename, Data: data})
	}

	motel, err := h.photos.Upload(ctx, identity, id, uploads)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}

	// An approved motel's photo set feeds the cached directory list, so the
	// list entry has to go too.
	if errCache := h.cache.SetMotel(ctx, motel); errCache != nil {
		h.logger.Warn("Upload: cache refresh failed", "motel_id", string(id), "error", errCache.Error())
	}
	if errCache := h.cache.InvalidateApproved(ctx); errCache != nil {
		h.logger.Warn("Upload: approved cache invalidation failed", "error", errCache.Error())
	}
	if errPub := h.publisher.Publish(ctx, "motel.photo.uploaded", map[string]string{
		"id": string(motel.ID), "count": strconv.Itoa(len(uploads)),
	}); errPub != nil {
		h.logger.Warn("Upload: event publish failed", "motel_id", string(id), "error", errPub.Error())
	}

	return c.JSON(http.StatusCreated, toMotelResponse(motel, h.photos.URLs(ctx, motel)))
}

// Remove deletes a single photo. The ref travels as a query parameter since
// storage keys contain slashes.
func (h *PhotoHandler) Remove(c echo.Context) error {
	identity := middleware.Identity(c)
	id := domain.MotelID(c.Param("id"))
	ref := domain.PhotoRef(c.QueryParam("ref"))

	ctx, span := tracer.Start(c.Request().Context(), "PhotoHandler.Remove", oteltrace.WithAttributes(
		attribute.String("motel_id", string(id)),
		attribute.String("photo_ref", string(ref)),
	))
	defer span.End()

	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: "ref query parameter is required", Code: "BAD_REQUEST"})
	}

	motel, err := h.photos.Remove(ctx, identity, id, ref)
	if err != nil {
		span.RecordError(err)
		return mapDomainError(err)
	}

	if errCache := h.cache.SetMotel(ctx, motel); errCache != nil {
		h.logger.Warn("Remove: cache refresh failed", "motel_id", string(id), "error", errCache.Error())
	}
	if errCache := h.cache.InvalidateApproved(ctx); errCache != nil {
		h.logger.Warn("Remove: approved cache invalidation failed", "error", errCache.Error())
	}

	return c.JSON(http.StatusOK, toMotelResponse(motel, h.photos.URLs(ctx, motel)))
}
