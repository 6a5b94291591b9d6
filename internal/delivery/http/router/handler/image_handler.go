package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gocloud.dev/gcerrors"
)

// ImageHandler serves previously uploaded pet and listing images.
type ImageHandler struct {
	store  service.ImageStore
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(store service.ImageStore, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		store:  store,
		logger: logger,
	}
}

// Serve streams one stored image back to the client. The path parameter is
// reduced to its base name so it can never escape the image directory.
func (h *ImageHandler) Serve(c echo.Context) error {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == "/" {
		return domainerrors.ErrNotFound
	}

	reader, err := h.store.Open(c.Request().Context(), filename)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to open stored image")
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Response(), reader); err != nil {
		return errors.Wrap(err, "failed to stream stored image")
	}

	return nil
}
