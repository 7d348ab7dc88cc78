package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/api/metrics"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload stores one multipart file under the form field "file".
//
// @Summary      Upload a file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "File contents"
// @Success      201   {object}  domain.StoredFile
// @Failure      400   {object}  errorResponse
// @Router       /files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "there isn't any file"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "there isn't any file"})
	}
	defer src.Close()

	file, err := h.service.Save(c.Request().Context(), ports.UploadInput{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Content:     src,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	metrics.UploadBytes.Observe(float64(file.Size))
	return c.JSON(http.StatusCreated, file)
}

// Download streams a stored file back to the client.
//
// @Summary      Download a file
// @Tags         files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "File id"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [get]
func (h *FileHandler) Download(c echo.Context) error {
	file, rc, err := h.service.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer rc.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Stream(http.StatusOK, contentType, rc)
}

// Delete removes a file's metadata and schedules the blob for removal.
//
// @Summary      Delete a file
// @Tags         files
// @Security     BearerAuth
// @Param        id  path  string  true  "File id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
