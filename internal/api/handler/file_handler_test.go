package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chronodesk/timetracking-api/internal/api/handler"
	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

type stubFileService struct {
	saveFn   func(ctx context.Context, input ports.UploadInput) (*domain.StoredFile, error)
	openFn   func(ctx context.Context, id string) (*domain.StoredFile, io.ReadCloser, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubFileService) Save(ctx context.Context, input ports.UploadInput) (*domain.StoredFile, error) {
	return s.saveFn(ctx, input)
}

func (s *stubFileService) Open(ctx context.Context, id string) (*domain.StoredFile, io.ReadCloser, error) {
	return s.openFn(ctx, id)
}

func (s *stubFileService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func multipartUpload(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/files", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestFileHandler_Upload(t *testing.T) {
	svc := &stubFileService{
		saveFn: func(_ context.Context, input ports.UploadInput) (*domain.StoredFile, error) {
			data, err := io.ReadAll(input.Content)
			if err != nil {
				t.Fatalf("reading upload content: %v", err)
			}
			if string(data) != "csv,data" {
				t.Fatalf("unexpected upload content: %q", data)
			}
			return &domain.StoredFile{
				ID:        "f-1",
				Name:      input.Name,
				Size:      int64(len(data)),
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := handler.NewFileHandler(svc)

	e := newTestEcho()
	req := multipartUpload(t, "file", "report.csv", "csv,data")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["name"] != "report.csv" {
		t.Fatalf("unexpected file name: %v", body["name"])
	}
	// The stored path stays server-side.
	if _, leaked := body["path"]; leaked {
		t.Fatalf("response must not expose the storage path: %s", rec.Body.String())
	}
}

func TestFileHandler_Upload_MissingFile(t *testing.T) {
	h := handler.NewFileHandler(&stubFileService{})

	e := newTestEcho()
	req := multipartUpload(t, "wrong-field", "report.csv", "csv,data")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("missing file renders directly, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "there isn't any file") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestFileHandler_Download(t *testing.T) {
	svc := &stubFileService{
		openFn: func(_ context.Context, id string) (*domain.StoredFile, io.ReadCloser, error) {
			if id != "f-1" {
				return nil, nil, domain.ErrFileNotFound
			}
			file := &domain.StoredFile{ID: "f-1", Name: "report.csv", ContentType: "text/csv"}
			return file, io.NopCloser(strings.NewReader("csv,data")), nil
		},
	}
	h := handler.NewFileHandler(svc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/files/f-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("f-1")

	if err := h.Download(c); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "csv,data" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="report.csv"` {
		t.Fatalf("unexpected content disposition: %q", got)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "text/csv" {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestFileHandler_Delete(t *testing.T) {
	var deleted string
	svc := &stubFileService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := handler.NewFileHandler(svc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/files/f-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("f-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "f-1" {
		t.Fatalf("service called with %q", deleted)
	}
}

func TestFileHandler_Download_NotFound(t *testing.T) {
	svc := &stubFileService{
		openFn: func(context.Context, string) (*domain.StoredFile, io.ReadCloser, error) {
			return nil, nil, domain.ErrFileNotFound
		},
	}
	h := handler.NewFileHandler(svc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/files/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Download(c)
	if err == nil {
		t.Fatalf("expected error from handler")
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
