package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"backend/internal/media"
	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id the middleware stored on
// the context. Empty on unauthenticated routes.
func currentUserID(c *gin.Context) string {
	id, _ := c.Get(middleware.CtxUserID)
	s, _ := id.(string)
	return s
}

// readFile pulls one optional multipart file into memory. Returns nil
// when the field is absent.
func readFile(c *gin.Context, field string, maxSize int64) (*media.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return loadFileHeader(fh, maxSize)
}

// readFiles pulls every file bound to a multipart field, in form order.
// A non-multipart request yields no files; a broken multipart body is an
// error the client needs to see.
func readFiles(c *gin.Context, field string, maxSize int64) ([]media.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	var files []media.File
	for _, fh := range form.File[field] {
		f, err := loadFileHeader(fh, maxSize)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}

func loadFileHeader(fh *multipart.FileHeader, maxSize int64) (*media.File, error) {
	if maxSize > 0 && fh.Size > maxSize {
		return nil, fmt.Errorf("file %q exceeds the %dMB limit", fh.Filename, maxSize>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	return &media.File{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// respondError maps service sentinel errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrImageRequired):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, response.Error(status, err.Error()))
}
