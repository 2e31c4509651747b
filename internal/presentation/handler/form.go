package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
)

const (
	titleField    = "title"
	contentField  = "content"
	isPublicField = "isPublic"
	imageField    = "image"
)

// publicFlag accepts the visibility flag as a JSON bool or string. Only true and
// "true" make a diary public.
type publicFlag bool

func (f *publicFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", `"true"`:
		*f = true
	default:
		*f = false
	}

	return nil
}

type updateRequest struct {
	Title    *string     `json:"title"`
	Content  *string     `json:"content"`
	IsPublic *publicFlag `json:"isPublic"`
}

func isPublic(value string) bool {
	return value == "true"
}

// openUpload opens a multipart file part. The returned closer must always be called.
func openUpload(header *multipart.FileHeader) (*dto.Upload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, apperr.Validation("invalid image upload")
	}

	return &dto.Upload{
		Body:        file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
	}, func() { _ = file.Close() }, nil
}

func formImage(c echo.Context) (*dto.Upload, func(), error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, apperr.Validation("invalid multipart form")
	}

	return openUpload(header)
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// parseUpdate reads a partial update either from a multipart form or from a JSON
// body. Absent fields stay nil.
func parseUpdate(c echo.Context) (dto.UpdateDiary, func(), error) {
	if isMultipart(c) {
		return parseMultipartUpdate(c)
	}

	var req updateRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return dto.UpdateDiary{}, func() {}, apperr.Validation("invalid request body")
	}

	update := dto.UpdateDiary{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.IsPublic != nil {
		flag := bool(*req.IsPublic)
		update.IsPublic = &flag
	}

	return update, func() {}, nil
}

func parseMultipartUpdate(c echo.Context) (dto.UpdateDiary, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return dto.UpdateDiary{}, func() {}, apperr.Validation("invalid multipart form")
	}

	var update dto.UpdateDiary

	if v, ok := formValue(form, titleField); ok {
		update.Title = &v
	}
	if v, ok := formValue(form, contentField); ok {
		update.Content = &v
	}
	if v, ok := formValue(form, isPublicField); ok {
		flag := isPublic(v)
		update.IsPublic = &flag
	}

	files := form.File[imageField]
	if len(files) == 0 {
		return update, func() {}, nil
	}

	upload, closeUpload, err := openUpload(files[0])
	if err != nil {
		return dto.UpdateDiary{}, closeUpload, err
	}
	update.Image = upload

	return update, closeUpload, nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}
