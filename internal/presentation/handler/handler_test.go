package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"diary/internal/domain/apperr"
	"diary/internal/domain/dto"
	"diary/internal/domain/entity"
	"diary/internal/domain/model"
	"diary/internal/presentation"
)

const testUID = "user-1"

type multipartBody struct {
	fields map[string]string
	image  []byte
}

func (m multipartBody) build(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range m.fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if m.image != nil {
		part, err := writer.CreateFormFile(imageField, "cat.png")
		require.NoError(t, err)
		_, err = part.Write(m.image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func newContext(req *http.Request, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(presentation.UIDKey, testUID)
	if id != "" {
		c.SetParamNames(presentation.IDParam)
		c.SetParamValues(id)
	}

	return c, rec
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
		reason string
	}{
		{apperr.Validation("title is required"), http.StatusBadRequest, "title is required"},
		{apperr.NotFound("Diary not found"), http.StatusNotFound, "Diary not found"},
		{apperr.Forbidden("Forbidden: You do not own this diary"), http.StatusForbidden,
			"Forbidden: You do not own this diary"},
		{apperr.Unavailable("Error fetching diaries", io.ErrUnexpectedEOF), http.StatusInternalServerError,
			"Error fetching diaries"},
		{io.EOF, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), "")

		require.NoError(t, writeError(c, tt.err))
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.reason, rec.Header().Get(presentation.ReasonTag))

		var body dto.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.reason, body.Message)
		assert.NotContains(t, rec.Body.String(), "unexpected EOF")
	}
}

func TestHandleCreate(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]bool{"true": true, "false": false, "yes": false, "TRUE": false, "": false} {
		creator := new(mockCreator)
		creator.On("Create", mock.Anything, testUID, mock.MatchedBy(func(req dto.CreateDiary) bool {
			return req.Title == "t" && req.Content == "c" && req.IsPublic == expected && req.Image != nil
		})).Return(&model.Diary{OwnerID: testUID, Title: "t", Content: "c", IsPublic: expected}, nil)

		body, contentType := multipartBody{
			fields: map[string]string{titleField: "t", contentField: "c", isPublicField: value},
			image:  []byte("\x89PNG\r\n\x1a\n"),
		}.build(t)

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		c, rec := newContext(req, "")

		require.NoError(t, NewCreateHandler(creator).HandleCreate(c))
		assert.Equal(t, http.StatusCreated, rec.Code, "isPublic=%q", value)
		creator.AssertExpectations(t)
	}
}

func TestHandleCreateWithoutImage(t *testing.T) {
	t.Parallel()

	creator := new(mockCreator)
	creator.On("Create", mock.Anything, testUID, mock.MatchedBy(func(req dto.CreateDiary) bool {
		return req.Image == nil
	})).Return(nil, apperr.Validation("image file is required"))

	body, contentType := multipartBody{fields: map[string]string{titleField: "t", contentField: "c"}}.build(t)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newContext(req, "")

	require.NoError(t, NewCreateHandler(creator).HandleCreate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"image file is required"}`, rec.Body.String())
}

func TestHandleUpdateJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected func(req dto.UpdateDiary) bool
	}{
		{
			name: "bool flag",
			body: `{"title":"new","isPublic":true}`,
			expected: func(req dto.UpdateDiary) bool {
				return *req.Title == "new" && req.Content == nil && *req.IsPublic
			},
		},
		{
			name: "string flag",
			body: `{"isPublic":"true"}`,
			expected: func(req dto.UpdateDiary) bool {
				return req.Title == nil && *req.IsPublic
			},
		},
		{
			name: "anything else is private",
			body: `{"isPublic":"1"}`,
			expected: func(req dto.UpdateDiary) bool {
				return !*req.IsPublic
			},
		},
		{
			name: "empty body",
			body: ``,
			expected: func(req dto.UpdateDiary) bool {
				return req.Title == nil && req.Content == nil && req.IsPublic == nil && req.Image == nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			updater := new(mockUpdater)
			updater.On("Update", mock.Anything, testUID, "d1", mock.MatchedBy(tt.expected)).
				Return(&model.Diary{Title: "new"}, nil)

			req := httptest.NewRequest(http.MethodPut, "/d1", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c, rec := newContext(req, "d1")

			require.NoError(t, NewUpdateHandler(updater).HandleUpdate(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			updater.AssertExpectations(t)
		})
	}
}

func TestHandleUpdateMalformedJSON(t *testing.T) {
	t.Parallel()

	updater := new(mockUpdater)
	req := httptest.NewRequest(http.MethodPut, "/d1", strings.NewReader(`{"title":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newContext(req, "d1")

	require.NoError(t, NewUpdateHandler(updater).HandleUpdate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	updater.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUpdateMultipart(t *testing.T) {
	t.Parallel()

	updater := new(mockUpdater)
	updater.On("Update", mock.Anything, testUID, "d1", mock.MatchedBy(func(req dto.UpdateDiary) bool {
		return req.Title == nil && *req.Content == "edited" && *req.IsPublic && req.Image != nil &&
			req.Image.Filename == "cat.png"
	})).Return(&model.Diary{Content: "edited"}, nil)

	body, contentType := multipartBody{
		fields: map[string]string{contentField: "edited", isPublicField: "true"},
		image:  []byte("\x89PNG\r\n\x1a\n"),
	}.build(t)
	req := httptest.NewRequest(http.MethodPut, "/d1", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newContext(req, "d1")

	require.NoError(t, NewUpdateHandler(updater).HandleUpdate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	updater.AssertExpectations(t)
}

func TestHandleGetAndDelete(t *testing.T) {
	t.Parallel()

	getter := new(mockGetter)
	getter.On("GetOwned", mock.Anything, testUID, "mine").Return(&model.Diary{OwnerID: testUID, Title: "t"}, nil)
	getter.On("GetOwned", mock.Anything, testUID, "theirs").
		Return(nil, apperr.Forbidden("Forbidden: You do not own this diary"))

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/mine", http.NoBody), "mine")
	require.NoError(t, NewGetHandler(getter).HandleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(httptest.NewRequest(http.MethodGet, "/theirs", http.NoBody), "theirs")
	require.NoError(t, NewGetHandler(getter).HandleGet(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	deleter := new(mockDeleter)
	deleter.On("Delete", mock.Anything, testUID, "mine").Return(nil)
	deleter.On("Delete", mock.Anything, testUID, "gone").Return(apperr.NotFound("Diary not found"))

	c, rec = newContext(httptest.NewRequest(http.MethodDelete, "/mine", http.NoBody), "mine")
	require.NoError(t, NewDeleteHandler(deleter).HandleDelete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Diary deleted successfully"}`, rec.Body.String())

	c, rec = newContext(httptest.NewRequest(http.MethodDelete, "/gone", http.NoBody), "gone")
	require.NoError(t, NewDeleteHandler(deleter).HandleDelete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleBlob(t *testing.T) {
	t.Parallel()

	getter := new(mockBlobGetter)
	getter.On("GetBlob", mock.Anything, "a.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), entity.BlobInfo{Type: "image/png", Size: 9}, nil)

	req := httptest.NewRequest(http.MethodGet, "/uploads/a.png", http.NoBody)
	c, rec := newContext(req, "")
	c.SetParamNames(presentation.NameParam)
	c.SetParamValues("a.png")

	require.NoError(t, NewBlobHandler(getter).HandleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}
