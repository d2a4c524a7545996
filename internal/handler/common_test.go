package handler

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithBody(t *testing.T, contentType string, body []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", contentType)
	return c
}

func TestReadFilesPreservesFormOrder(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"first.pdf", "second.pdf"} {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	c := contextWithBody(t, mw.FormDataContentType(), buf.Bytes())

	files, err := readFiles(c, "files", 0)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "first.pdf", files[0].Filename)
	assert.Equal(t, "second.pdf", files[1].Filename)
}

func TestReadFilesReportsBrokenMultipartBody(t *testing.T) {
	c := contextWithBody(t, "multipart/form-data; boundary=broken", []byte("this is not a multipart body"))

	_, err := readFiles(c, "files", 0)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "multipart"))
}

func TestReadFilesIgnoresNonMultipartRequests(t *testing.T) {
	c := contextWithBody(t, "application/json", []byte(`{"folder":"imports"}`))

	files, err := readFiles(c, "files", 0)
	require.NoError(t, err)
	assert.Nil(t, files)
}
