package pkg_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittrack/pkg"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	pkg.WriteResponse(rec, pkg.ContentType.Text, "hello there", http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hello there", rec.Body.String())
}

func TestWriteResponseBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	pkg.WriteResponseBytes(rec, pkg.ContentType.JSON, []byte(`{"ok":true}`), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestWriteResponseBytes_NoContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	pkg.WriteResponseBytes(rec, "", []byte("raw"), http.StatusOK)

	assert.Empty(t, rec.Header().Values("Content-Type"))
	assert.Equal(t, "raw", rec.Body.String())
}

func TestWriteResponseOKHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	pkg.WriteTextResponseOK(rec, "all good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "all good", rec.Body.String())

	rec = httptest.NewRecorder()
	pkg.WriteJSONResponseOK(rec, `{"status":"ok"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	pkg.WriteResponseBytesOK(rec, pkg.ContentType.JSON, []byte(`[]`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[]`, rec.Body.String())
}
