package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagedrop/service/internal/auth"
	"github.com/imagedrop/service/internal/middleware"
)

// multipartUpload builds a multipart request body with an image part and
// bucket/directory fields.
func multipartUpload(t *testing.T, bucket, directory, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("bucket", bucket))
	require.NoError(t, mw.WriteField("directory", directory))
	require.NoError(t, mw.Close())

	return body, mw.FormDataContentType()
}

func TestUploadHandler_Success(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	h := NewHandler(newTestService(store, &fakeRepo{}), 0)

	body, contentType := multipartUpload(t, "b1", "d1", "cat.png", []byte("fake png bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/aws/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Message string  `json:"message"`
		Key     string  `json:"key"`
		URL     string  `json:"url"`
		Upload  *Record `json:"upload"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Upload successful", resp.Message)
	assert.Equal(t, "d1/cat.png", resp.Key)
	assert.Contains(t, resp.URL, "/d1/cat.png")
	require.NotNil(t, resp.Upload)
	assert.Equal(t, "cat.png", resp.Upload.FileName)
	assert.Contains(t, store.objects, "b1/d1/cat.png")
}

func TestUploadHandler_MissingFile(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestService(newFakeStore(), &fakeRepo{}), 0)

	req := httptest.NewRequest(http.MethodPost, "/api/aws/upload", strings.NewReader("bucket=b1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No file uploaded")
}

func TestUploadHandler_BucketNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestService(newFakeStore(), &fakeRepo{}), 0)

	body, contentType := multipartUpload(t, "forbidden", "d1", "cat.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/aws/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bucket is not allowed")
}

func TestUploadHandler_BodyTooLarge(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestService(newFakeStore(), &fakeRepo{}), 128)

	body, contentType := multipartUpload(t, "b1", "d1", "big.png", bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/aws/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistoryHandler(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := newTestService(newFakeStore(), repo)
	h := NewHandler(svc, 0)

	for _, name := range []string{"a.png", "b.png"} {
		_, err := svc.ResolveAndStore(context.Background(), pngInput("b1", "d1", name))
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/aws/history?limit=1", nil)
	rr := httptest.NewRecorder()
	h.History(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool           `json:"success"`
		Uploads []HistoryEntry `json:"uploads"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Uploads, 1)
	assert.Equal(t, "b.png", resp.Uploads[0].FileName)
}

func TestHistoryHandler_InvalidLimitFallsBack(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	h := NewHandler(newTestService(newFakeStore(), repo), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/aws/history?limit=abc", nil)
	rr := httptest.NewRecorder()
	h.History(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, repo.listLimit)
}

func TestDirectoriesHandler(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.objects["b1/d1/a.png"] = []byte("x")
	h := NewHandler(newTestService(store, &fakeRepo{}), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/aws/directories?bucket=b1", nil)
	rr := httptest.NewRecorder()
	h.Directories(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success     bool     `json:"success"`
		Directories []string `json:"directories"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"d1"}, resp.Directories)
}

func TestDirectoriesHandler_BucketNotAllowed(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.objects["nope/d1/a.png"] = []byte("x")
	h := NewHandler(newTestService(store, &fakeRepo{}), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/aws/directories?bucket=nope", nil)
	rr := httptest.NewRecorder()
	h.Directories(rr, req)

	// Rejected by the allow-list even though the bucket has contents.
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestLoginUploadHistoryFlow exercises the full request path over fakes:
// login sets the session cookie, the cookie authorizes an upload, and the
// history listing returns the stored record.
func TestLoginUploadHistoryFlow(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.JWTSecret = "flow-secret"
	cfg.AdminPassword = "hunter2"

	store := newFakeStore()
	svc := NewService(store, &fakeRepo{}, cfg)
	uploadHandler := NewHandler(svc, 0)
	authHandler := auth.NewHandler(auth.NewService(cfg), cfg)

	r := chi.NewRouter()
	r.Post("/api/auth/login", authHandler.Login)
	r.Route("/api/aws", func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.JWTSecret, cfg.AdminEmail))
		r.Post("/upload", uploadHandler.Upload)
		r.Get("/history", uploadHandler.History)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	// Unauthenticated upload is rejected.
	resp, err := http.Post(srv.URL+"/api/aws/upload", "multipart/form-data", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Login.
	resp, err = http.Post(srv.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "login must set the auth_token cookie")

	// Upload a 10KB PNG.
	body, contentType := multipartUpload(t, "b1", "d1", "pixel.png", bytes.Repeat([]byte{0x89}, 10*1024))
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/aws/upload", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(sessionCookie)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// History returns exactly that record.
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/aws/history?limit=1", nil)
	require.NoError(t, err)
	req.AddCookie(sessionCookie)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history struct {
		Success bool           `json:"success"`
		Uploads []HistoryEntry `json:"uploads"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history.Uploads, 1)
	assert.Equal(t, "pixel.png", history.Uploads[0].FileName)
	assert.Contains(t, history.Uploads[0].FileURL, "/d1/")
	assert.Equal(t, int64(10*1024), history.Uploads[0].FileSize)
}
