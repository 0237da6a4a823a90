package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/config"
	"github.com/pulse-social/api-go/models"
	"github.com/pulse-social/api-go/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the full router against an in-memory SQLite database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{}, &models.Follow{})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg)

	return r, db
}

func performJSON(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performForm(r http.Handler, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performMultipart(r http.Handler, method, path, token string, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, fileName)
		part.Write(fileContent)
	}
	writer.Close()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates a user and returns its id plus a bearer token.
func registerAndLogin(t *testing.T, r http.Handler, email, name, password string) (uint, string) {
	t.Helper()

	w := performJSON(r, http.MethodPost, "/api/register", "", gin.H{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userID := uint(decodeBody(t, w)["id"].(float64))

	w = performJSON(r, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decodeBody(t, w)["token"].(string)

	return userID, token
}

func createPost(t *testing.T, r http.Handler, token, content string) uint {
	t.Helper()

	w := performForm(r, http.MethodPost, "/api/posts", token, url.Values{"content": {content}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["id"].(float64))
}
