package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gangasingh/uniconnect-backend/config"
	"github.com/gangasingh/uniconnect-backend/models"
	"github.com/gangasingh/uniconnect-backend/routes"
)

type fakeFileStore struct {
	uploaded   []string
	deleted    []string
	failUpload bool
}

func (f *fakeFileStore) Upload(fileHeader *multipart.FileHeader, fileID string) (string, string, error) {
	if f.failUpload {
		return "", "", fmt.Errorf("storage unavailable")
	}
	f.uploaded = append(f.uploaded, fileID)
	objectPath := "documents/" + fileID + filepath.Ext(fileHeader.Filename)
	return "https://files.test/storage/v1/object/public/uploads/" + objectPath, objectPath, nil
}

func (f *fakeFileStore) Delete(publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return nil
}

// setupServer wires the real router against an in-memory database. The auth
// middleware reads config.DB, so that is pointed at the test database too.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB, *fakeFileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAILS", "admin@uniconnect.dev")
	config.LoadAdminEmails()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	files := &fakeFileStore{}
	r := routes.SetupRouter(gin.New(), db, files)
	return r, db, files
}

func perform(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func registerBody(email, roll string) gin.H {
	return gin.H{
		"first_name":  "Ganga",
		"last_name":   "Singh",
		"email":       email,
		"password":    "secret123",
		"course_name": "Btech",
		"section":     "A",
		"semester":    "3",
		"roll_number": roll,
	}
}

// registerUser drives the real register endpoint and returns the token and
// created user.
func registerUser(t *testing.T, r *gin.Engine, email, roll string) authResponse {
	t.Helper()
	rec := perform(t, r, http.MethodPost, "/api/v1/auth/student/register", "", registerBody(email, roll))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func registerAdmin(t *testing.T, r *gin.Engine) authResponse {
	t.Helper()
	resp := registerUser(t, r, "admin@uniconnect.dev", "ADM-00001")
	require.Equal(t, models.RoleAdmin, resp.User.Role)
	return resp
}
