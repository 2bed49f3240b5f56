package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkpress-dev/inkpress/db"
	"github.com/inkpress-dev/inkpress/internal/auth"
	"github.com/inkpress-dev/inkpress/internal/models"
	"github.com/inkpress-dev/inkpress/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "inkpress_test_jwt_secret_key_1234567890"

var testDBCounter int64

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", testJWTSecret)
	if err := auth.InitJWTSecret(); err != nil {
		fmt.Fprintf(os.Stderr, "InitJWTSecret: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(gin.TestMode)
	code := m.Run()
	os.Exit(code)
}

// setupTestDB swaps the package-global DB handle for a fresh in-memory
// SQLite database and restores the previous handle on cleanup. Each test
// gets its own named shared-cache database so parallel connections in the
// pool see the same data.
func setupTestDB(t *testing.T) func() {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:inkpress_test_%d?mode=memory&cache=shared", n)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	previousDB := db.DB
	db.DB = gdb

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("MigrateDatabase: %v", err)
	}

	cleanup := func() {
		db.DB = previousDB
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return cleanup
}

func newTestRouter() *gin.Engine {
	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// registerUser creates an account through the public endpoint and returns
// the session token from the Set-Cookie header. The first account created
// against a fresh database is the admin.
func registerUser(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()

	resp := doRequest(t, r, http.MethodPost, "/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")

	mustStatus(t, resp.Code, http.StatusCreated)

	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			return cookie.Value
		}
	}

	t.Fatalf("expected a token cookie after registration")
	return ""
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	if err := db.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func dbFirstPost(out *models.Post, id uint) error {
	return db.DB.Where("id = ?", id).First(out).Error
}

func mustStatus(t *testing.T, actual int, expected int) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}
