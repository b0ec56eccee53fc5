package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookapi/models"
	"bookapi/store"
	"bookapi/utils"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	router *gin.Engine
	books  *store.MemoryBookStore
	users  *store.MemoryUserStore
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	books := store.NewMemoryBookStore()
	users := store.NewMemoryUserStore()
	h := New(books, users, testSecret, time.Hour)
	return &testEnv{
		router: SetupRouter(h),
		books:  books,
		users:  users,
	}
}

// token issues an access token for a synthetic account without going
// through the login flow.
func (e *testEnv) token(t *testing.T, role, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(&models.User{
		ID:       primitive.NewObjectID(),
		Username: "tester",
		Email:    email,
		Role:     role,
	}, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createBook inserts a book through the API and returns its id.
func (e *testEnv) createBook(t *testing.T, input models.BookInput) models.Book {
	t.Helper()
	w := e.request(t, http.MethodPost, "/books", e.token(t, models.RoleAdmin, "admin@x.com"), input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var book models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	return book
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
