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
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
	"github.com/oksasatya/go-todo-api/pkg/helpers"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

type testServer struct {
	engine *gin.Engine
	todos  *memory.TodoRepository
	users  *memory.UserRepository
	now    time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := helpers.NewDiscardLogger()
	ts := &testServer{
		engine: gin.New(),
		todos:  memory.NewTodoRepository(),
		users:  memory.NewUserRepository(),
		now:    time.UnixMilli(1700000000123),
	}

	todoSvc := application.NewTodoService(ts.todos, logger)
	todoSvc.Now = func() time.Time { return ts.now }
	userSvc := application.NewUserService(ts.users, helpers.NewJWTManager("test-secret", time.Hour), nil, logger, bcrypt.MinCost, 0)

	th := NewTodoHandler(todoSvc, logger)
	uh := NewUserHandler(userSvc, logger)

	r := ts.engine
	r.Use(middleware.RequestIDMiddleware())
	r.POST("/todos", th.Create)
	r.GET("/todos", th.List)
	r.GET("/todos/:id", th.Get)
	r.PATCH("/todos/:id", th.Update)
	r.DELETE("/todos/:id", th.Delete)
	r.POST("/users", uh.Signup)
	r.POST("/users/login", uh.Login)
	me := r.Group("/users/me", middleware.Auth(userSvc, logger))
	me.GET("", uh.Me)
	me.DELETE("/token", uh.Logout)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// createTodo posts text and returns the new todo's id.
func (ts *testServer) createTodo(t *testing.T, text string) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/todos", `{"text":`+quote(text)+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)["id"].(string)
}

// signup registers a user and returns its id and auth token.
func (ts *testServer) signup(t *testing.T, email, password string) (string, string) {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/users", `{"email":`+quote(email)+`,"password":`+quote(password)+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)["id"].(string), rec.Header().Get(middleware.AuthHeader)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
