package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentmanagement/internal/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, seedEnabled bool) http.Handler {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Server.Mode = "production"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "students.db")
	cfg.Database.RetryMaxAttempts = 1
	cfg.Seed.Enabled = seedEnabled

	ctx := context.Background()
	database, err := SetupDatabase(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	deps, err := BuildDependencies(ctx, cfg, NewRepositories(cfg, database), zerolog.Nop())
	require.NoError(t, err)

	return SetupRouter(cfg, deps, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestStudentSubjectFlowOverHTTP(t *testing.T) {
	h := newTestServer(t, false)

	status, env := do(t, h, http.MethodPost, "/api/student/123456789",
		`{"code":"STU001","names":"Juan","lastnames":"Pérez","birthDate":"2000-01-01T00:00:00Z","age":23,"email":"juan.perez@example.com","logDetails":"signup"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Student registered/updated successfully.", env.Message)

	var student map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &student))
	assert.Equal(t, "123456789", student["id"])
	assert.True(t, strings.HasPrefix(student["logDetails"].(string), "Created on"))

	status, env = do(t, h, http.MethodPost, "/api/subject/add/123456789", `{"code":"MAT001","name":"Mathematics"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Subject added successfully.", env.Message)

	var subject map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &subject))
	assert.Equal(t, "123456789", subject["studentId"])

	status, env = do(t, h, http.MethodGet, "/api/subject/byStudentCode/STU001", "")
	require.Equal(t, http.StatusOK, status)

	var subjects []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &subjects))
	require.Len(t, subjects, 1)
	assert.Equal(t, "MAT001", subjects[0]["code"])
}

func TestCalendarBirthDateOverHTTP(t *testing.T) {
	h := newTestServer(t, false)

	status, env := do(t, h, http.MethodPost, "/api/student/987654321",
		`{"code":"STU002","names":"María","birthDate":"2001-05-15","email":"maria@example.com"}`)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = do(t, h, http.MethodGet, "/api/student/987654321", "")
	require.Equal(t, http.StatusOK, status)

	var student map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &student))
	assert.Equal(t, "2001-05-15T00:00:00Z", student["birthDate"])

	status, env = do(t, h, http.MethodPost, "/api/student/987654321", `{"code":"STU002","birthDate":"15/05/2001"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Invalid request body")
}

func TestErrorStatusesOverHTTP(t *testing.T) {
	h := newTestServer(t, false)

	status, env := do(t, h, http.MethodGet, "/api/student/000000000", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Student not found.", env.Message)

	status, env = do(t, h, http.MethodPost, "/api/student/123456789", `{"code":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student code is required.", env.Message)

	status, _ = do(t, h, http.MethodPost, "/api/student/123456789", `{"code":`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, h, http.MethodPost, "/api/subject/add/000000000", `{"code":"MAT001"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, h, http.MethodGet, "/api/subject/byStudentCode/STU404", "")
	assert.Equal(t, http.StatusNotFound, status)

	_, _ = do(t, h, http.MethodPost, "/api/student/1", `{"code":"STU001","email":"a@example.com"}`)
	status, env = do(t, h, http.MethodPost, "/api/student/2", `{"code":"STU001","email":"b@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "A student with the same code already exists.", env.Message)

	status, env = do(t, h, http.MethodPost, "/api/student/3", `{"code":"STU003","email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "A student with the same email already exists.", env.Message)
}

func TestSeededDataIsServed(t *testing.T) {
	h := newTestServer(t, true)

	status, env := do(t, h, http.MethodGet, "/api/student", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Students retrieved successfully.", env.Message)

	var students []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &students))
	assert.Len(t, students, 5)

	status, env = do(t, h, http.MethodGet, "/api/subject/byStudentCode/STU001", "")
	require.Equal(t, http.StatusOK, status)

	var subjects []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &subjects))
	assert.Len(t, subjects, 5)
}
