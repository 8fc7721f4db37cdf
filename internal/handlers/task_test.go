package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, env *testEnv, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestTaskRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/v1/tasks"},
		{"GET", "/api/v1/tasks/1"},
		{"POST", "/api/v1/tasks/1/complete"},
		{"DELETE", "/api/v1/tasks/1"},
		{"GET", "/api/v1/devices"},
	} {
		w := doJSON(t, env, route.method, route.path, "", "")
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.seedSession(t, "alice")
	_, bobToken := env.seedSession(t, "bob")

	// Create a device, then a task under it.
	w := doJSON(t, env, "POST", "/api/v1/devices", aliceToken, `{"name":"Washer"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	deviceID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, env, "POST", fmt.Sprintf("/api/v1/devices/%d/tasks", deviceID), aliceToken,
		`{"name":"Descale","interval_days":90}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	taskID := uint(created["id"].(float64))

	// A fresh task is overdue by definition.
	assert.Equal(t, false, created["is_completed"])
	assert.Equal(t, true, created["is_overdue"])
	assert.Equal(t, "overdue", created["due_status"])

	t.Run("interval below one is a validation error", func(t *testing.T) {
		w := doJSON(t, env, "POST", fmt.Sprintf("/api/v1/devices/%d/tasks", deviceID), aliceToken,
			`{"name":"Descale","interval_days":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign user sees 404, not 403", func(t *testing.T) {
		w := doJSON(t, env, "GET", fmt.Sprintf("/api/v1/tasks/%d", taskID), bobToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, env, "POST", fmt.Sprintf("/api/v1/tasks/%d/complete", taskID), bobToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("complete records the acting session", func(t *testing.T) {
		w := doJSON(t, env, "POST", fmt.Sprintf("/api/v1/tasks/%d/complete", taskID), aliceToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)

		assert.Equal(t, true, data["is_completed"])
		assert.NotNil(t, data["last_completed"])
		assert.Equal(t, float64(alice.ID), data["completed_by"])
		assert.Equal(t, "alice", data["completed_by_username"])
		assert.NotEqual(t, "overdue", data["due_status"])
	})

	t.Run("completion survives an account rename", func(t *testing.T) {
		w := doJSON(t, env, "PATCH", "/api/v1/account", aliceToken, `{"username":"alexandra"}`)
		require.Equal(t, http.StatusOK, w.Code)

		task, err := env.store.GetTask(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, "alice", task.CompletedByUsername)
	})

	t.Run("delete removes the task for good", func(t *testing.T) {
		w := doJSON(t, env, "DELETE", fmt.Sprintf("/api/v1/tasks/%d", taskID), aliceToken, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, env, "GET", fmt.Sprintf("/api/v1/tasks/%d", taskID), aliceToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeviceDeleteCascadesOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedSession(t, "alice")

	w := doJSON(t, env, "POST", "/api/v1/devices", token, `{"name":"Washer"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	deviceID := uint(decodeData(t, w)["id"].(float64))

	w = doJSON(t, env, "POST", fmt.Sprintf("/api/v1/devices/%d/tasks", deviceID), token,
		`{"name":"Descale","interval_days":90}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env, "POST", fmt.Sprintf("/api/v1/devices/%d/consumables", deviceID), token,
		`{"name":"Detergent","cost":7.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env, "DELETE", fmt.Sprintf("/api/v1/devices/%d", deviceID), token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	ctx := context.Background()
	device, err := env.store.GetDevice(ctx, deviceID)
	require.NoError(t, err)
	assert.Nil(t, device)

	tasks, err := env.store.GetTasksByDevice(ctx, deviceID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	consumables, err := env.store.GetConsumablesByDevice(ctx, deviceID)
	require.NoError(t, err)
	assert.Empty(t, consumables)
}
