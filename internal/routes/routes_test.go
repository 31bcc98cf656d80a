package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/barber-manager/internal/db"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/statscache"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, db, statscache.NewMemory(), nil)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAppointmentEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	// preço vem da tabela semeada no migrate
	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"name":      "Ali",
		"operation": "Corte",
		"date":      "2030-01-10",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 45.0, created.Price)
	assert.Equal(t, "pending", created.Status)

	// slot sobreposto responde 409 com o conflito identificado
	w = doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"name":      "Veli",
		"operation": "Corte",
		"date":      "2030-01-10",
		"time":      "10:15",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "time_conflict")

	w = doJSON(t, r, http.MethodGet, "/api/appointments/by-date?date=2030-01-10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestCompleteEndpointIsIdempotent(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", gin.H{
		"name":      "Ali",
		"operation": "Barba",
		"date":      "2024-01-10",
		"time":      "14:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/appointments/1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"promoted":true`)

	w = doJSON(t, r, http.MethodPatch, "/api/appointments/1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"promoted":false`)

	var count int64
	db.Model(&models.CompletedAppointment{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = doJSON(t, r, http.MethodGet, "/api/history?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "Ali")

	w = doJSON(t, r, http.MethodGet, "/api/history?start=2024-01-01&end=2024-01-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = doJSON(t, r, http.MethodGet, "/api/history", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPriceEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/prices", gin.H{
		"name":  "Luzes",
		"price": 120.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/prices", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Luzes")
}

func TestStatsEndpointsAlwaysAnswer(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{
		"/api/stats/daily",
		"/api/stats/weekly",
		"/api/stats/monthly",
		"/api/stats/weekly/breakdown",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	// sem histórico o agregado responde zero, nunca erro
	w := doJSON(t, r, http.MethodGet, "/api/stats/monthly", nil)
	assert.Contains(t, w.Body.String(), `"earnings":0`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
