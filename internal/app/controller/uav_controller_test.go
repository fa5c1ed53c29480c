package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	"github.com/aerovent/aerovent-backend/internal/db"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

func setupUAVTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	droneRepo := repository.NewDroneRepository(testDB)
	optionRepo := repository.NewOptionRepository(testDB)
	droneService := service.NewDroneService(droneRepo, optionRepo)
	ctrl := NewUAVController(droneService)

	engine := gin.New()
	cached := middleware.CacheControl(300, 600)
	engine.GET("/uav", cached, ctrl.List)
	engine.GET("/uav/:id", cached, ctrl.Detail)
	engine.POST("/uav/:id/quote", ctrl.Quote)
	return testDB, engine
}

func seedDrones(t *testing.T, testDB *gorm.DB, n int) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		drone := model.Drone{
			ID:               fmt.Sprintf("drone-%02d", i),
			Model:            fmt.Sprintf("AV-%d", i),
			Price:            float64(1000 * (i + 1)),
			ProductionStatus: model.StatusInProduction,
			Application:      model.ApplicationKamikaze,
			Connection:       "radio",
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, testDB.Create(&drone).Error)
	}
}

type listEnvelope struct {
	Success    bool                       `json:"success"`
	Data       []map[string]interface{}   `json:"data"`
	Pagination Pagination                 `json:"pagination"`
	Filters    map[string]json.RawMessage `json:"filters"`
}

func TestUAVController_ListPagination(t *testing.T) {
	testDB, engine := setupUAVTest(t)
	seedDrones(t, testDB, 25)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uav?page=2&limit=10", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, s-maxage=300, stale-while-revalidate=600", w.Header().Get("Cache-Control"))

	var body listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 10)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3}, body.Pagination)

	// Newest first: page 2 starts at the 11th newest record
	assert.Equal(t, "drone-14", body.Data[0]["id"])

	// The filter domain rides along with every listing
	assert.Contains(t, body.Filters, "applications")
	assert.Contains(t, body.Filters, "priceRange")
}

func TestUAVController_ListLenientParams(t *testing.T) {
	testDB, engine := setupUAVTest(t)
	seedDrones(t, testDB, 3)

	// Unparsable paging and numeric filters fall back to defaults instead
	// of erroring
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uav?page=abc&limit=-5&minPrice=cheap", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, defaultLimit, body.Pagination.Limit)
	assert.Len(t, body.Data, 3)
}

func TestUAVController_DetailNotFound(t *testing.T) {
	_, engine := setupUAVTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uav/missing", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Дрон не знайдено", body["error"])
}

func TestUAVController_Detail(t *testing.T) {
	testDB, engine := setupUAVTest(t)
	seedDrones(t, testDB, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uav/drone-00", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID      string                   `json:"id"`
			Gallery []string                 `json:"gallery"`
			Similar []map[string]interface{} `json:"similar"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "drone-00", body.Data.ID)
	require.Len(t, body.Data.Similar, 1)
	assert.Equal(t, "drone-01", body.Data.Similar[0]["id"])
}

func TestUAVController_QuoteInvalidOption(t *testing.T) {
	testDB, engine := setupUAVTest(t)
	seedDrones(t, testDB, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/uav/drone-00/quote",
		strings.NewReader(`{"selections":{"rx":42}}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
