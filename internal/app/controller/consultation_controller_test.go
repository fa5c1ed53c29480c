package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	"github.com/aerovent/aerovent-backend/internal/db"
)

func setupConsultationTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	consultationService := service.NewConsultationService(repository.NewConsultationRepository(testDB))
	ctrl := NewConsultationController(consultationService)

	engine := gin.New()
	engine.POST("/consultation", ctrl.Submit)
	return testDB, engine
}

func postJSON(engine *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestConsultationController_Submit(t *testing.T) {
	testDB, engine := setupConsultationTest(t)

	w := postJSON(engine, "/consultation",
		`{"name":"Олег","phone":"+380 50 123 45 67","question":"Терміни постачання?","contactMethod":"viber"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "new", body.Data.Status)

	var stored model.ConsultationRequest
	require.NoError(t, testDB.First(&stored, body.Data.ID).Error)
	assert.Equal(t, "+380501234567", stored.Phone)
}

func TestConsultationController_ValidationMessages(t *testing.T) {
	_, engine := setupConsultationTest(t)

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "Missing fields",
			payload: `{"name":"","phone":"+380501234567","question":"q","contactMethod":"phone"}`,
			wantMsg: "Заповніть усі обовʼязкові поля",
		},
		{
			name:    "Bad phone",
			payload: `{"name":"Олег","phone":"0501234567","question":"q","contactMethod":"phone"}`,
			wantMsg: "Невірний формат телефону. Приклад: +380XXXXXXXXX",
		},
		{
			name:    "Bad contact method",
			payload: `{"name":"Олег","phone":"+380501234567","question":"q","contactMethod":"email"}`,
			wantMsg: "Невірний спосіб звʼязку",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(engine, "/consultation", tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}
