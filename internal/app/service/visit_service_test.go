package service

import (
	"testing"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVisitServiceTest(t *testing.T) (*gorm.DB, VisitService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewVisitService(repository.NewVisitRepository(testDB))
}

func TestVisitService_Track(t *testing.T) {
	testDB, visitService := setupVisitServiceTest(t)

	require.NoError(t, visitService.Track("session_start", "visitor-1"))
	require.NoError(t, visitService.Track("session_start", "visitor-1"))

	var visit model.SiteVisit
	require.NoError(t, testDB.First(&visit, "visitor_id = ?", "visitor-1").Error)
	assert.Equal(t, int64(2), visit.VisitCount)
}

func TestVisitService_Track_IgnoredEvents(t *testing.T) {
	testDB, visitService := setupVisitServiceTest(t)

	err := visitService.Track("page_view", "visitor-1")
	assert.ErrorIs(t, err, ErrIgnoredEventType)

	// Nothing persisted for non session_start events
	var count int64
	require.NoError(t, testDB.Model(&model.SiteVisit{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestVisitService_Track_MissingFields(t *testing.T) {
	_, visitService := setupVisitServiceTest(t)

	assert.ErrorIs(t, visitService.Track("", "visitor-1"), ErrMissingFields)
	assert.ErrorIs(t, visitService.Track("session_start", "  "), ErrMissingFields)
}
