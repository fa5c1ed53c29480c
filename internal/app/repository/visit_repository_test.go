package repository

import (
	"testing"
	"time"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVisitRepoTest(t *testing.T) (*gorm.DB, VisitRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewVisitRepository(testDB)
}

func TestVisitRepository_RecordVisitUpserts(t *testing.T) {
	testDB, repo := setupVisitRepoTest(t)

	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, repo.RecordVisit("visitor-1", first))
	require.NoError(t, repo.RecordVisit("visitor-1", second))
	require.NoError(t, repo.RecordVisit("visitor-2", second))

	// Repeat beacons never create duplicate rows
	var count int64
	require.NoError(t, testDB.Model(&model.SiteVisit{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var visit model.SiteVisit
	require.NoError(t, testDB.First(&visit, "visitor_id = ?", "visitor-1").Error)
	assert.Equal(t, int64(2), visit.VisitCount)
	assert.Equal(t, first.Unix(), visit.FirstSeen.Unix())
	assert.Equal(t, second.Unix(), visit.LastSeen.Unix())
}

func TestVisitRepository_Counts(t *testing.T) {
	_, repo := setupVisitRepoTest(t)

	now := time.Now().UTC()

	total, err := repo.TotalVisits()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, repo.RecordVisit("a", now))
	require.NoError(t, repo.RecordVisit("a", now))
	require.NoError(t, repo.RecordVisit("a", now))
	require.NoError(t, repo.RecordVisit("b", now))

	unique, err := repo.UniqueVisitors()
	require.NoError(t, err)
	assert.Equal(t, int64(2), unique)

	total, err = repo.TotalVisits()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
