package service

import (
	"context"
	"testing"
	"time"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*gorm.DB, ProductService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return testDB, NewProductService(
		repository.NewDroneRepository(testDB),
		repository.NewEWSRepository(testDB),
		repository.NewDetectorRepository(testDB),
		repository.NewCatalogRepository(testDB),
		repository.NewVisitRepository(testDB),
	)
}

func TestProductService_Showcase(t *testing.T) {
	testDB, productService := setupProductServiceTest(t)

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, testDB.Create(&model.Drone{
		ID: "d1", Model: "AV-7", Price: 100, MainImage: "/d.jpg",
		ProductionStatus: model.StatusInProduction, CreatedAt: base.Add(time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.EWS{
		ID: "e1", Model: "Купол", Price: 200, MainImage: "/e.jpg",
		ProductionStatus: model.StatusInProduction, CreatedAt: base.Add(2 * time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.DroneDetector{
		ID: "t1", Model: "Сокіл", Price: 300, MainImage: "/t.jpg",
		ProductionStatus: model.StatusInProduction, CreatedAt: base,
	}).Error)
	// Hidden: no image
	require.NoError(t, testDB.Create(&model.Drone{
		ID: "d2", Model: "AV-8", Price: 100,
		ProductionStatus: model.StatusInProduction, CreatedAt: base.Add(3 * time.Hour),
	}).Error)

	items, err := productService.Showcase("", 12)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Merged across families, newest first
	assert.Equal(t, "e1", items[0].ID)
	assert.Equal(t, "ews", items[0].Type)
	assert.Equal(t, "/electronic_warfare_systems/e1", items[0].URL)
	assert.Equal(t, "d1", items[1].ID)
	assert.Equal(t, "/uav/d1", items[1].URL)
	assert.Equal(t, "t1", items[2].ID)

	capped, err := productService.Showcase("", 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)

	dronesOnly, err := productService.Showcase("drone", 12)
	require.NoError(t, err)
	require.Len(t, dronesOnly, 1)
	assert.Equal(t, "d1", dronesOnly[0].ID)
}

func TestProductService_Stats(t *testing.T) {
	testDB, productService := setupProductServiceTest(t)

	now := time.Now()
	require.NoError(t, testDB.Create(&model.Drone{
		ID: "d1", Model: "AV-7", Price: 100,
		Application: model.ApplicationKamikaze, ProductionStatus: model.StatusInProduction, CreatedAt: now,
	}).Error)
	require.NoError(t, testDB.Create(&model.Drone{
		ID: "d2", Model: "AV-8", Price: 300,
		Application: model.ApplicationRecon, ProductionStatus: model.StatusInProduction, CreatedAt: now,
	}).Error)
	require.NoError(t, testDB.Create(&model.Drone{
		ID: "d3", Model: "AV-9", Price: 900,
		Application: model.ApplicationRecon, ProductionStatus: model.StatusDiscontinued, CreatedAt: now,
	}).Error)
	require.NoError(t, testDB.Create(&model.EWS{
		ID: "e1", Model: "Купол", Price: 500,
		ProductionStatus: model.StatusInProduction, CreatedAt: now,
	}).Error)
	require.NoError(t, testDB.Create(&model.Battery{
		ID: "b1", Model: "6S2P", Price: 50, CreatedAt: now,
	}).Error)

	visitRepo := repository.NewVisitRepository(testDB)
	require.NoError(t, visitRepo.RecordVisit("v1", now))
	require.NoError(t, visitRepo.RecordVisit("v1", now))
	require.NoError(t, visitRepo.RecordVisit("v2", now))

	stats, err := productService.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Drones.Total)
	assert.Equal(t, int64(2), stats.Drones.Active)
	assert.Equal(t, 200.0, stats.Drones.AvgPrice)
	assert.Equal(t, int64(1), stats.EWS.Active)
	// Batteries have no production status, so every row is active
	assert.Equal(t, int64(1), stats.Batteries.Total)
	assert.Equal(t, int64(1), stats.Batteries.Active)
	assert.Equal(t, int64(2), stats.UniqueApplications)
	assert.Equal(t, int64(2), stats.Visits.UniqueVisitors)
	assert.Equal(t, int64(3), stats.Visits.TotalVisits)
}
