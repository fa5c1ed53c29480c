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

func setupDroneServiceTest(t *testing.T) (*gorm.DB, DroneService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	droneRepo := repository.NewDroneRepository(testDB)
	optionRepo := repository.NewOptionRepository(testDB)
	return testDB, NewDroneService(droneRepo, optionRepo)
}

func seedServiceOption(t *testing.T, testDB *gorm.DB, table string, id int64, label string, price float64) {
	require.NoError(t, testDB.Table(table).Create(&model.DroneOption{ID: id, Label: label, Price: price}).Error)
}

func i64(v int64) *int64 { return &v }

func seedConfigurableDrone(t *testing.T, testDB *gorm.DB) string {
	seedServiceOption(t, testDB, "rx_options", 1, "ELRS 915", 0)
	seedServiceOption(t, testDB, "rx_options", 2, "Crossfire", 1200)
	seedServiceOption(t, testDB, "camera_options", 5, "Нічна камера", 2400)

	drone := &model.Drone{
		ID:               "cfg-1",
		Model:            "AV-7",
		Price:            10000,
		ProductionStatus: model.StatusInProduction,
		Application:      model.ApplicationKamikaze,
		Connection:       "radio",
		Size:             7,
		GalleryImages:    `["/a.jpg"]`,
		RxOptionIDs:      "[2,1]",
		RxDefaultID:      i64(1),
		CameraOptionIDs:  "[5]",
		CreatedAt:        time.Now(),
	}
	require.NoError(t, testDB.Create(drone).Error)
	return drone.ID
}

func TestDroneService_GetByID(t *testing.T) {
	testDB, droneService := setupDroneServiceTest(t)
	id := seedConfigurableDrone(t, testDB)

	detail, err := droneService.GetByID(id)
	require.NoError(t, err)

	assert.Equal(t, []string{"/a.jpg"}, detail.GalleryList)
	require.Len(t, detail.OptionGroups, 2)

	// Groups come back in presentation order, options in stored order
	rx := detail.OptionGroups[0]
	assert.Equal(t, model.GroupReceiver, rx.Code)
	require.Len(t, rx.Options, 2)
	assert.Equal(t, int64(2), rx.Options[0].ID)
	assert.False(t, rx.Options[0].IsDefault)
	assert.True(t, rx.Options[1].IsDefault)

	camera := detail.OptionGroups[1]
	assert.Equal(t, model.GroupCamera, camera.Code)
	require.Len(t, camera.Options, 1)
	// No default id recorded: nothing is marked, selection falls back to
	// the first option
	assert.False(t, camera.Options[0].IsDefault)

	// Default config: base 10000 + rx default 0 + camera fallback 2400
	assert.Equal(t, 12400.0, detail.TotalPrice)
}

func TestDroneService_GetByID_NotFound(t *testing.T) {
	_, droneService := setupDroneServiceTest(t)

	detail, err := droneService.GetByID("missing")
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDroneService_Quote(t *testing.T) {
	testDB, droneService := setupDroneServiceTest(t)
	id := seedConfigurableDrone(t, testDB)

	quote, err := droneService.Quote(id, QuoteRequest{
		Selections: map[model.OptionGroupCode]int64{
			model.GroupReceiver: 2,
		},
	})
	require.NoError(t, err)

	// Base 10000 + Crossfire 1200 + camera fallback 2400
	assert.Equal(t, 13600.0, quote.TotalPrice)
	assert.Equal(t, 10000.0, quote.BasePrice)
	assert.Contains(t, quote.Message, "Дрон: AV-7")
	// Amounts group thousands with a non-breaking space, like uk-UA locale
	// formatting
	assert.Contains(t, quote.Message, "Приймач: Crossfire (+1\u00a0200 грн)")
	assert.Contains(t, quote.Message, "Разом: 13\u00a0600 грн")
}

func TestDroneService_Quote_InvalidOption(t *testing.T) {
	testDB, droneService := setupDroneServiceTest(t)
	id := seedConfigurableDrone(t, testDB)

	_, err := droneService.Quote(id, QuoteRequest{
		Selections: map[model.OptionGroupCode]int64{
			model.GroupReceiver: 999,
		},
	})
	assert.ErrorIs(t, err, ErrInvalidOption)

	// An option id from another group is not transferable
	_, err = droneService.Quote(id, QuoteRequest{
		Selections: map[model.OptionGroupCode]int64{
			model.GroupBattery: 1,
		},
	})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestDroneService_List(t *testing.T) {
	testDB, droneService := setupDroneServiceTest(t)
	seedConfigurableDrone(t, testDB)

	result, err := droneService.List(context.Background(), repository.DroneFilter{Limit: 12})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)

	// Listed price is the display price: base plus marked defaults
	assert.Equal(t, 10000.0, result.Items[0].Price)
	assert.Equal(t, []string{"/a.jpg"}, result.Items[0].GalleryList)
	assert.Equal(t, []string{"kamikaze"}, result.Domain.Applications)
}
