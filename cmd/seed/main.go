package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aerovent/aerovent-backend/config"
	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/db"
)

// Seeds a demo catalog: option groups, drones with configurators, EW systems,
// detectors and batteries. Intended for local development and staging.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	database, err := db.Initialize(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := seedOptions(database); err != nil {
		log.Fatal("Failed to seed options:", err)
	}
	if err := seedDrones(database); err != nil {
		log.Fatal("Failed to seed drones:", err)
	}
	if err := seedEWS(database); err != nil {
		log.Fatal("Failed to seed EW systems:", err)
	}
	if err := seedDetectors(database); err != nil {
		log.Fatal("Failed to seed detectors:", err)
	}
	if err := seedBatteries(database); err != nil {
		log.Fatal("Failed to seed batteries:", err)
	}

	fmt.Println("Seed completed.")
}

func seedOptions(database *gorm.DB) error {
	options := map[model.OptionGroupCode][]model.DroneOption{
		model.GroupReceiver: {
			{ID: 1, Label: "ELRS 915 МГц", Price: 0},
			{ID: 2, Label: "ELRS 2.4 ГГц", Price: 450},
			{ID: 3, Label: "Crossfire", Price: 1200},
		},
		model.GroupVTX: {
			{ID: 1, Label: "Analog 1.2 ГГц", Price: 0},
			{ID: 2, Label: "Analog 3.3 ГГц", Price: 600},
		},
		model.GroupCamera: {
			{ID: 1, Label: "Денна камера", Price: 0},
			{ID: 2, Label: "Нічна камера", Price: 2400},
		},
		model.GroupBattery: {
			{ID: 1, Label: "6S2P Li-Ion 8000 мАг", Price: 0},
			{ID: 2, Label: "6S3P Li-Ion 12000 мАг", Price: 1500},
		},
		model.GroupFiberSpool: {
			{ID: 1, Label: "Котушка 10 км", Price: 0},
			{ID: 2, Label: "Котушка 20 км", Price: 7000},
		},
	}

	for code, rows := range options {
		table := model.OptionTables[code]
		for _, row := range rows {
			if err := database.Table(table).Save(&row).Error; err != nil {
				return err
			}
		}
		fmt.Printf("Seeded %d rows into %s\n", len(rows), table)
	}
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func seedDrones(database *gorm.DB) error {
	now := time.Now()
	drones := []model.Drone{
		{
			ID:                  uuid.NewString(),
			Model:               "AV-7 Шершень",
			Price:               18500,
			ProductionStatus:    model.StatusInProduction,
			Size:                7,
			Application:         model.ApplicationKamikaze,
			Connection:          "radio",
			SpecsRange:          "15",
			FlightTime:          "18",
			MaxSpeed:            "140",
			Payload:             "2.5",
			Camera:              "analog",
			Description:         "Ударний FPV-дрон для роботи по броньованій техніці",
			MainImage:           "/images/av7.jpg",
			GalleryImages:       `["/images/av7.jpg","/images/av7_side.jpg"]`,
			CreatedAt:           now.Add(-48 * time.Hour),
			RxOptionIDs:         "[1,2,3]",
			RxDefaultID:         int64Ptr(1),
			VtxOptionIDs:        "[1,2]",
			VtxDefaultID:        int64Ptr(1),
			CameraOptionIDs:     "[1,2]",
			CameraDefaultID:     int64Ptr(1),
			BatteryOptionIDs:    "[1,2]",
			BatteryDefaultID:    int64Ptr(1),
			FiberSpoolOptionIDs: "",
		},
		{
			ID:                  uuid.NewString(),
			Model:               "AV-10 Оса",
			Price:               32000,
			ProductionStatus:    model.StatusInProduction,
			Size:                10,
			Application:         model.ApplicationKamikaze,
			Connection:          "fiber",
			SpecsRange:          "20",
			FlightTime:          "25",
			MaxSpeed:            "120",
			Payload:             "4",
			Description:         "Оптоволоконний ударний дрон, стійкий до засобів РЕБ",
			MainImage:           "/images/av10.jpg",
			GalleryImages:       `["/images/av10.jpg"]`,
			CreatedAt:           now.Add(-24 * time.Hour),
			RxOptionIDs:         "[1,2]",
			RxDefaultID:         int64Ptr(2),
			BatteryOptionIDs:    "[1,2]",
			BatteryDefaultID:    int64Ptr(2),
			FiberSpoolOptionIDs: "[1,2]",
			FiberSpoolDefaultID: int64Ptr(1),
		},
		{
			ID:               uuid.NewString(),
			Model:            "AV-R3 Крук",
			Price:            54000,
			ProductionStatus: model.StatusMadeToOrder,
			Size:             12,
			Application:      model.ApplicationRecon,
			Connection:       "radio",
			SpecsRange:       "40",
			FlightTime:       "55",
			Camera:           "thermal",
			Description:      "Розвідувальна платформа з тепловізійним каналом",
			MainImage:        "/images/avr3.jpg",
			CreatedAt:        now.Add(-12 * time.Hour),
			CameraOptionIDs:  "[1,2]",
			CameraDefaultID:  int64Ptr(2),
		},
	}

	for i := range drones {
		if err := database.Create(&drones[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d drones\n", len(drones))
	return nil
}

func seedEWS(database *gorm.DB) error {
	now := time.Now()
	systems := []model.EWS{
		{
			ID:               uuid.NewString(),
			Model:            "Купол-М",
			Price:            240000,
			ProductionStatus: model.StatusInProduction,
			Description:      "Купольна система придушення FPV-каналів",
			MainImage:        "/images/kupol.jpg",
			GalleryImages:    `["/images/kupol.jpg"]`,
			CreatedAt:        now.Add(-72 * time.Hour),
		},
		{
			ID:               uuid.NewString(),
			Model:            "Бар'єр-900",
			Price:            95000,
			ProductionStatus: model.StatusInProduction,
			Description:      "Окопний засіб РЕБ діапазону 900 МГц",
			MainImage:        "/images/barier.jpg",
			CreatedAt:        now.Add(-36 * time.Hour),
		},
	}

	for i := range systems {
		if err := database.Create(&systems[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d EW systems\n", len(systems))
	return nil
}

func seedDetectors(database *gorm.DB) error {
	detectors := []model.DroneDetector{
		{
			ID:               uuid.NewString(),
			Model:            "Сокіл-Д",
			Price:            38000,
			ProductionStatus: model.StatusInProduction,
			Description:      "Портативний детектор FPV-дронів 100 МГц - 6 ГГц",
			MainImage:        "/images/sokil.jpg",
			CreatedAt:        time.Now().Add(-60 * time.Hour),
		},
	}

	for i := range detectors {
		if err := database.Create(&detectors[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d detectors\n", len(detectors))
	return nil
}

func seedBatteries(database *gorm.DB) error {
	batteries := []model.Battery{
		{
			ID:                uuid.NewString(),
			Model:             "AV 6S2P",
			Price:             4200,
			Manufacturer:      "Molicel",
			BatteryType:       "Li-Ion",
			Configuration:     "6S2P",
			FullConfiguration: "6S2P P42A",
			Capacity:          8400,
			Description:       "Збірка для 7-10 дюймових дронів",
			MainImage:         "/images/bat6s2p.jpg",
			CreatedAt:         time.Now().Add(-30 * time.Hour),
		},
		{
			ID:            uuid.NewString(),
			Model:         "AV 6S3P",
			Price:         6100,
			Manufacturer:  "Molicel",
			BatteryType:   "Li-Ion",
			Configuration: "6S3P",
			Capacity:      12600,
			Description:   "Збірка підвищеної ємності для далеких вильотів",
			MainImage:     "/images/bat6s3p.jpg",
			CreatedAt:     time.Now().Add(-20 * time.Hour),
		},
	}

	for i := range batteries {
		if err := database.Create(&batteries[i]).Error; err != nil {
			return err
		}
	}
	fmt.Printf("Seeded %d batteries\n", len(batteries))
	return nil
}
