package repository

import (
	"database/sql"
	"time"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitRepository interface {
	RecordVisit(visitorID string, seenAt time.Time) error
	TotalVisits() (int64, error)
	UniqueVisitors() (int64, error)
}

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

// RecordVisit upserts the visitor row in a single statement so concurrent
// beacons from the same visitor never race into duplicate rows.
func (r *visitRepository) RecordVisit(visitorID string, seenAt time.Time) error {
	visit := model.SiteVisit{
		VisitorID:  visitorID,
		FirstSeen:  seenAt,
		LastSeen:   seenAt,
		VisitCount: 1,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "visitor_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_seen":   seenAt,
			"visit_count": gorm.Expr("visit_count + 1"),
		}),
	}).Create(&visit).Error
	if err != nil {
		logger.Error("Failed to record site visit", err, map[string]interface{}{
			"visitor_id": visitorID,
		})
		return err
	}
	return nil
}

func (r *visitRepository) TotalVisits() (int64, error) {
	var total sql.NullInt64
	row := r.db.Model(&model.SiteVisit{}).Select("SUM(visit_count)").Row()
	if err := row.Scan(&total); err != nil {
		logger.Error("Failed to sum site visits", err, nil)
		return 0, err
	}
	return total.Int64, nil
}

func (r *visitRepository) UniqueVisitors() (int64, error) {
	var count int64
	if err := r.db.Model(&model.SiteVisit{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count unique visitors", err, nil)
		return 0, err
	}
	return count, nil
}
