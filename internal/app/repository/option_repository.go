package repository

import (
	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

// OptionRepository reads drone add-on options out of the per-group tables
// (rx_options, vtx_options and so on).
type OptionRepository interface {
	FindByIDs(table string, ids []int64) ([]model.DroneOption, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

// FindByIDs fetches the named options and returns them in the order the ids
// were given. Ids with no matching row are silently dropped.
func (r *optionRepository) FindByIDs(table string, ids []int64) ([]model.DroneOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var options []model.DroneOption
	if err := r.db.Table(table).Where("id IN ?", ids).Find(&options).Error; err != nil {
		logger.Error("Failed to fetch drone options", err, map[string]interface{}{
			"table": table,
			"ids":   ids,
		})
		return nil, err
	}

	byID := make(map[int64]model.DroneOption, len(options))
	for _, option := range options {
		byID[option.ID] = option
	}

	ordered := make([]model.DroneOption, 0, len(options))
	for _, id := range ids {
		if option, ok := byID[id]; ok {
			ordered = append(ordered, option)
		}
	}
	return ordered, nil
}
