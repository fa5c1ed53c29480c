package repository

import (
	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

// ConsultationRepository persists inbound consultation leads. Every request
// becomes its own row; duplicates are a sales-side concern, not ours.
type ConsultationRepository interface {
	Create(request *model.ConsultationRequest) error
}

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(request *model.ConsultationRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		logger.Error("Failed to create consultation request", err, map[string]interface{}{
			"name": request.Name,
		})
		return err
	}
	return nil
}
