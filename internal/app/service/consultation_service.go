package service

import (
	"regexp"
	"strings"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/logger"
)

// ukrainianMobile matches a phone in full international form, +380 followed
// by nine digits, after whitespace has been stripped.
var ukrainianMobile = regexp.MustCompile(`^\+380\d{9}$`)

// ConsultationInput is the raw form submission before validation.
type ConsultationInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Question      string `json:"question"`
	ContactMethod string `json:"contactMethod"`
}

type ConsultationService interface {
	Submit(input ConsultationInput) (*model.ConsultationRequest, error)
}

type consultationService struct {
	consultationRepo repository.ConsultationRepository
}

func NewConsultationService(consultationRepo repository.ConsultationRepository) ConsultationService {
	return &consultationService{consultationRepo: consultationRepo}
}

// Submit validates and stores a lead. Each submission becomes its own row;
// repeat requests from the same phone are intentionally not deduplicated.
func (s *consultationService) Submit(input ConsultationInput) (*model.ConsultationRequest, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	question := strings.TrimSpace(input.Question)
	contactMethod := model.ContactMethod(strings.TrimSpace(input.ContactMethod))

	if name == "" || phone == "" || question == "" {
		return nil, ErrMissingFields
	}

	cleanedPhone := strings.Join(strings.Fields(phone), "")
	if !ukrainianMobile.MatchString(cleanedPhone) {
		logger.Debug("Rejected consultation with malformed phone", map[string]interface{}{
			"name": name,
		})
		return nil, ErrInvalidPhone
	}

	valid := false
	for _, method := range model.ContactMethods {
		if contactMethod == method {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidMethod
	}

	request := &model.ConsultationRequest{
		Name:          name,
		Phone:         cleanedPhone,
		Question:      question,
		ContactMethod: contactMethod,
		Status:        "new",
	}
	if err := s.consultationRepo.Create(request); err != nil {
		return nil, err
	}

	logger.Info("Consultation request captured", map[string]interface{}{
		"request_id":     request.ID,
		"contact_method": contactMethod,
	})
	return request, nil
}
