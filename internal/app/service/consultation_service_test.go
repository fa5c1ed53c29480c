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

func setupConsultationServiceTest(t *testing.T) (*gorm.DB, ConsultationService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewConsultationService(repository.NewConsultationRepository(testDB))
}

func validInput() ConsultationInput {
	return ConsultationInput{
		Name:          "Олег",
		Phone:         "+380501234567",
		Question:      "Чи доступна AV-7 під замовлення?",
		ContactMethod: "signal",
	}
}

func TestConsultationService_Submit(t *testing.T) {
	testDB, consultationService := setupConsultationServiceTest(t)

	request, err := consultationService.Submit(validInput())
	require.NoError(t, err)
	assert.NotZero(t, request.ID)
	assert.Equal(t, "new", request.Status)
	assert.Equal(t, model.ContactSignal, request.ContactMethod)

	var stored model.ConsultationRequest
	require.NoError(t, testDB.First(&stored, request.ID).Error)
	assert.Equal(t, "+380501234567", stored.Phone)
}

func TestConsultationService_Submit_PhoneValidation(t *testing.T) {
	_, consultationService := setupConsultationServiceTest(t)

	tests := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{
			name:  "Full international form",
			phone: "+380501234567",
		},
		{
			name:  "Internal whitespace stripped before validation",
			phone: "+380 50 123 45 67",
		},
		{
			name:    "Local form rejected",
			phone:   "0501234567",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "Too short",
			phone:   "+38050123456",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "Too long",
			phone:   "+3805012345678",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "Wrong country code",
			phone:   "+381501234567",
			wantErr: ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Phone = tt.phone
			request, err := consultationService.Submit(input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, request)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "+380501234567", request.Phone)
			}
		})
	}
}

func TestConsultationService_Submit_RequiredFields(t *testing.T) {
	_, consultationService := setupConsultationServiceTest(t)

	for _, field := range []string{"name", "phone", "question"} {
		input := validInput()
		switch field {
		case "name":
			input.Name = "   "
		case "phone":
			input.Phone = ""
		case "question":
			input.Question = "\t"
		}
		_, err := consultationService.Submit(input)
		assert.ErrorIs(t, err, ErrMissingFields, "missing %s", field)
	}
}

func TestConsultationService_Submit_ContactMethod(t *testing.T) {
	_, consultationService := setupConsultationServiceTest(t)

	input := validInput()
	input.ContactMethod = "telegram"
	_, err := consultationService.Submit(input)
	assert.ErrorIs(t, err, ErrInvalidMethod)

	input.ContactMethod = ""
	_, err = consultationService.Submit(input)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestConsultationService_Submit_DuplicatesAllowed(t *testing.T) {
	testDB, consultationService := setupConsultationServiceTest(t)

	_, err := consultationService.Submit(validInput())
	require.NoError(t, err)
	_, err = consultationService.Submit(validInput())
	require.NoError(t, err)

	// Unlike visit tracking, every submission is its own row
	var count int64
	require.NoError(t, testDB.Model(&model.ConsultationRequest{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
