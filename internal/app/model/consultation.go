package model

import "time"

type ContactMethod string

const (
	ContactPhone    ContactMethod = "phone"
	ContactSignal   ContactMethod = "signal"
	ContactViber    ContactMethod = "viber"
	ContactWhatsApp ContactMethod = "whatsapp"
)

// ContactMethods lists the accepted ways to reach a lead back
var ContactMethods = []ContactMethod{ContactPhone, ContactSignal, ContactViber, ContactWhatsApp}

// ConsultationRequest is a captured lead. Rows are created once by form
// submission and never updated or deleted by this service.
type ConsultationRequest struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	Name          string        `gorm:"not null" json:"name"`
	Phone         string        `gorm:"not null;type:varchar(16)" json:"phone"`
	Question      string        `gorm:"type:text;not null" json:"question"`
	ContactMethod ContactMethod `gorm:"column:contact_method;type:varchar(16)" json:"contactMethod"`
	Status        string        `gorm:"type:varchar(16);default:new" json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}
