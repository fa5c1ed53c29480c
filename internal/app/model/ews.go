package model

import "time"

// EWS is an electronic-warfare system record
type EWS struct {
	ID               string           `gorm:"primarykey;type:varchar(64)" json:"id"`
	Model            string           `gorm:"not null" json:"model"`
	Price            float64          `gorm:"not null" json:"price"`
	ProductionStatus ProductionStatus `gorm:"column:production_status;type:varchar(32)" json:"productionStatus"`
	Description      string           `gorm:"type:text" json:"description,omitempty"`
	DetailedInfo     string           `gorm:"column:detailed_info;type:text" json:"detailedInfo,omitempty"`
	MainImage        string           `gorm:"column:main_image" json:"image,omitempty"`
	GalleryImages    string           `gorm:"column:gallery_images;type:text" json:"-"`
	GalleryList      []string         `gorm:"-" json:"gallery"`
	CreatedAt        time.Time        `json:"createdAt"`
}

func (EWS) TableName() string {
	return "ews"
}

func (e *EWS) Gallery() []string {
	return DecodeGallery(e.GalleryImages)
}
