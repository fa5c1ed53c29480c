package model

import "time"

type DroneDetector struct {
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

func (DroneDetector) TableName() string {
	return "drone_detectors"
}

func (d *DroneDetector) Gallery() []string {
	return DecodeGallery(d.GalleryImages)
}
