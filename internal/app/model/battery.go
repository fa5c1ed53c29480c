package model

import "time"

type Battery struct {
	ID                string    `gorm:"primarykey;type:varchar(64)" json:"id"`
	Model             string    `gorm:"not null" json:"model"`
	Price             float64   `gorm:"not null" json:"price"`
	Manufacturer      string    `gorm:"type:varchar(64)" json:"manufacturer"`
	BatteryType       string    `gorm:"column:battery_type;type:varchar(32)" json:"batteryType"` // e.g. Li-Ion, LiPo
	Configuration     string    `gorm:"type:varchar(32)" json:"configuration"`                   // cell configuration, e.g. 6S2P
	FullConfiguration string    `gorm:"column:full_configuration" json:"fullConfiguration,omitempty"`
	Capacity          int       `json:"capacity"` // mAh
	Description       string    `gorm:"type:text" json:"description,omitempty"`
	DetailedInfo      string    `gorm:"column:detailed_info;type:text" json:"detailedInfo,omitempty"`
	MainImage         string    `gorm:"column:main_image" json:"image,omitempty"`
	GalleryImages     string    `gorm:"column:gallery_images;type:text" json:"-"`
	GalleryList       []string  `gorm:"-" json:"gallery"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (Battery) TableName() string {
	return "batteries"
}

func (b *Battery) Gallery() []string {
	return DecodeGallery(b.GalleryImages)
}
