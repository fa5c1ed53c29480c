package model

import "time"

type ProductionStatus string

const (
	StatusInProduction ProductionStatus = "inProduction"
	StatusDiscontinued ProductionStatus = "discontinued"
	StatusMadeToOrder  ProductionStatus = "madeToOrder"
)

// ProductionStatuses is the fixed filter domain for production status
var ProductionStatuses = []ProductionStatus{StatusInProduction, StatusDiscontinued, StatusMadeToOrder}

type DroneApplication string

const (
	ApplicationKamikaze     DroneApplication = "kamikaze"
	ApplicationRecon        DroneApplication = "recon"
	ApplicationBomber       DroneApplication = "bomber"
	ApplicationRelay        DroneApplication = "relay"
	ApplicationAntiaircraft DroneApplication = "antiaircraft"
)

type Drone struct {
	ID               string           `gorm:"primarykey;type:varchar(64)" json:"id"`
	Model            string           `gorm:"not null" json:"model"`
	Price            float64          `gorm:"not null" json:"price"`
	ProductionStatus ProductionStatus `gorm:"column:production_status;type:varchar(32)" json:"productionStatus"`
	Size             int              `json:"size"` // frame size in inches
	Application      DroneApplication `gorm:"type:varchar(32)" json:"application"`
	Connection       string           `gorm:"type:varchar(32)" json:"connection"` // radio | fiber | satellite
	SpecsRange       string           `gorm:"column:specs_range" json:"specsRange,omitempty"`
	FlightTime       string           `gorm:"column:flight_time" json:"flightTime,omitempty"`
	MaxSpeed         string           `gorm:"column:max_speed" json:"maxSpeed,omitempty"`
	Payload          string           `json:"payload,omitempty"`
	Camera           string           `json:"camera,omitempty"`
	MaxAltitude      string           `gorm:"column:max_altitude" json:"maxAltitude,omitempty"`
	OperationalRange string           `gorm:"column:operational_range" json:"operationalRange,omitempty"`
	Battery          string           `json:"battery,omitempty"`
	Description      string           `gorm:"type:text" json:"description,omitempty"`
	DetailedInfo     string           `gorm:"column:detailed_info;type:text" json:"detailedInfo,omitempty"`
	MainImage        string           `gorm:"column:main_image" json:"image,omitempty"`
	GalleryImages    string           `gorm:"column:gallery_images;type:text" json:"-"`
	GalleryList      []string         `gorm:"-" json:"gallery"`
	CreatedAt        time.Time        `json:"createdAt"`

	// DisplayPrice is the catalog price: base price plus the factory-default
	// option of every group. Computed by the repository, never stored.
	DisplayPrice float64 `gorm:"column:display_price;->;-:migration" json:"-"`

	// Configurable add-on groups: each column holds the option ids offered
	// for this record (JSON array or comma-separated), the matching default
	// column the id of the factory selection.
	RxOptionIDs        string `gorm:"column:rx_option_ids" json:"-"`
	RxDefaultID        *int64 `gorm:"column:rx_default_id" json:"-"`
	VtxOptionIDs       string `gorm:"column:vtx_option_ids" json:"-"`
	VtxDefaultID       *int64 `gorm:"column:vtx_default_id" json:"-"`
	CameraOptionIDs    string `gorm:"column:camera_option_ids" json:"-"`
	CameraDefaultID    *int64 `gorm:"column:camera_default_id" json:"-"`
	BatteryOptionIDs   string `gorm:"column:battery_option_ids" json:"-"`
	BatteryDefaultID   *int64 `gorm:"column:battery_default_id" json:"-"`
	FiberSpoolOptionIDs string `gorm:"column:fiber_spool_option_ids" json:"-"`
	FiberSpoolDefaultID *int64 `gorm:"column:fiber_spool_default_id" json:"-"`
}

func (Drone) TableName() string {
	return "drones"
}

// Gallery decodes the persisted gallery column
func (d *Drone) Gallery() []string {
	return DecodeGallery(d.GalleryImages)
}
