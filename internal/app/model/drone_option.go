package model

// OptionGroupCode identifies one of the configurable add-on groups on a drone
type OptionGroupCode string

const (
	GroupReceiver   OptionGroupCode = "rx"
	GroupVTX        OptionGroupCode = "vtx"
	GroupCamera     OptionGroupCode = "camera"
	GroupBattery    OptionGroupCode = "battery"
	GroupFiberSpool OptionGroupCode = "fiberSpool"
)

// DroneOption is one selectable item inside an option group. All five group
// tables (rx_options, vtx_options, camera_options, battery_options,
// fiber_spool_options) share this shape; the table name is supplied by the
// repository per group.
type DroneOption struct {
	ID    int64   `gorm:"primarykey" json:"id"`
	Label string  `gorm:"not null" json:"label"`
	Price float64 `gorm:"not null" json:"price"`
}

// OptionTables lists the per-group tables, used by migrations and lookups
var OptionTables = map[OptionGroupCode]string{
	GroupReceiver:   "rx_options",
	GroupVTX:        "vtx_options",
	GroupCamera:     "camera_options",
	GroupBattery:    "battery_options",
	GroupFiberSpool: "fiber_spool_options",
}
