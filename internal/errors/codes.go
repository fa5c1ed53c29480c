package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The storefront maps these codes to UI behaviour; the message field carries
// the localized text shown to the visitor.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationInvalidPhone  = "VALIDATION_INVALID_PHONE"
	ValidationInvalidMethod = "VALIDATION_INVALID_CONTACT_METHOD"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// ==================== Catalog (CATALOG_) ====================
	CatalogDroneNotFound    = "CATALOG_DRONE_NOT_FOUND"
	CatalogEwsNotFound      = "CATALOG_EWS_NOT_FOUND"
	CatalogDetectorNotFound = "CATALOG_DETECTOR_NOT_FOUND"
	CatalogBatteryNotFound  = "CATALOG_BATTERY_NOT_FOUND"
	CatalogInvalidOption    = "CATALOG_INVALID_OPTION"

	// ==================== Tracking (TRACK_) ====================
	TrackMissingFields = "TRACK_MISSING_FIELDS"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
