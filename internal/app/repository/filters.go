package repository

// PriceRange is the global min/max price across a whole family, independent
// of any currently-applied filter
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SizeRange is the global min/max frame size across the drone family
type SizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Fallback bounds reported when a family has no rows yet
const (
	fallbackMaxPrice = 100000
	fallbackMaxSize  = 1000
)
