package models

import "strings"

// Fixed product category set. Anything else coerces to CategoryOther.
const (
	CategoryMen         = "men"
	CategoryWomen       = "women"
	CategoryElectronics = "electronics"
	CategoryOther       = "other"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	Category    string  `gorm:"not null;index" json:"category"`
	// ImageRef is either a URL or a Telegram file id.
	ImageRef string `json:"image_ref"`
}

// NormalizeCategory lower-cases and trims free-text input and coerces
// anything outside the closed set to CategoryOther.
func NormalizeCategory(raw string) string {
	switch c := strings.ToLower(strings.TrimSpace(raw)); c {
	case CategoryMen, CategoryWomen, CategoryElectronics:
		return c
	default:
		return CategoryOther
	}
}
