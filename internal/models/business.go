package models

import "time"

// Business is a verified salon listing as stored in the businesses table.
// Fields in the derived block are computed per request and never written back.
type Business struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	NameHe             string            `json:"name_he"`
	Type               string            `json:"type"`
	City               string            `json:"city"`
	Address            string            `json:"address"`
	Phone              string            `json:"phone"`
	Description        string            `json:"description"`
	DescriptionHe      string            `json:"description_he"`
	ServicesOffered    []string          `json:"services_offered"`
	StaffCount         int               `json:"staff_count"`
	OpeningHours       map[string]string `json:"opening_hours,omitempty"`
	IsVerified         bool              `json:"is_verified"`
	SubscriptionStatus string            `json:"subscription_status"`
	CreatedAt          time.Time         `json:"created_at"`

	Services []Service `json:"services,omitempty"`

	// Derived at runtime.
	Rating           float64 `json:"rating"`
	ReviewCount      int     `json:"review_count"`
	PriceRange       string  `json:"price_range"`
	PhotoURL         string  `json:"photo_url"`
	IsAvailableToday bool    `json:"is_available_today"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
}

// LocalizedName returns the display name for the given locale.
func (b Business) LocalizedName(locale Locale) string {
	if locale == LocaleHebrew && b.NameHe != "" {
		return b.NameHe
	}
	return b.Name
}

// LocalizedDescription returns the description for the given locale.
func (b Business) LocalizedDescription(locale Locale) string {
	if locale == LocaleHebrew && b.DescriptionHe != "" {
		return b.DescriptionHe
	}
	return b.Description
}

// Service is a bookable treatment offered by a business. Only active
// services take part in price derivation.
type Service struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	Name          string  `json:"name"`
	NameHe        string  `json:"name_he"`
	Description   string  `json:"description"`
	DescriptionHe string  `json:"description_he"`
	Duration      int     `json:"duration"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	IsActive      bool    `json:"is_active"`
}
