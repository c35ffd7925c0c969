package services

import "github.com/aviadn777/qflow-stripe-glow/internal/models"

// Display photos keyed by business type. Listings carry no photo of their
// own yet, so the card image is resolved from the type.
var businessPhotos = map[string]string{
	models.BusinessTypeHair:   "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400&h=300&fit=crop",
	models.BusinessTypeBeauty: "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400&h=300&fit=crop",
	models.BusinessTypeNails:  "https://images.unsplash.com/photo-1604654894610-df63bc536371?w=400&h=300&fit=crop",
}

// PhotoForType resolves the display photo for a business type, falling back
// to the hair salon image for unknown types.
func PhotoForType(businessType string) string {
	if url, ok := businessPhotos[businessType]; ok {
		return url
	}
	return businessPhotos[models.BusinessTypeHair]
}
