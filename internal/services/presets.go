package services

import "github.com/aviadn777/qflow-stripe-glow/internal/models"

// Option is a selectable filter value with its localized label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MoodPreset maps a mood badge onto a business type.
type MoodPreset struct {
	Emoji        string `json:"emoji"`
	Label        string `json:"label"`
	BusinessType string `json:"business_type"`
}

// BudgetPreset maps a budget badge onto a price range.
type BudgetPreset struct {
	Emoji      string     `json:"emoji"`
	Label      string     `json:"label"`
	PriceRange [2]float64 `json:"price_range"`
}

// FilterPresets is everything a filter UI needs to build its controls. The
// mood picker and the conventional sidebar are interchangeable because both
// translate these presets into the same SearchFilters value.
type FilterPresets struct {
	Cities        []string             `json:"cities"`
	BusinessTypes []Option             `json:"business_types"`
	Availability  []Option             `json:"availability"`
	Moods         []MoodPreset         `json:"moods"`
	Budgets       []BudgetPreset       `json:"budgets"`
	Defaults      models.SearchFilters `json:"defaults"`
}

// PresetService serves the localized preset tables.
type PresetService struct{}

func (PresetService) Presets(locale models.Locale) FilterPresets {
	if locale == models.LocaleEnglish {
		return englishPresets()
	}
	return hebrewPresets()
}

func hebrewPresets() FilterPresets {
	return FilterPresets{
		Cities: []string{"הכל", "תל אביב", "ירושלים", "חיפה"},
		BusinessTypes: []Option{
			{Value: models.BusinessTypeAll, Label: "כל הסוגים"},
			{Value: models.BusinessTypeHair, Label: "מספרות"},
			{Value: models.BusinessTypeBeauty, Label: "מכוני יופי"},
			{Value: models.BusinessTypeNails, Label: "סטודיו ציפורניים"},
		},
		Availability: []Option{
			{Value: models.AvailabilityAny, Label: "בכל זמן"},
			{Value: models.AvailabilityToday, Label: "היום"},
			{Value: models.AvailabilityThisWeek, Label: "השבוע"},
		},
		Moods: []MoodPreset{
			{Emoji: "😊", Label: "רוצה לחייך יותר", BusinessType: models.BusinessTypeHair},
			{Emoji: "💆‍♀️", Label: "צריכה להירגע", BusinessType: models.BusinessTypeBeauty},
			{Emoji: "✨", Label: "רוצה להזריח", BusinessType: models.BusinessTypeBeauty},
			{Emoji: "💅", Label: "זמן לפרטים הקטנים", BusinessType: models.BusinessTypeNails},
		},
		Budgets: []BudgetPreset{
			{Emoji: "💝", Label: "מתנה לעצמי", PriceRange: [2]float64{50, 100}},
			{Emoji: "👑", Label: "אני שווה את זה", PriceRange: [2]float64{100, 200}},
			{Emoji: "✨", Label: "יום מיוחד", PriceRange: [2]float64{200, 300}},
			{Emoji: "🌟", Label: "פעם בחיים", PriceRange: [2]float64{300, 500}},
		},
		Defaults: models.DefaultSearchFilters(),
	}
}

func englishPresets() FilterPresets {
	return FilterPresets{
		Cities: []string{"All", "Tel Aviv", "Jerusalem", "Haifa"},
		BusinessTypes: []Option{
			{Value: models.BusinessTypeAll, Label: "All Types"},
			{Value: models.BusinessTypeHair, Label: "Hair Salons"},
			{Value: models.BusinessTypeBeauty, Label: "Beauty Centers"},
			{Value: models.BusinessTypeNails, Label: "Nail Studios"},
		},
		Availability: []Option{
			{Value: models.AvailabilityAny, Label: "Any Time"},
			{Value: models.AvailabilityToday, Label: "Today"},
			{Value: models.AvailabilityThisWeek, Label: "This Week"},
		},
		Moods: []MoodPreset{
			{Emoji: "😊", Label: "Want to smile more", BusinessType: models.BusinessTypeHair},
			{Emoji: "💆‍♀️", Label: "Need to relax", BusinessType: models.BusinessTypeBeauty},
			{Emoji: "✨", Label: "Want to shine", BusinessType: models.BusinessTypeBeauty},
			{Emoji: "💅", Label: "Time for small details", BusinessType: models.BusinessTypeNails},
		},
		Budgets: []BudgetPreset{
			{Emoji: "💝", Label: "Gift to myself", PriceRange: [2]float64{50, 100}},
			{Emoji: "👑", Label: "I'm worth it", PriceRange: [2]float64{100, 200}},
			{Emoji: "✨", Label: "Special day", PriceRange: [2]float64{200, 300}},
			{Emoji: "🌟", Label: "Once in a lifetime", PriceRange: [2]float64{300, 500}},
		},
		Defaults: models.DefaultSearchFilters(),
	}
}
