package services

import (
	"testing"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

func TestPresetsLocalized(t *testing.T) {
	var svc PresetService

	hebrew := svc.Presets(models.LocaleHebrew)
	if hebrew.Cities[0] != "הכל" {
		t.Fatalf("expected hebrew sentinel city first, got %q", hebrew.Cities[0])
	}

	english := svc.Presets(models.LocaleEnglish)
	if english.Cities[0] != models.LocationAll {
		t.Fatalf("expected All first, got %q", english.Cities[0])
	}

	for _, p := range []FilterPresets{hebrew, english} {
		if len(p.Cities) != 4 {
			t.Fatalf("expected 4 cities, got %d", len(p.Cities))
		}
		if len(p.BusinessTypes) != 4 || p.BusinessTypes[0].Value != models.BusinessTypeAll {
			t.Fatalf("unexpected business types: %v", p.BusinessTypes)
		}
		if len(p.Availability) != 3 || p.Availability[0].Value != models.AvailabilityAny {
			t.Fatalf("unexpected availability options: %v", p.Availability)
		}
		if len(p.Moods) != 4 || len(p.Budgets) != 4 {
			t.Fatalf("expected 4 moods and 4 budgets, got %d/%d", len(p.Moods), len(p.Budgets))
		}
		if p.Defaults.BusinessType != models.BusinessTypeAll {
			t.Fatalf("presets must carry the documented defaults, got %+v", p.Defaults)
		}
	}
}

func TestPresetValuesMapOntoFilterContract(t *testing.T) {
	presets := PresetService{}.Presets(models.LocaleEnglish)

	valid := map[string]struct{}{
		models.BusinessTypeHair:   {},
		models.BusinessTypeBeauty: {},
		models.BusinessTypeNails:  {},
	}
	for _, mood := range presets.Moods {
		if _, ok := valid[mood.BusinessType]; !ok {
			t.Fatalf("mood %q maps to unknown type %q", mood.Label, mood.BusinessType)
		}
	}

	for _, budget := range presets.Budgets {
		f := models.DefaultSearchFilters()
		f.PriceRange = budget.PriceRange
		if err := f.Validate(); err != nil {
			t.Fatalf("budget %q produces invalid filters: %v", budget.Label, err)
		}
	}
}

func TestPhotoForType(t *testing.T) {
	if PhotoForType(models.BusinessTypeNails) == PhotoForType(models.BusinessTypeHair) {
		t.Fatal("expected distinct photos per type")
	}
	if PhotoForType("unknown") != PhotoForType(models.BusinessTypeHair) {
		t.Fatal("expected hair salon fallback for unknown type")
	}
}
