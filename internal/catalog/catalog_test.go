package catalog

import "testing"

func TestMarketForKnownCountries(t *testing.T) {
	for _, country := range []string{"Nigeria", "United Kingdom", "United States", "Multiple"} {
		m, ok := MarketFor(country)
		if !ok {
			t.Fatalf("MarketFor(%q) not found", country)
		}
		if m.MarketCharacteristics == "" || m.Opportunities == "" || m.Challenges == "" ||
			m.RegulatoryEnvironment == "" || m.CulturalConsiderations == "" {
			t.Errorf("MarketFor(%q) has empty fields: %+v", country, m)
		}
	}
}

func TestMarketForUnknownCountry(t *testing.T) {
	if _, ok := MarketFor("Atlantis"); ok {
		t.Fatal("expected Atlantis to be unrecognized")
	}
	// Lookup is exact: no case folding, no trimming.
	if _, ok := MarketFor("nigeria"); ok {
		t.Fatal("expected lowercase country to be unrecognized")
	}
}

func TestTemplateForKnownStages(t *testing.T) {
	for _, stage := range []string{"Exploring", "Planning", "Implementing", "Scaling"} {
		tpl, ok := TemplateFor(stage)
		if !ok {
			t.Fatalf("TemplateFor(%q) not found", stage)
		}
		if tpl.Title == "" || tpl.Focus == "" {
			t.Errorf("TemplateFor(%q) has empty title or focus: %+v", stage, tpl)
		}
		if len(tpl.KeyAreas) != 5 {
			t.Errorf("TemplateFor(%q) has %d key areas, want 5", stage, len(tpl.KeyAreas))
		}
	}
}

func TestTemplateForUnknownStage(t *testing.T) {
	if _, ok := TemplateFor("Dreaming"); ok {
		t.Fatal("expected Dreaming to be unrecognized")
	}
}

func TestExploringTemplateTitle(t *testing.T) {
	tpl, ok := TemplateFor("Exploring")
	if !ok {
		t.Fatal("Exploring template missing")
	}
	if tpl.Title != "AI Opportunities Explorer Report" {
		t.Fatalf("unexpected title %q", tpl.Title)
	}
}

func TestCatalogListings(t *testing.T) {
	if got := len(Markets()); got != 4 {
		t.Errorf("Markets() returned %d entries, want 4", got)
	}
	if got := len(Stages()); got != 4 {
		t.Errorf("Stages() returned %d entries, want 4", got)
	}
}
