package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyShallowMergeKeepsAbsentKeys(t *testing.T) {
	state := DefaultContent()

	patch := ContentPatch{
		SectionGeneral: json.RawMessage(`{"companyName":"Northgrid BV"}`),
	}
	require.NoError(t, state.Apply(patch))

	assert.Equal(t, "Northgrid BV", state.General.CompanyName)
	// Keys absent from the patch keep their previous values.
	assert.Equal(t, "RACKLINE", state.General.LogoText)
	assert.Equal(t, "sales@rackline.example", state.General.Email)
}

func TestApplyArraySectionReplacedWholesale(t *testing.T) {
	state := DefaultContent()
	state.Categories = []Category{
		{ID: "servers", Name: "Servers"},
		{ID: "switches", Name: "Switches"},
	}

	patch := ContentPatch{
		SectionCategories: json.RawMessage(`[{"id":"storage","name":"Storage"}]`),
	}
	require.NoError(t, state.Apply(patch))

	require.Len(t, state.Categories, 1)
	assert.Equal(t, "storage", state.Categories[0].ID)
}

func TestApplyEmptyArrayClearsSection(t *testing.T) {
	state := DefaultContent()
	state.Redirects = []Redirect{{From: "/old", To: "/new"}}

	patch := ContentPatch{SectionRedirects: json.RawMessage(`[]`)}
	require.NoError(t, state.Apply(patch))

	assert.Empty(t, state.Redirects)
}

func TestApplyIsIdempotent(t *testing.T) {
	patch := ContentPatch{
		SectionGeneral:    json.RawMessage(`{"companyName":"Northgrid BV"}`),
		SectionCategories: json.RawMessage(`[{"id":"storage","name":"Storage"}]`),
	}

	once := DefaultContent()
	require.NoError(t, once.Apply(patch))

	twice := DefaultContent()
	require.NoError(t, twice.Apply(patch))
	require.NoError(t, twice.Apply(patch))

	assert.Equal(t, once, twice)
}

func TestApplyUnknownSectionRejected(t *testing.T) {
	state := DefaultContent()

	err := state.Apply(ContentPatch{"promoBanner": json.RawMessage(`{}`)})
	assert.Error(t, err)
}

func TestApplyMalformedSectionRejected(t *testing.T) {
	state := DefaultContent()

	err := state.Apply(ContentPatch{SectionGeneral: json.RawMessage(`"just a string"`)})
	assert.Error(t, err)
}

func TestBackfillRestoresCriticalFields(t *testing.T) {
	defaults := DefaultContent()
	state := DefaultContent()

	patch := ContentPatch{
		SectionHome:     json.RawMessage(`{"heroImage":""}`),
		SectionSettings: json.RawMessage(`{"favicon":""}`),
	}
	require.NoError(t, state.Apply(patch))
	state.Backfill(defaults)

	assert.Equal(t, defaults.Home.HeroImage, state.Home.HeroImage)
	assert.Equal(t, defaults.Settings.Favicon, state.Settings.Favicon)
}

func TestMergeLocalFieldWiseForObjectSections(t *testing.T) {
	defaults := DefaultContent()
	local := ContentState{
		General: GeneralContent{CompanyName: "Northgrid BV"},
		Home:    HomeContent{HeroTitle: "Custom hero"},
	}

	merged := MergeLocal(defaults, local)

	assert.Equal(t, "Northgrid BV", merged.General.CompanyName)
	assert.Equal(t, defaults.General.Email, merged.General.Email)
	assert.Equal(t, "Custom hero", merged.Home.HeroTitle)
	assert.Equal(t, defaults.Home.HeroImage, merged.Home.HeroImage)
}

func TestMergeLocalCategoriesWholesale(t *testing.T) {
	defaults := DefaultContent()
	defaults.Categories = []Category{{ID: "servers", Name: "Servers"}}

	local := ContentState{Categories: []Category{{ID: "storage", Name: "Storage"}}}
	merged := MergeLocal(defaults, local)

	require.Len(t, merged.Categories, 1)
	assert.Equal(t, "storage", merged.Categories[0].ID)

	// An empty local array means "nothing saved", not "cleared".
	merged = MergeLocal(defaults, ContentState{})
	require.Len(t, merged.Categories, 1)
	assert.Equal(t, "servers", merged.Categories[0].ID)
}

func TestMergeLocalEmptyLocalYieldsDefaults(t *testing.T) {
	defaults := DefaultContent()
	merged := MergeLocal(defaults, ContentState{})
	assert.Equal(t, defaults, merged)
}

func TestSectionPoliciesCoverAllSections(t *testing.T) {
	for _, name := range AllSections() {
		_, ok := SectionPolicies[name]
		assert.True(t, ok, "missing policy for %s", name)
	}
	assert.Len(t, SectionPolicies, len(AllSections()))
}
