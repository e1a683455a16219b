package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capilia/internal/model"
)

func TestTables(t *testing.T) {
	assert.Len(t, Chemistries(), 25)
	assert.Len(t, Accreditations(), 15)
	assert.Len(t, StateLocations(), 23)

	sum := 0
	for _, l := range StateLocations() {
		sum += l.FacilityCount
	}
	assert.Equal(t, TotalFacilities, sum)
}

func TestTablesAreCopies(t *testing.T) {
	c := Chemistries()
	c[0].Name = "changed"
	got, ok := ChemistryByID("chem-1")
	require.True(t, ok)
	assert.Equal(t, "Asymmetric Synthesis", got.Name)
}

func TestProductsAreDeepCopies(t *testing.T) {
	ps := Products()
	ps[0].Accreditations[0] = "changed"
	ps[0].PackagingOptions[0] = "changed"

	p, ok := ProductByID("1")
	require.True(t, ok)
	assert.Equal(t, "FDA Approved", p.Accreditations[0])
	assert.Equal(t, "25kg drums", p.PackagingOptions[0])

	p.Accreditations[1] = "changed"
	found := SearchProducts(SearchFilters{ProductName: "Paracetamol"})
	require.Len(t, found, 1)
	assert.Equal(t, "WHO-GMP", found[0].Accreditations[1])
}

func TestLookups(t *testing.T) {
	c, ok := ChemistryByID("chem-13")
	require.True(t, ok)
	assert.Equal(t, "Supercritical CO2 Extraction", c.Name)
	assert.Equal(t, CategoryExtraction, c.Category)

	a, ok := AccreditationByID("acc-7")
	require.True(t, ok)
	assert.Equal(t, "ISO 9001", a.ShortName)

	l, ok := LocationByID("loc-16")
	require.True(t, ok)
	assert.Equal(t, "Jammu and Kashmir", l.Name)

	l, ok = LocationByName("tamil NADU")
	require.True(t, ok)
	assert.Equal(t, "loc-6", l.ID)

	_, ok = ChemistryByID("chem-99")
	assert.False(t, ok)
	_, ok = LocationByName("Ladakh")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Extraction & Purification", ChemistryCategoryLabel(CategoryExtraction))
	assert.Equal(t, "Specialty Processes", ChemistryCategoryLabel(CategorySpecialty))
	assert.Equal(t, "Quality Management", AccreditationCategoryLabel(AccreditationQuality))
	assert.Equal(t, "Northeast India", RegionLabel(RegionNortheast))
}

func TestGroups(t *testing.T) {
	chem := ChemistryGroups()
	require.Len(t, chem, 5)
	assert.Equal(t, "Synthesis", chem[0].Label)
	assert.Len(t, chem[0].Items, 7)
	assert.Len(t, chem[3].Items, 4)

	acc := AccreditationGroups()
	require.Len(t, acc, 4)
	assert.Len(t, acc[2].Items, 3)

	loc := LocationGroups()
	require.Len(t, loc, 6)
	assert.Equal(t, "West India", loc[0].Label)
	assert.Equal(t, []string{"Maharashtra", "Gujarat", "Goa"}, []string{loc[0].Items[0].Name, loc[0].Items[1].Name, loc[0].Items[2].Name})
	assert.Len(t, loc[2].Items, 8)

	total := 0
	for _, g := range chem {
		total += len(g.Items)
	}
	assert.Equal(t, 25, total)
}

func TestFilterStateToggle(t *testing.T) {
	f := NewFilterState()
	assert.True(t, f.IsEmpty())

	f.ToggleChemistry("chem-1")
	f.ToggleChemistry("chem-2")
	f.ToggleAccreditation("acc-1")
	f.ToggleLocation("loc-1")
	assert.Equal(t, []string{"chem-1", "chem-2"}, f.Chemistries)
	assert.Equal(t, 4, f.ActiveCount())

	f.ToggleChemistry("chem-1")
	assert.Equal(t, []string{"chem-2"}, f.Chemistries)
	assert.False(t, f.IsEmpty())

	f.Clear()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, []string{}, f.Chemistries)
	assert.Equal(t, []string{}, f.Accreditations)
	assert.Equal(t, []string{}, f.Locations)
}

func TestFilterStateToggleDoesNotAlias(t *testing.T) {
	f := FilterState{Chemistries: []string{"chem-1", "chem-2"}}
	g := f
	g.ToggleChemistry("chem-1")
	assert.Equal(t, []string{"chem-1", "chem-2"}, f.Chemistries)
	assert.Equal(t, []string{"chem-2"}, g.Chemistries)
}

func TestCalculateFilteredFacilities(t *testing.T) {
	all := func(n int, prefix string) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = prefix + string(rune('a'+i))
		}
		return out
	}

	tests := []struct {
		name string
		f    FilterState
		want int
	}{
		{name: "no filters", f: FilterState{}, want: 121},
		{name: "single location", f: FilterState{Locations: []string{"loc-1"}}, want: 16},
		{name: "two locations", f: FilterState{Locations: []string{"loc-1", "loc-2"}}, want: 28},
		{name: "unknown location", f: FilterState{Locations: []string{"loc-x"}}, want: 1},
		{name: "one chemistry", f: FilterState{Chemistries: []string{"chem-1"}}, want: 61},
		{name: "one accreditation", f: FilterState{Accreditations: []string{"acc-1"}}, want: 89},
		{
			name: "location chemistry accreditation",
			f:    FilterState{Locations: []string{"loc-1"}, Chemistries: []string{"chem-1"}, Accreditations: []string{"acc-1"}},
			want: 6,
		},
		{name: "factor capped at one", f: FilterState{Chemistries: all(4, "c")}, want: 121},
		{name: "every chemistry skips factor", f: FilterState{Chemistries: all(25, "c")}, want: 121},
		{name: "every accreditation skips factor", f: FilterState{Locations: []string{"loc-23"}, Accreditations: all(15, "a")}, want: 1},
		{name: "floor of one", f: FilterState{Locations: []string{"loc-23"}, Chemistries: []string{"chem-1"}}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateFilteredFacilities(tt.f))
		})
	}
}

func TestSummarize(t *testing.T) {
	f := FilterState{
		Chemistries:    []string{"chem-5", "chem-404"},
		Accreditations: []string{"acc-5"},
		Locations:      []string{"loc-4"},
	}
	s := f.Summarize()
	assert.Equal(t, []string{"Flow Chemistry"}, s.Chemistries)
	assert.Equal(t, []string{"WHO-GMP"}, s.Accreditations)
	assert.Equal(t, []string{"Karnataka"}, s.Locations)
	assert.Equal(t, 4, s.ActiveFilters)
	assert.Equal(t, CalculateFilteredFacilities(f), s.Facilities)
}

func TestStateFacilities(t *testing.T) {
	assert.Equal(t, 16, StateFacilities("Maharashtra"))
	assert.Equal(t, 4, StateFacilities("NCT of Delhi"))
	assert.Equal(t, 3, StateFacilities("Orissa"))
	assert.Equal(t, 2, StateFacilities("Uttaranchal"))
	assert.Equal(t, 1, StateFacilities("Jammu & Kashmir"))
	assert.Equal(t, 12, StateFacilities("GUJARAT"))
	assert.Equal(t, 0, StateFacilities("Sikkim"))
	assert.Equal(t, 0, StateFacilities("Atlantis"))
}

func TestFacilityColor(t *testing.T) {
	assert.Equal(t, "#0d6e5f", FacilityColor(16))
	assert.Equal(t, "#0d6e5f", FacilityColor(10))
	assert.Equal(t, "#2a9d8f", FacilityColor(9))
	assert.Equal(t, "#2a9d8f", FacilityColor(5))
	assert.Equal(t, "#52b788", FacilityColor(3))
	assert.Equal(t, "#95d5b2", FacilityColor(1))
	assert.Equal(t, "#b7e4c7", FacilityColor(0))
}

func TestIntensityTier(t *testing.T) {
	assert.Equal(t, IntensityFull, IntensityTier(16, 16))
	assert.Equal(t, IntensityMedium, IntensityTier(8, 16))
	assert.Equal(t, IntensityLight, IntensityTier(4, 16))
	assert.Equal(t, IntensityFaint, IntensityTier(3, 16))
	assert.Equal(t, IntensityFaint, IntensityTier(5, 0))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Goa", StateName(map[string]any{"NAME_1": "Goa", "name": "ignored"}))
	assert.Equal(t, "Kerala", StateName(map[string]any{"ST_NM": "", "state": "Kerala"}))
	assert.Equal(t, "Unknown", StateName(map[string]any{"ST_NM": 12}))
	assert.Equal(t, "Unknown", StateName(nil))
}

func TestAnnotateStates(t *testing.T) {
	fc := model.NewFeatureCollection()
	fc.Features = append(fc.Features,
		model.Feature{Type: "Feature", Properties: map[string]any{"ST_NM": "Karnataka"}},
		model.Feature{Type: "Feature"},
	)
	AnnotateStates(fc)

	assert.Equal(t, 10, fc.Features[0].Properties["facilities"])
	assert.Equal(t, FillHighest, fc.Features[0].Properties["fill"])
	assert.Equal(t, 0, fc.Features[1].Properties["facilities"])
	assert.Equal(t, FillEmpty, fc.Features[1].Properties["fill"])

	AnnotateStates(nil)
}

func TestBuildIndiaMap(t *testing.T) {
	m := BuildIndiaMap()
	assert.Equal(t, 121, m.TotalFacilities)
	require.Len(t, m.States, 23)
	assert.Equal(t, StateShade{Name: "Maharashtra", Facilities: 16, Fill: FillHighest, Intensity: IntensityFull}, m.States[0])
	assert.Equal(t, StateShade{Name: "Assam", Facilities: 1, Fill: FillLow, Intensity: IntensityFaint}, m.States[22])
}

func TestSearchProducts(t *testing.T) {
	names := func(ps []Product) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}

	assert.Len(t, SearchProducts(SearchFilters{}), 6)
	assert.Len(t, SearchProducts(SearchFilters{Accreditation: AccreditationAll}), 6)
	assert.Equal(t, []string{"Paracetamol"}, names(SearchProducts(SearchFilters{ProductName: "PARA"})))
	assert.Equal(t, []string{"Aspirin"}, names(SearchProducts(SearchFilters{CASNumber: "50-78"})))
	assert.Equal(t, []string{"Paracetamol", "Aspirin"}, names(SearchProducts(SearchFilters{Accreditation: "iso-9001"})))
	assert.Equal(t, []string{"Atorvastatin Calcium"}, names(SearchProducts(SearchFilters{Accreditation: "iso-14001"})))
	assert.Len(t, SearchProducts(SearchFilters{Accreditation: "fda"}), 5)
	assert.Equal(t, []string{"Ibuprofen"}, names(SearchProducts(SearchFilters{Accreditation: "cdsco"})))

	// Only the first hyphen becomes a space, so hyphenated labels never match.
	assert.Empty(t, SearchProducts(SearchFilters{Accreditation: "who-gmp"}))

	assert.Empty(t, SearchProducts(SearchFilters{ProductName: "aspirin", CASNumber: "103"}))
}

func TestSearchFiltersActiveLabels(t *testing.T) {
	assert.Equal(t, []string{}, SearchFilters{Accreditation: AccreditationAll}.ActiveLabels())
	assert.Equal(t,
		[]string{"Product: Aspirin", "CAS: 50-78-2", "ISO 14001"},
		SearchFilters{ProductName: "Aspirin", CASNumber: "50-78-2", Accreditation: "iso-14001"}.ActiveLabels(),
	)
	assert.Equal(t, []string{}, SearchFilters{Accreditation: "unknown"}.ActiveLabels())
}

func TestProductByIDAndOptions(t *testing.T) {
	p, ok := ProductByID("6")
	require.True(t, ok)
	assert.Equal(t, "Biocon Limited", p.Manufacturer)

	_, ok = ProductByID("7")
	assert.False(t, ok)

	opts := AccreditationOptions()
	require.Len(t, opts, 9)
	assert.Equal(t, "All Accreditations", opts[0].Label)
}
