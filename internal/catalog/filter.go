package catalog

import (
	"math"
	"slices"
)

// FilterState is the set of ids selected in the three filter panels.
type FilterState struct {
	Chemistries    []string `json:"chemistries"`
	Accreditations []string `json:"accreditations"`
	Locations      []string `json:"locations"`
}

// NewFilterState returns a state with all three lists empty.
func NewFilterState() FilterState {
	return FilterState{
		Chemistries:    []string{},
		Accreditations: []string{},
		Locations:      []string{},
	}
}

// toggle adds id when absent and removes it when present.
func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}
	return append(slices.Clone(ids), id)
}

// ToggleChemistry flips the selection of a chemistry id.
func (f *FilterState) ToggleChemistry(id string) { f.Chemistries = toggle(f.Chemistries, id) }

// ToggleAccreditation flips the selection of an accreditation id.
func (f *FilterState) ToggleAccreditation(id string) {
	f.Accreditations = toggle(f.Accreditations, id)
}

// ToggleLocation flips the selection of a location id.
func (f *FilterState) ToggleLocation(id string) { f.Locations = toggle(f.Locations, id) }

// Clear empties all three lists.
func (f *FilterState) Clear() { *f = NewFilterState() }

// IsEmpty reports whether nothing is selected.
func (f FilterState) IsEmpty() bool {
	return len(f.Chemistries) == 0 && len(f.Accreditations) == 0 && len(f.Locations) == 0
}

// ActiveCount is the total number of selected ids.
func (f FilterState) ActiveCount() int {
	return len(f.Chemistries) + len(f.Accreditations) + len(f.Locations)
}

// Summary is the filter summary card: display names of the selection and the
// estimated facility count.
type Summary struct {
	Facilities     int      `json:"facilities"`
	ActiveFilters  int      `json:"active_filters"`
	Chemistries    []string `json:"chemistries"`
	Accreditations []string `json:"accreditations"`
	Locations      []string `json:"locations"`
}

// Summarize resolves selected ids to display names. Unknown ids are skipped.
// Accreditations use their short name.
func (f FilterState) Summarize() Summary {
	s := Summary{
		Facilities:     CalculateFilteredFacilities(f),
		ActiveFilters:  f.ActiveCount(),
		Chemistries:    []string{},
		Accreditations: []string{},
		Locations:      []string{},
	}
	for _, id := range f.Chemistries {
		if c, ok := ChemistryByID(id); ok {
			s.Chemistries = append(s.Chemistries, c.Name)
		}
	}
	for _, id := range f.Accreditations {
		if a, ok := AccreditationByID(id); ok {
			s.Accreditations = append(s.Accreditations, a.ShortName)
		}
	}
	for _, id := range f.Locations {
		if l, ok := LocationByID(id); ok {
			s.Locations = append(s.Locations, l.Name)
		}
	}
	return s
}

// CalculateFilteredFacilities approximates how many facilities match f.
// Selected locations replace the total with the sum of their counts; partial
// chemistry and accreditation selections then scale it down. The result is
// never below 1.
func CalculateFilteredFacilities(f FilterState) int {
	if f.IsEmpty() {
		return TotalFacilities
	}

	count := float64(TotalFacilities)
	if len(f.Locations) > 0 {
		sum := 0
		for _, l := range stateLocations {
			if slices.Contains(f.Locations, l.ID) {
				sum += l.FacilityCount
			}
		}
		count = float64(sum)
	}

	if n := len(f.Chemistries); n > 0 && n < len(chemistries) {
		factor := math.Min(1, float64(n)/5+0.3)
		count = math.Ceil(count * factor)
	}

	if n := len(f.Accreditations); n > 0 && n < len(accreditations) {
		factor := math.Min(1, float64(n)/3+0.4)
		count = math.Ceil(count * factor)
	}

	return max(1, int(count))
}
