// Package catalog holds the static lookup tables rendered by the dashboard
// filter panels together with the helpers that query them.
package catalog

import (
	"golang.org/x/text/cases"
)

// ChemistryCategory groups chemistries in the filter panel.
type ChemistryCategory string

const (
	CategorySynthesis     ChemistryCategory = "synthesis"
	CategoryFermentation  ChemistryCategory = "fermentation"
	CategoryExtraction    ChemistryCategory = "extraction"
	CategoryBiotechnology ChemistryCategory = "biotechnology"
	CategorySpecialty     ChemistryCategory = "specialty"
)

// AccreditationCategory groups accreditations in the filter panel.
type AccreditationCategory string

const (
	AccreditationRegulatory    AccreditationCategory = "regulatory"
	AccreditationQuality       AccreditationCategory = "quality"
	AccreditationEnvironmental AccreditationCategory = "environmental"
	AccreditationInternational AccreditationCategory = "international"
)

// Region groups Indian states.
type Region string

const (
	RegionNorth     Region = "north"
	RegionSouth     Region = "south"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionCentral   Region = "central"
	RegionNortheast Region = "northeast"
)

// Chemistry is a process capability offered by manufacturing facilities.
type Chemistry struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	FacilityCount int               `json:"facility_count"`
	Category      ChemistryCategory `json:"category"`
}

// Accreditation is a regulatory or quality certification.
type Accreditation struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	ShortName     string                `json:"short_name"`
	FacilityCount int                   `json:"facility_count"`
	Category      AccreditationCategory `json:"category"`
}

// StateLocation is an Indian state with its facility count.
type StateLocation struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FacilityCount int    `json:"facility_count"`
	Region        Region `json:"region"`
}

// TotalFacilities is the facility count with no filter applied.
const TotalFacilities = 121

var chemistryCategoryLabels = map[ChemistryCategory]string{
	CategorySynthesis:     "Synthesis",
	CategoryFermentation:  "Fermentation",
	CategoryExtraction:    "Extraction & Purification",
	CategoryBiotechnology: "Biotechnology",
	CategorySpecialty:     "Specialty Processes",
}

var accreditationCategoryLabels = map[AccreditationCategory]string{
	AccreditationRegulatory:    "Regulatory",
	AccreditationQuality:       "Quality Management",
	AccreditationEnvironmental: "Environmental",
	AccreditationInternational: "International",
}

var regionLabels = map[Region]string{
	RegionNorth:     "North India",
	RegionSouth:     "South India",
	RegionEast:      "East India",
	RegionWest:      "West India",
	RegionCentral:   "Central India",
	RegionNortheast: "Northeast India",
}

// Display orders follow the filter panels.
var (
	chemistryCategoryOrder     = []ChemistryCategory{CategorySynthesis, CategoryFermentation, CategoryExtraction, CategoryBiotechnology, CategorySpecialty}
	accreditationCategoryOrder = []AccreditationCategory{AccreditationRegulatory, AccreditationQuality, AccreditationEnvironmental, AccreditationInternational}
	regionOrder                = []Region{RegionWest, RegionSouth, RegionNorth, RegionCentral, RegionEast, RegionNortheast}
)

var chemistries = []Chemistry{
	{ID: "chem-1", Name: "Asymmetric Synthesis", FacilityCount: 34, Category: CategorySynthesis},
	{ID: "chem-2", Name: "Peptide Synthesis", FacilityCount: 28, Category: CategorySynthesis},
	{ID: "chem-3", Name: "Heterocyclic Chemistry", FacilityCount: 52, Category: CategorySynthesis},
	{ID: "chem-4", Name: "Organometallic Chemistry", FacilityCount: 19, Category: CategorySynthesis},
	{ID: "chem-5", Name: "Flow Chemistry", FacilityCount: 15, Category: CategorySynthesis},
	{ID: "chem-6", Name: "Photochemistry", FacilityCount: 8, Category: CategorySynthesis},
	{ID: "chem-7", Name: "Green Chemistry", FacilityCount: 41, Category: CategorySynthesis},

	{ID: "chem-8", Name: "Microbial Fermentation", FacilityCount: 38, Category: CategoryFermentation},
	{ID: "chem-9", Name: "Enzymatic Processes", FacilityCount: 29, Category: CategoryFermentation},
	{ID: "chem-10", Name: "Biocatalysis", FacilityCount: 22, Category: CategoryFermentation},
	{ID: "chem-11", Name: "Solid State Fermentation", FacilityCount: 14, Category: CategoryFermentation},

	{ID: "chem-12", Name: "Solvent Extraction", FacilityCount: 67, Category: CategoryExtraction},
	{ID: "chem-13", Name: "Supercritical CO2 Extraction", FacilityCount: 11, Category: CategoryExtraction},
	{ID: "chem-14", Name: "Chromatographic Purification", FacilityCount: 45, Category: CategoryExtraction},
	{ID: "chem-15", Name: "Crystallization", FacilityCount: 58, Category: CategoryExtraction},
	{ID: "chem-16", Name: "Distillation", FacilityCount: 49, Category: CategoryExtraction},

	{ID: "chem-17", Name: "Recombinant DNA Technology", FacilityCount: 12, Category: CategoryBiotechnology},
	{ID: "chem-18", Name: "Cell Culture", FacilityCount: 18, Category: CategoryBiotechnology},
	{ID: "chem-19", Name: "Monoclonal Antibodies", FacilityCount: 7, Category: CategoryBiotechnology},
	{ID: "chem-20", Name: "Gene Therapy Vectors", FacilityCount: 4, Category: CategoryBiotechnology},

	{ID: "chem-21", Name: "Chiral Resolution", FacilityCount: 26, Category: CategorySpecialty},
	{ID: "chem-22", Name: "Polymorph Screening", FacilityCount: 31, Category: CategorySpecialty},
	{ID: "chem-23", Name: "Salt Formation", FacilityCount: 44, Category: CategorySpecialty},
	{ID: "chem-24", Name: "Continuous Manufacturing", FacilityCount: 16, Category: CategorySpecialty},
	{ID: "chem-25", Name: "Nano-formulation", FacilityCount: 9, Category: CategorySpecialty},
}

var accreditations = []Accreditation{
	{ID: "acc-1", Name: "FDA Approved", ShortName: "FDA", FacilityCount: 45, Category: AccreditationRegulatory},
	{ID: "acc-2", Name: "CDSCO Approved", ShortName: "CDSCO", FacilityCount: 98, Category: AccreditationRegulatory},
	{ID: "acc-3", Name: "Drug Master File", ShortName: "DMF", FacilityCount: 67, Category: AccreditationRegulatory},
	{ID: "acc-4", Name: "Certificate of Suitability", ShortName: "CEP", FacilityCount: 38, Category: AccreditationRegulatory},

	{ID: "acc-5", Name: "WHO-GMP Certified", ShortName: "WHO-GMP", FacilityCount: 72, Category: AccreditationQuality},
	{ID: "acc-6", Name: "EU-GMP Certified", ShortName: "EU-GMP", FacilityCount: 41, Category: AccreditationQuality},
	{ID: "acc-7", Name: "ISO 9001:2015", ShortName: "ISO 9001", FacilityCount: 89, Category: AccreditationQuality},
	{ID: "acc-8", Name: "ICH Q7 Compliant", ShortName: "ICH Q7", FacilityCount: 56, Category: AccreditationQuality},

	{ID: "acc-9", Name: "ISO 14001:2015", ShortName: "ISO 14001", FacilityCount: 63, Category: AccreditationEnvironmental},
	{ID: "acc-10", Name: "ISO 45001:2018", ShortName: "ISO 45001", FacilityCount: 48, Category: AccreditationEnvironmental},
	{ID: "acc-11", Name: "EcoVadis Certified", ShortName: "EcoVadis", FacilityCount: 24, Category: AccreditationEnvironmental},

	{ID: "acc-12", Name: "TGA Approved", ShortName: "TGA", FacilityCount: 29, Category: AccreditationInternational},
	{ID: "acc-13", Name: "Health Canada", ShortName: "HC", FacilityCount: 22, Category: AccreditationInternational},
	{ID: "acc-14", Name: "PMDA Japan", ShortName: "PMDA", FacilityCount: 18, Category: AccreditationInternational},
	{ID: "acc-15", Name: "ANVISA Brazil", ShortName: "ANVISA", FacilityCount: 15, Category: AccreditationInternational},
}

var stateLocations = []StateLocation{
	{ID: "loc-1", Name: "Maharashtra", FacilityCount: 16, Region: RegionWest},
	{ID: "loc-2", Name: "Gujarat", FacilityCount: 12, Region: RegionWest},
	{ID: "loc-3", Name: "Goa", FacilityCount: 1, Region: RegionWest},

	{ID: "loc-4", Name: "Karnataka", FacilityCount: 10, Region: RegionSouth},
	{ID: "loc-5", Name: "Telangana", FacilityCount: 9, Region: RegionSouth},
	{ID: "loc-6", Name: "Tamil Nadu", FacilityCount: 8, Region: RegionSouth},
	{ID: "loc-7", Name: "Andhra Pradesh", FacilityCount: 7, Region: RegionSouth},
	{ID: "loc-8", Name: "Kerala", FacilityCount: 4, Region: RegionSouth},

	{ID: "loc-9", Name: "Uttar Pradesh", FacilityCount: 8, Region: RegionNorth},
	{ID: "loc-10", Name: "Delhi", FacilityCount: 4, Region: RegionNorth},
	{ID: "loc-11", Name: "Haryana", FacilityCount: 4, Region: RegionNorth},
	{ID: "loc-12", Name: "Rajasthan", FacilityCount: 3, Region: RegionNorth},
	{ID: "loc-13", Name: "Punjab", FacilityCount: 2, Region: RegionNorth},
	{ID: "loc-14", Name: "Uttarakhand", FacilityCount: 2, Region: RegionNorth},
	{ID: "loc-15", Name: "Himachal Pradesh", FacilityCount: 2, Region: RegionNorth},
	{ID: "loc-16", Name: "Jammu and Kashmir", FacilityCount: 1, Region: RegionNorth},

	{ID: "loc-17", Name: "Madhya Pradesh", FacilityCount: 5, Region: RegionCentral},
	{ID: "loc-18", Name: "Chhattisgarh", FacilityCount: 2, Region: RegionCentral},

	{ID: "loc-19", Name: "West Bengal", FacilityCount: 3, Region: RegionEast},
	{ID: "loc-20", Name: "Odisha", FacilityCount: 3, Region: RegionEast},
	{ID: "loc-21", Name: "Jharkhand", FacilityCount: 2, Region: RegionEast},
	{ID: "loc-22", Name: "Bihar", FacilityCount: 2, Region: RegionEast},

	{ID: "loc-23", Name: "Assam", FacilityCount: 1, Region: RegionNortheast},
}

// Chemistries returns a copy of the chemistry table.
func Chemistries() []Chemistry { return append([]Chemistry(nil), chemistries...) }

// Accreditations returns a copy of the accreditation table.
func Accreditations() []Accreditation { return append([]Accreditation(nil), accreditations...) }

// StateLocations returns a copy of the state table.
func StateLocations() []StateLocation { return append([]StateLocation(nil), stateLocations...) }

// ChemistryByID looks a chemistry up by id.
func ChemistryByID(id string) (Chemistry, bool) {
	for _, c := range chemistries {
		if c.ID == id {
			return c, true
		}
	}
	return Chemistry{}, false
}

// AccreditationByID looks an accreditation up by id.
func AccreditationByID(id string) (Accreditation, bool) {
	for _, a := range accreditations {
		if a.ID == id {
			return a, true
		}
	}
	return Accreditation{}, false
}

// LocationByID looks a state up by id.
func LocationByID(id string) (StateLocation, bool) {
	for _, l := range stateLocations {
		if l.ID == id {
			return l, true
		}
	}
	return StateLocation{}, false
}

// LocationByName looks a state up by name, ignoring case.
func LocationByName(name string) (StateLocation, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, l := range stateLocations {
		if fold.String(l.Name) == want {
			return l, true
		}
	}
	return StateLocation{}, false
}

// ChemistryCategoryLabel returns the display label of a category.
func ChemistryCategoryLabel(c ChemistryCategory) string { return chemistryCategoryLabels[c] }

// AccreditationCategoryLabel returns the display label of a category.
func AccreditationCategoryLabel(c AccreditationCategory) string {
	return accreditationCategoryLabels[c]
}

// RegionLabel returns the display label of a region.
func RegionLabel(r Region) string { return regionLabels[r] }

// Group is one labelled section of a filter panel.
type Group[T any] struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// ChemistryGroups returns the chemistries grouped by category in panel order.
func ChemistryGroups() []Group[Chemistry] {
	out := make([]Group[Chemistry], 0, len(chemistryCategoryOrder))
	for _, cat := range chemistryCategoryOrder {
		g := Group[Chemistry]{Key: string(cat), Label: chemistryCategoryLabels[cat]}
		for _, c := range chemistries {
			if c.Category == cat {
				g.Items = append(g.Items, c)
			}
		}
		out = append(out, g)
	}
	return out
}

// AccreditationGroups returns the accreditations grouped by category in panel order.
func AccreditationGroups() []Group[Accreditation] {
	out := make([]Group[Accreditation], 0, len(accreditationCategoryOrder))
	for _, cat := range accreditationCategoryOrder {
		g := Group[Accreditation]{Key: string(cat), Label: accreditationCategoryLabels[cat]}
		for _, a := range accreditations {
			if a.Category == cat {
				g.Items = append(g.Items, a)
			}
		}
		out = append(out, g)
	}
	return out
}

// LocationGroups returns the states grouped by region in panel order.
func LocationGroups() []Group[StateLocation] {
	out := make([]Group[StateLocation], 0, len(regionOrder))
	for _, r := range regionOrder {
		g := Group[StateLocation]{Key: string(r), Label: regionLabels[r]}
		for _, l := range stateLocations {
			if l.Region == r {
				g.Items = append(g.Items, l)
			}
		}
		out = append(out, g)
	}
	return out
}
