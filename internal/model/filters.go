package model

import (
	"slices"
	"strings"
)

// CompanyFilters is the shared filter set applied to every stats aggregate.
// All facets combine with AND. Within Chemistries and Certifications a company
// must match every listed code.
type CompanyFilters struct {
	Country string
	State   string
	City    string
	// Chemistries holds process type codes, e.g. "HYDROGENATION".
	Chemistries []string
	// Certifications holds certification type codes, e.g. "ISO9001".
	Certifications []string
}

// NormalizeCompanyFilters trims free-text fields and normalizes code lists.
// Code lists accept repeated values as well as comma separated values.
func NormalizeCompanyFilters(country, state, city string, chemistries, certifications []string) CompanyFilters {
	return CompanyFilters{
		Country:        strings.TrimSpace(country),
		State:          strings.TrimSpace(state),
		City:           strings.TrimSpace(city),
		Chemistries:    NormalizeCodes(chemistries),
		Certifications: NormalizeCodes(certifications),
	}
}

// NormalizeCodes splits on commas, trims, upper-cases and de-duplicates while
// keeping first-seen order. It returns nil for an empty result.
func NormalizeCodes(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, item := range values {
		for _, p := range strings.Split(item, ",") {
			p = strings.ToUpper(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// HasAny reports whether at least one facet is set.
func (f CompanyFilters) HasAny() bool {
	return f.Country != "" || f.State != "" || f.City != "" ||
		len(f.Chemistries) > 0 || len(f.Certifications) > 0
}

// CacheKey returns a stable key; code order does not affect results so it is sorted.
func (f CompanyFilters) CacheKey() string {
	chem := slices.Clone(f.Chemistries)
	slices.Sort(chem)
	cert := slices.Clone(f.Certifications)
	slices.Sort(cert)

	var b strings.Builder
	b.WriteString("country=")
	b.WriteString(strings.ToLower(f.Country))
	b.WriteString("|state=")
	b.WriteString(strings.ToLower(f.State))
	b.WriteString("|city=")
	b.WriteString(strings.ToLower(f.City))
	b.WriteString("|chem=")
	b.WriteString(strings.Join(chem, ","))
	b.WriteString("|cert=")
	b.WriteString(strings.Join(cert, ","))
	return b.String()
}
