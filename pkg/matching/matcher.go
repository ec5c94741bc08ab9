package matching

import (
	"strings"

	"github.com/msesoft/zeitreport/pkg/catalog"
)

// Synonym rewrites applied to the normalized label before matching. The
// rewritten term drives the prefix/suffix comparison; the original label still
// drives variant detection. "trcuks" is a recurring typo in the timesheets and
// is kept on purpose.
var synonyms = map[string]string{
	"trucks":   "DTAG",
	"emt dtag": "DTAG",
	"trcuks":   "DTAG",
	"cars":     "MBAG",
	"fuso":     "FUSO",
}

// Substrings marking a label as a maintenance or partner-badge variant of a
// base project, which switches matching to the suffix rule.
var variantMarkers = []string{"amg", "(amg)", "@amg", "@amd", "wartung", "amd"}

const (
	prefixLen = 3
	suffixLen = 4
)

// MatchLabel resolves a free-text project label to a catalog project. It is a
// pure lookup: no accumulator is touched. The second return value is false
// when no catalog entry qualifies.
//
// Matching is first-match-wins over the catalog in seed order: entries may
// share a prefix, so the order is part of the contract.
func MatchLabel(label string, cat *catalog.Catalog) (*catalog.Project, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))

	term := normalized
	if canonical, ok := synonyms[normalized]; ok {
		term = strings.ToLower(canonical)
	}

	// Terms shorter than the prefix length match on the whole term.
	prefix := term
	if len(term) > prefixLen {
		prefix = term[:prefixLen]
	}

	if hasVariantMarker(normalized) {
		return matchVariant(term, prefix, cat)
	}
	return matchBase(prefix, cat)
}

func hasVariantMarker(label string) bool {
	for _, marker := range variantMarkers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

// matchVariant selects the first project sharing the prefix whose name ends
// with the label's suffix. Partner-badge suffixes ("@amg", "@amd", "...amg)")
// are collapsed to the plain "amg" suffix first.
func matchVariant(term string, prefix string, cat *catalog.Catalog) (*catalog.Project, bool) {
	suffix := term
	if len(term) > suffixLen {
		suffix = term[len(term)-suffixLen:]
	}
	if suffix == "@amg" || suffix == "@amd" || strings.HasSuffix(suffix, "amg)") {
		suffix = "amg"
	}

	for _, project := range cat.Projects() {
		name := strings.ToLower(strings.TrimSpace(project.Name))
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			return project, true
		}
	}
	return nil, false
}

// matchBase selects the first project sharing the prefix that is not a
// maintenance entry.
func matchBase(prefix string, cat *catalog.Catalog) (*catalog.Project, bool) {
	for _, project := range cat.Projects() {
		name := strings.ToLower(strings.TrimSpace(project.Name))
		if strings.HasPrefix(name, prefix) && !strings.HasSuffix(name, "wartung") {
			return project, true
		}
	}
	return nil, false
}
