package inat

import (
	"sort"
	"strings"
)

// iconicTaxa maps the iNaturalist iconic taxon IDs to their names.
// Iconic taxa are the coarse top-level groupings the site uses for
// filtering; the set is fixed upstream.
var iconicTaxa = map[int64]string{
	0:     "Unknown",
	1:     "Animalia",
	3:     "Aves",
	20978: "Amphibia",
	26036: "Reptilia",
	40151: "Mammalia",
	47178: "Actinopterygii",
	47115: "Mollusca",
	47119: "Arachnida",
	47158: "Insecta",
	47126: "Plantae",
	47170: "Fungi",
	48222: "Chromista",
	47686: "Protozoa",
}

// IconicTaxonID returns the numeric ID of an iconic taxon by its name.
// The lookup is case-insensitive. The second value is false for names
// that are not iconic taxa.
func IconicTaxonID(name string) (int64, bool) {
	for id, n := range iconicTaxa {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return 0, false
}

// IconicTaxonName returns the canonical name for an iconic taxon ID.
func IconicTaxonName(id int64) (string, bool) {
	name, ok := iconicTaxa[id]
	return name, ok
}

// IconicTaxaNames returns all iconic taxon names, sorted.
func IconicTaxaNames() []string {
	res := make([]string, 0, len(iconicTaxa))
	for _, name := range iconicTaxa {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
