package catalog

import (
	"fmt"
	"strings"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// DefaultEnrichConfidence is the floor used by the extraction pipeline.
const DefaultEnrichConfidence = 0.7

// Enrich matches the card against the built-in library and fills in catalog
// credits the extraction missed. The extracted data always wins: existing
// credits are never overwritten or removed, and the annual fee is never
// replaced by the template's (the user's actual fee may differ through
// retention offers or waivers).
//
// The returned record is a deep copy sharing no mutable structure with the
// input or the catalog. When no template clears minConfidence the input is
// returned unchanged with a zero MatchResult.
func Enrich(card *entity.CardData, minConfidence float64) (*entity.CardData, entity.MatchResult) {
	return defaultMatcher.Enrich(card, minConfidence)
}

// Enrich is the per-matcher form of the package-level Enrich.
func (m *Matcher) Enrich(card *entity.CardData, minConfidence float64) (*entity.CardData, entity.MatchResult) {
	match := m.Match(card.Name, card.Issuer, minConfidence)
	if !match.Matched() {
		return card, match
	}

	enriched := card.Clone()

	existing := make(map[string]struct{}, len(card.Credits))
	for _, c := range card.Credits {
		existing[strings.ToLower(c.Name)] = struct{}{}
	}

	for _, tc := range match.Template.Credits {
		if _, ok := existing[strings.ToLower(tc.Name)]; ok {
			continue
		}
		enriched.Credits = append(enriched.Credits, tc)
	}

	return enriched, match
}

// EnrichmentSummary describes what enrichment changed, for logging.
func EnrichmentSummary(original, enriched *entity.CardData, match entity.MatchResult) string {
	if !match.Matched() {
		return "no enrichment (no library match found)"
	}
	added := len(enriched.Credits) - len(original.Credits)
	if added == 0 {
		return fmt.Sprintf("matched %q (%d%% match) but no new credits to add",
			match.Template.Name, int(match.Confidence*100))
	}
	return fmt.Sprintf("enriched from %q (%d%% match): added %d credit(s)",
		match.Template.Name, int(match.Confidence*100), added)
}
