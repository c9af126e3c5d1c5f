package catalog

import (
	"strings"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// DefaultMinConfidence is the floor below which a match is discarded.
const DefaultMinConfidence = 0.6

// Matcher scores extracted (name, issuer) pairs against a template catalog.
// It precomputes normalized forms once; matching itself is read-only and
// safe for concurrent use.
type Matcher struct {
	entries []matchEntry
}

type matchEntry struct {
	tmpl       *entity.CardTemplate
	issuer     string // normalized, lower-cased
	name       string // lower-cased raw name
	simplified string // lower-cased simplified name
	keyWords   []string
}

// NewMatcher builds a matcher over the given templates, preserving their
// order for tie-breaking.
func NewMatcher(templates []entity.CardTemplate) *Matcher {
	m := &Matcher{entries: make([]matchEntry, len(templates))}
	for i := range templates {
		t := &templates[i]
		simplified := strings.ToLower(SimplifyCardName(t.Name, t.Issuer))
		m.entries[i] = matchEntry{
			tmpl:       t,
			issuer:     strings.ToLower(NormalizeIssuer(t.Issuer)),
			name:       strings.ToLower(t.Name),
			simplified: simplified,
			keyWords:   strings.Fields(simplified),
		}
	}
	return m
}

var defaultMatcher = NewMatcher(Library)

// Match scores name+issuer against the built-in library.
func Match(name, issuer string, minConfidence float64) entity.MatchResult {
	return defaultMatcher.Match(name, issuer, minConfidence)
}

// Match returns the best-scoring template that clears minConfidence, or a
// zero MatchResult. Issuer equality is a hard filter; templates under a
// different issuer are never considered.
//
// Confidence tiers, first tier hit per template, best across templates:
//
//	1.0        exact (or abbreviation-expanded) name match
//	0.9        simplified names equal, with or without expansion
//	0.75-0.85  at least 80% of the template's key words appear in the name
//	0.65-0.75  at least 60% appear and the template has 2+ key words
func (m *Matcher) Match(name, issuer string, minConfidence float64) entity.MatchResult {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	nameExpanded := ExpandAbbreviations(nameLower)
	issuerNorm := strings.ToLower(NormalizeIssuer(issuer))
	simplified := strings.ToLower(SimplifyCardName(name, issuer))
	simplifiedExpanded := ExpandAbbreviations(simplified)

	var best entity.MatchResult

	for i := range m.entries {
		e := &m.entries[i]
		if e.issuer != issuerNorm {
			continue
		}

		if nameLower == e.name || nameExpanded == e.name {
			return entity.MatchResult{TemplateID: e.tmpl.ID, Confidence: 1.0, Template: e.tmpl}
		}

		if simplified != "" && (simplified == e.simplified || simplifiedExpanded == e.simplified) {
			if 0.9 > best.Confidence {
				best = entity.MatchResult{TemplateID: e.tmpl.ID, Confidence: 0.9, Template: e.tmpl}
			}
			continue
		}

		if len(e.keyWords) == 0 {
			continue
		}
		matching := 0
		for _, w := range e.keyWords {
			if strings.Contains(nameLower, w) || strings.Contains(nameExpanded, w) {
				matching++
			}
		}
		ratio := float64(matching) / float64(len(e.keyWords))

		var confidence float64
		switch {
		case ratio >= 0.8:
			confidence = 0.75 + (ratio-0.8)*0.5 // 0.75-0.85
		case ratio >= 0.6 && len(e.keyWords) >= 2:
			confidence = 0.65 + (ratio-0.6)*0.5 // 0.65-0.75
		default:
			continue
		}
		if confidence > best.Confidence {
			best = entity.MatchResult{TemplateID: e.tmpl.ID, Confidence: confidence, Template: e.tmpl}
		}
	}

	if best.Confidence >= minConfidence {
		return best
	}
	return entity.MatchResult{}
}
