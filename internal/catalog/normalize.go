package catalog

import (
	"regexp"
	"strings"
)

// issuerAliases maps issuer spellings seen in the wild to canonical names.
var issuerAliases = map[string]string{
	"amex":             "American Express",
	"american express": "American Express",
	"americanexpress":  "American Express",
	"chase":            "Chase",
	"chase bank":       "Chase",
	"jpmorgan chase":   "Chase",
	"capital one":      "Capital One",
	"capitalone":       "Capital One",
	"cap one":          "Capital One",
	"citi":             "Citi",
	"citibank":         "Citi",
	"citigroup":        "Citi",
	"discover":         "Discover",
	"bank of america":  "Bank of America",
	"bofa":             "Bank of America",
	"wells fargo":      "Wells Fargo",
	"us bank":          "US Bank",
	"usbank":           "US Bank",
	"barclays":         "Barclays",
	"bilt":             "Bilt",
	"bilt rewards":     "Bilt",
}

// nameAbbreviations expands community shorthand for card names. Keys are
// matched as whole tokens of the lower-cased name.
var nameAbbreviations = map[string]string{
	"csp":  "sapphire preferred",
	"csr":  "sapphire reserve",
	"cfu":  "freedom unlimited",
	"cff":  "freedom flex",
	"bcp":  "blue cash preferred",
	"bce":  "blue cash everyday",
	"vx":   "venture x",
	"plat": "platinum",
}

// nameRemovePatterns strips generic words and trademark symbols from card
// names before comparison.
var nameRemovePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcredit\s*card\b`),
	regexp.MustCompile(`(?i)\bcard\b`),
	regexp.MustCompile(`®`),
	regexp.MustCompile(`™`),
	regexp.MustCompile(`(?i)\bfrom\s+`),
	regexp.MustCompile(`(?i)\bthe\b`),
}

// issuerTokens are issuer spellings removed from card names when simplifying.
var issuerTokens = []string{
	"american express",
	"amex",
	"chase",
	"capital one",
	"capitalone",
	"citi",
	"citibank",
	"discover",
	"bank of america",
	"wells fargo",
	"us bank",
	"barclays",
	"bilt",
}

var (
	issuerTokenPatterns []*regexp.Regexp
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

func init() {
	issuerTokenPatterns = make([]*regexp.Regexp, len(issuerTokens))
	for i, tok := range issuerTokens {
		issuerTokenPatterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `\b`)
	}
}

// NormalizeIssuer maps an issuer name to its canonical form. Unknown issuers
// are returned trimmed but otherwise untouched.
func NormalizeIssuer(issuer string) string {
	if issuer == "" {
		return issuer
	}
	if canonical, ok := issuerAliases[strings.ToLower(strings.TrimSpace(issuer))]; ok {
		return canonical
	}
	return strings.TrimSpace(issuer)
}

// SimplifyCardName strips the issuer and generic words from a card name:
// "Chase Sapphire Preferred Credit Card" becomes "Sapphire Preferred".
// If stripping would remove everything, the trimmed original is returned.
func SimplifyCardName(name, issuer string) string {
	if name == "" {
		return name
	}

	result := strings.TrimSpace(name)
	for _, re := range nameRemovePatterns {
		result = re.ReplaceAllString(result, "")
	}

	if issuer != "" {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(issuer) + `\b`)
		result = re.ReplaceAllString(result, "")
	}
	for _, re := range issuerTokenPatterns {
		result = re.ReplaceAllString(result, "")
	}

	result = strings.TrimSpace(whitespacePattern.ReplaceAllString(result, " "))
	if result == "" {
		return strings.TrimSpace(name)
	}
	return result
}

// ExpandAbbreviations replaces shorthand tokens ("csp") in a lower-cased
// name with their full card names ("sapphire preferred").
func ExpandAbbreviations(name string) string {
	if name == "" {
		return name
	}
	fields := strings.Fields(name)
	expanded := false
	for i, f := range fields {
		if full, ok := nameAbbreviations[f]; ok {
			fields[i] = full
			expanded = true
		}
	}
	if !expanded {
		return name
	}
	return strings.Join(fields, " ")
}
