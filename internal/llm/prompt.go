package llm

import "strings"

// SystemPrompt casts the model as a data analyst and pins down the output
// contract. Kept stable so replies stay machine-parseable across providers.
const SystemPrompt = `You are a Credit Card Data Analyst specializing in extracting structured information from credit card marketing materials and reviews.

Your job is to:
1. Ignore marketing fluff, ads, and promotional language
2. Extract only factual, quantifiable data about the credit card
3. Be precise with numbers (fees, points, spend requirements)
4. Convert time periods to days (3 months = 90 days)

Always respond with valid JSON only. No explanations, no markdown formatting.`

const extractionPromptHeader = `Analyze the following credit card information and extract structured data.

Extract these fields:
- name: Full card name (e.g., "The Platinum Card from American Express")
- issuer: Card issuer (American Express, Chase, Citi, Capital One, Bank of America, Discover, Wells Fargo, US Bank, Barclays, or Other)
- annual_fee: Annual fee in dollars as integer (0 if no fee, -1 if unknown)
- signup_bonus: Current sign-up bonus offer (null if none mentioned)
  - points_or_cash: The bonus value with unit (e.g., "80,000 points", "$200 cash back")
  - spend_requirement: Required spend amount in dollars
  - time_period_days: Days to meet requirement (convert months: 3 months = 90 days)
- credits: List of recurring credits/benefits with dollar value
  - name: Credit name (e.g., "Uber Credit", "Airline Fee Credit")
  - amount: Dollar amount per occurrence
  - frequency: "monthly", "annual", "semi-annual", or "quarterly"
  - notes: Any conditions or limitations (optional)

Return JSON matching this exact schema:
{
  "name": "string",
  "issuer": "string",
  "annual_fee": number,
  "signup_bonus": {
    "points_or_cash": "string",
    "spend_requirement": number,
    "time_period_days": number
  } | null,
  "credits": [
    {
      "name": "string",
      "amount": number,
      "frequency": "string",
      "notes": "string or null"
    }
  ]
}

Content to analyze:
---
`

const extractionPromptFooter = `
---

Respond with JSON only:`

// DefaultMaxContentChars caps how much page content is embedded in the
// prompt. Fees and bonuses tend to appear early, so the prefix is kept.
const DefaultMaxContentChars = 15000

// BuildExtractionPrompt embeds the page content into the task prompt,
// truncating to maxContentChars while preserving the prefix.
func BuildExtractionPrompt(content string, maxContentChars int) string {
	if maxContentChars <= 0 {
		maxContentChars = DefaultMaxContentChars
	}
	if len(content) > maxContentChars {
		content = content[:maxContentChars] + "\n\n[Content truncated...]"
	}

	var b strings.Builder
	b.Grow(len(extractionPromptHeader) + len(content) + len(extractionPromptFooter))
	b.WriteString(extractionPromptHeader)
	b.WriteString(content)
	b.WriteString(extractionPromptFooter)
	return b.String()
}
