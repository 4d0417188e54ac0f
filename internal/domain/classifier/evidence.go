package classifier

import (
	"strings"

	"github.com/quantfold/fedgauge/internal/domain/model"
)

// QuoteEvidence ties one matched phrase to a readable quote from the
// original (non-normalized) text.
type QuoteEvidence struct {
	Keyword   string
	Direction model.Direction
	Dimension model.Dimension
	Quote     string
}

// ExtractQuote pulls a context window around the first case-insensitive
// occurrence of term in text, snapped to word boundaries and marked with
// ellipses where the window was clipped. Returns "" when the term does not
// occur.
func (c *KeywordClassifier) ExtractQuote(text, term string) string {
	return extractQuote(text, term, c.quoteContextChars)
}

func extractQuote(text, term string, contextChars int) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(term))
	if idx == -1 {
		return ""
	}

	start := idx - contextChars/2
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + contextChars/2
	if end > len(text) {
		end = len(text)
	}

	// Snap to word boundaries.
	if start > 0 {
		if space := strings.LastIndex(text[:start], " "); space != -1 {
			start = space + 1
		}
	}
	if end < len(text) {
		if space := strings.Index(text[end:], " "); space != -1 {
			end += space
		}
	}

	quote := strings.TrimSpace(text[start:end])
	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(text) {
		suffix = "..."
	}
	return prefix + quote + suffix
}

// keywordDimension decides which axis a matched phrase belongs to by
// dictionary membership; anything outside the balance-sheet dictionaries
// reads as rate policy.
func (c *KeywordClassifier) keywordDimension(term string) model.Dimension {
	lower := strings.ToLower(term)
	if _, ok := c.bsHawkish[lower]; ok {
		return model.DimensionBalanceSheet
	}
	if _, ok := c.bsDovish[lower]; ok {
		return model.DimensionBalanceSheet
	}
	return model.DimensionPolicy
}

// ClassifyWithEvidence classifies text and returns a quote for every
// matched phrase, hawkish matches first. Phrases whose quote cannot be
// located in the original text are skipped.
func (c *KeywordClassifier) ClassifyWithEvidence(text string) (Result, []QuoteEvidence) {
	result := c.Classify(text)

	var evidence []QuoteEvidence
	for _, kw := range result.HawkishMatches {
		if quote := c.ExtractQuote(text, kw); quote != "" {
			evidence = append(evidence, QuoteEvidence{
				Keyword:   kw,
				Direction: model.DirectionHawkish,
				Dimension: c.keywordDimension(kw),
				Quote:     quote,
			})
		}
	}
	for _, kw := range result.DovishMatches {
		if quote := c.ExtractQuote(text, kw); quote != "" {
			evidence = append(evidence, QuoteEvidence{
				Keyword:   kw,
				Direction: model.DirectionDovish,
				Dimension: c.keywordDimension(kw),
				Quote:     quote,
			})
		}
	}
	return result, evidence
}
