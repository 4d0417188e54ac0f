// Package classifier scores raw text on the hawkish/dovish scale using
// weighted phrase dictionaries. Scores run -5.0 (very dovish) to +5.0
// (very hawkish) across two dimensions: interest-rate policy and balance
// sheet (QT/QE). The keyword classifier is deterministic and never fails,
// which makes it the terminal backend of every classification chain.
package classifier

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/quantfold/fedgauge/internal/domain/model"
)

// Default classifier configuration constants.
const (
	defaultHawkishThreshold  = 1.5
	defaultDovishThreshold   = -1.5
	defaultPolicyBlendWeight = 0.7 // policy share; balance sheet gets the rest
	defaultQuoteContextChars = 120
	scoreScale               = 5.0
	confidenceDivisor        = 5.0
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Result is the outcome of a classification.
type Result struct {
	Score             float64
	Label             model.Label
	Confidence        float64
	HawkishMatches    []string
	DovishMatches     []string
	SnippetCount      int
	PolicyScore       float64
	PolicyLabel       model.Label
	BalanceSheetScore float64
	BalanceSheetLabel model.Label
}

// Option applies a configuration option to the KeywordClassifier.
type Option func(*KeywordClassifier)

// WithThresholds sets the hawkish/dovish label cutoffs.
func WithThresholds(hawkish, dovish float64) Option {
	return func(c *KeywordClassifier) {
		if hawkish > dovish {
			c.hawkishThreshold = hawkish
			c.dovishThreshold = dovish
		}
	}
}

// WithPolicyBlendWeight sets the policy share of the overall score.
// The balance-sheet dimension contributes the remainder.
func WithPolicyBlendWeight(w float64) Option {
	return func(c *KeywordClassifier) {
		if w >= 0 && w <= 1 {
			c.policyBlendWeight = w
		}
	}
}

// WithQuoteContext sets the evidence quote window width in characters.
func WithQuoteContext(chars int) Option {
	return func(c *KeywordClassifier) {
		if chars > 0 {
			c.quoteContextChars = chars
		}
	}
}

// WithDictionaries replaces all four term dictionaries.
func WithDictionaries(policyHawkish, policyDovish, bsHawkish, bsDovish Dictionary) Option {
	return func(c *KeywordClassifier) {
		c.policyHawkish = policyHawkish.clone()
		c.policyDovish = policyDovish.clone()
		c.bsHawkish = bsHawkish.clone()
		c.bsDovish = bsDovish.clone()
	}
}

// KeywordClassifier implements dictionary-based dual-dimension scoring.
type KeywordClassifier struct {
	policyHawkish Dictionary
	policyDovish  Dictionary
	bsHawkish     Dictionary
	bsDovish      Dictionary

	hawkishThreshold  float64
	dovishThreshold   float64
	policyBlendWeight float64
	quoteContextChars int
}

// New creates a keyword classifier with the built-in dictionaries.
func New(opts ...Option) *KeywordClassifier {
	c := &KeywordClassifier{
		policyHawkish:     policyHawkishTerms,
		policyDovish:      policyDovishTerms,
		bsHawkish:         balanceSheetHawkishTerms,
		bsDovish:          balanceSheetDovishTerms,
		hawkishThreshold:  defaultHawkishThreshold,
		dovishThreshold:   defaultDovishThreshold,
		policyBlendWeight: defaultPolicyBlendWeight,
		quoteContextChars: defaultQuoteContextChars,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// label applies the configured cutoffs to a score.
func (c *KeywordClassifier) label(score float64) model.Label {
	return model.ScoreLabel(score, c.hawkishThreshold, c.dovishThreshold)
}

// normalize lowercases and collapses whitespace for matching.
func normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// round3 rounds to three decimal places, the store's precision.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// scoreDimension scores normalized text against one hawkish/dovish
// dictionary pair. Returns the raw score, confidence, and matched phrases.
func scoreDimension(normalized string, hawkish, dovish Dictionary) (raw, confidence float64, hawkMatches, doveMatches []string) {
	var hawkScore, doveScore float64

	for term, weight := range hawkish {
		if count := strings.Count(normalized, term); count > 0 {
			hawkScore += weight * float64(count)
			hawkMatches = append(hawkMatches, term)
		}
	}
	for term, weight := range dovish {
		if count := strings.Count(normalized, term); count > 0 {
			doveScore += weight * float64(count)
			doveMatches = append(doveMatches, term)
		}
	}

	total := hawkScore + doveScore
	if total == 0 {
		return 0, 0, nil, nil
	}

	raw = scoreScale * (hawkScore - doveScore) / total
	confidence = math.Min(total/confidenceDivisor, 1.0)
	sort.Strings(hawkMatches)
	sort.Strings(doveMatches)
	return raw, confidence, hawkMatches, doveMatches
}

// neutralResult is the well-defined zero outcome for phrase-free input.
func neutralResult(snippetCount int) Result {
	return Result{
		Label:             model.LabelNeutral,
		PolicyLabel:       model.LabelNeutral,
		BalanceSheetLabel: model.LabelNeutral,
		SnippetCount:      snippetCount,
	}
}

// Classify scores a single text snippet. It always returns a result; empty
// or phrase-free text yields an all-zero Neutral result with confidence 0.
func (c *KeywordClassifier) Classify(text string) Result {
	normalized := normalize(text)

	policyScore, policyConf, policyHawk, policyDove := scoreDimension(normalized, c.policyHawkish, c.policyDovish)
	bsScore, bsConf, bsHawk, bsDove := scoreDimension(normalized, c.bsHawkish, c.bsDovish)

	// No balance-sheet phrases means no balance-sheet signal; the overall
	// score is the policy score alone rather than diluted by an absent axis.
	overall := policyScore
	if bsConf > 0 {
		overall = c.policyBlendWeight*policyScore + (1-c.policyBlendWeight)*bsScore
	}

	if policyConf+bsConf == 0 {
		return neutralResult(1)
	}

	overallConf := policyConf
	if bsConf > 0 {
		overallConf = (policyConf + bsConf) / 2.0
	}
	overallConf = math.Min(overallConf, 1.0)

	return Result{
		Score:             round3(overall),
		Label:             c.label(overall),
		Confidence:        round3(overallConf),
		HawkishMatches:    mergeSorted(policyHawk, bsHawk),
		DovishMatches:     mergeSorted(policyDove, bsDove),
		SnippetCount:      1,
		PolicyScore:       round3(policyScore),
		PolicyLabel:       c.label(policyScore),
		BalanceSheetScore: round3(bsScore),
		BalanceSheetLabel: c.label(bsScore),
	}
}

// ClassifyMany scores each snippet independently and aggregates with a
// confidence-weighted average per dimension. Zero snippets yields the
// all-zero Neutral result with SnippetCount 0.
func (c *KeywordClassifier) ClassifyMany(snippets []string) Result {
	if len(snippets) == 0 {
		return neutralResult(0)
	}

	results := make([]Result, 0, len(snippets))
	for _, s := range snippets {
		results = append(results, c.Classify(s))
	}

	var totalConf float64
	for _, r := range results {
		totalConf += r.Confidence
	}

	var avgScore, avgPolicy, avgBS float64
	if totalConf > 0 {
		for _, r := range results {
			avgScore += r.Score * r.Confidence
			avgPolicy += r.PolicyScore * r.Confidence
			avgBS += r.BalanceSheetScore * r.Confidence
		}
		avgScore /= totalConf
		avgPolicy /= totalConf
		avgBS /= totalConf
	}

	var allHawkish, allDovish []string
	for _, r := range results {
		allHawkish = append(allHawkish, r.HawkishMatches...)
		allDovish = append(allDovish, r.DovishMatches...)
	}

	avgConf := totalConf / float64(len(results))

	return Result{
		Score:             round3(avgScore),
		Label:             c.label(avgScore),
		Confidence:        round3(math.Min(avgConf, 1.0)),
		HawkishMatches:    mergeSorted(allHawkish),
		DovishMatches:     mergeSorted(allDovish),
		SnippetCount:      len(snippets),
		PolicyScore:       round3(avgPolicy),
		PolicyLabel:       c.label(avgPolicy),
		BalanceSheetScore: round3(avgBS),
		BalanceSheetLabel: c.label(avgBS),
	}
}

// mergeSorted unions string slices, deduplicates, and sorts.
func mergeSorted(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
