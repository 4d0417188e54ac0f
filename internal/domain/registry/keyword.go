package registry

import (
	"context"

	"github.com/quantfold/fedgauge/internal/domain/classifier"
)

// KeywordBackend adapts the deterministic keyword classifier to the
// Backend contract. Its methods never return an error, which is what lets
// the router promise a result for every input.
type KeywordBackend struct {
	clf *classifier.KeywordClassifier
}

// NewKeywordBackend wraps a keyword classifier as a registerable backend.
func NewKeywordBackend(clf *classifier.KeywordClassifier) *KeywordBackend {
	return &KeywordBackend{clf: clf}
}

// ClassifyText scores a single text.
func (b *KeywordBackend) ClassifyText(_ context.Context, text string) (classifier.Result, error) {
	return b.clf.Classify(text), nil
}

// ClassifyTextWithEvidence scores a single text with quote evidence.
func (b *KeywordBackend) ClassifyTextWithEvidence(_ context.Context, text string) (classifier.Result, []classifier.QuoteEvidence, error) {
	result, evidence := b.clf.ClassifyWithEvidence(text)
	return result, evidence, nil
}

// ClassifySnippets scores a snippet batch.
func (b *KeywordBackend) ClassifySnippets(_ context.Context, snippets []string) (classifier.Result, error) {
	return b.clf.ClassifyMany(snippets), nil
}
