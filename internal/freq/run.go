package freq

import (
	"context"
	"fmt"

	"github.com/xhy51/wordfreq/internal/logger"
)

// Source supplies the text a run analyses.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// Result is the outcome of one pipeline run.
type Result struct {
	Tokens     int     // tokens produced by the tokenizer
	Kept       int     // tokens surviving the stopword filter
	Unfiltered []Entry // distribution before filtering
	Ranked     []Entry // distribution after filtering
}

// Option configures a run.
type Option func(*options)

type options struct {
	stem bool
}

// WithStemming counts the English stem of each kept token instead of the
// token itself.
func WithStemming() Option {
	return func(o *options) { o.stem = true }
}

// Run reads text from src, tokenizes, filters and counts it. Nothing is
// shared between runs.
func Run(ctx context.Context, src Source, stop Stopwords, opts ...Option) (*Result, error) {
	text, err := src.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Analyze(text, stop, opts...), nil
}

// Analyze runs the pipeline over text that is already in memory.
func Analyze(text string, stop Stopwords, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tokens := Tokenize(text)
	logger.Debug("tokenized %d bytes into %d tokens", len(text), len(tokens))

	kept := Filter(tokens, stop)
	logger.Debug("stopword filter kept %d of %d tokens", len(kept), len(tokens))

	if o.stem {
		kept = stemAll(kept)
	}

	res := &Result{
		Tokens:     len(tokens),
		Kept:       len(kept),
		Unfiltered: Count(tokens).Ranked(),
		Ranked:     Count(kept).Ranked(),
	}
	logger.Debug("ranked %d distinct tokens", len(res.Ranked))
	return res
}
