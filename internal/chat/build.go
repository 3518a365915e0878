package chat

import (
	"log/slog"

	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/fuzzy"
	"github.com/albapepper/scoracle-chat/internal/nlp"
	"github.com/albapepper/scoracle-chat/internal/query"
	"github.com/albapepper/scoracle-chat/internal/render"
	"github.com/albapepper/scoracle-chat/internal/vocab"
)

// Options tune the pipeline. Zero values select package defaults.
type Options struct {
	Tagger               nlp.Tagger
	Picker               render.Picker
	PlayerMatchLimit     int
	PlayerMatchThreshold int
	StatMatchThreshold   int
	TeamMatchThreshold   int
}

// New assembles an Engine over store and v.
func New(store *dataset.Store, v *vocab.Vocabulary, opts Options, logger *slog.Logger) *Engine {
	if opts.Tagger == nil {
		opts.Tagger = nlp.ProseTagger{}
	}
	ex := nlp.NewExtractor(
		opts.Tagger,
		fuzzy.NewPlayerMatcher(store.Names(), opts.PlayerMatchLimit, opts.PlayerMatchThreshold),
		fuzzy.NewStatMatcher(v, opts.StatMatchThreshold),
		store.Teams(),
		opts.TeamMatchThreshold,
		logger,
	)
	return NewEngine(ex, query.New(store, v, opts.TeamMatchThreshold), render.New(opts.Picker), logger)
}
