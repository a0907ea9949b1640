package api

import (
	"sync"

	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/feed"
)

type GeneratorInterface interface {
	Run(feedType string, c *corpus.Corpus) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

// Handler serves the built corpus. The corpus pointer is swapped under
// the mutex on rebuild, so readers always see a complete build.
type Handler struct {
	cfg       *cfg.Cfg
	builder   *corpus.Builder
	generator GeneratorInterface

	mu     sync.RWMutex
	corpus *corpus.Corpus
}
