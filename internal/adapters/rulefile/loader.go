package rulefile

import (
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
)

// Loader implements ports.GraphLoader: it decides between the on-disk cache
// and a fresh parse of the rule file, per the cache-validity rule (the cache
// is used only when it is strictly newer than the rule file). When it falls
// through to a fresh parse, it kicks off a background re-persist so the next
// invocation finds an up-to-date cache waiting for it.
type Loader struct {
	CachePath string
	Logger    ports.Logger
}

// NewLoader returns a Loader using DefaultCachePath.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{CachePath: DefaultCachePath, Logger: logger}
}

// Load returns the Graph for ruleFilePath, preferring a valid cache.
func (l *Loader) Load(ruleFilePath string) (*domain.Graph, error) {
	g, fresh, err := l.load(ruleFilePath)
	if err != nil {
		return nil, err
	}
	if fresh {
		PersistAsync(g, l.CachePath, func(err error) {
			if l.Logger != nil {
				l.Logger.Warn("background cache persist failed: " + err.Error())
			}
		})
	}
	return g, nil
}

// LoadForBuild is like Load but also reports whether the graph came from a
// fresh parse (true) or the cache (false), and never triggers a background
// persist itself — it is the caller's turn to decide when that happens.
func (l *Loader) LoadForBuild(ruleFilePath string) (g *domain.Graph, freshlyParsed bool, err error) {
	return l.load(ruleFilePath)
}

func (l *Loader) load(ruleFilePath string) (*domain.Graph, bool, error) {
	if cacheIsValid(ruleFilePath, l.CachePath) {
		g, err := loadFromCache(l.CachePath)
		if err == nil {
			return g, false, nil
		}
		// A cache that exists but fails to decode is a fatal condition per
		// the cache error kinds — it is not silently treated as a cache miss.
		return nil, false, err
	}

	lines, err := readLines(ruleFilePath)
	if err != nil {
		return nil, false, err
	}
	parsed, err := parseLines(lines)
	if err != nil {
		return nil, false, err
	}
	g, err := domain.BuildGraph(parsed.Rules, parsed.Phony)
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}
