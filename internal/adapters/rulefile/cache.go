package rulefile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCachePath is the on-disk graph cache, per the rule-file format's
// cache-file convention: a single file in the current working directory.
const DefaultCachePath = ".graph_cache"

// cacheIsValid reports whether cachePath both exists and is strictly newer
// than ruleFilePath. Any stat failure (missing cache, missing rule file) is
// treated as "not valid" rather than propagated — a missing rule file is
// reported properly once the caller falls through to parsing it.
func cacheIsValid(ruleFilePath, cachePath string) bool {
	ruleInfo, err := os.Stat(ruleFilePath)
	if err != nil {
		return false
	}
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	return cacheInfo.ModTime().After(ruleInfo.ModTime())
}

func loadFromCache(cachePath string) (*domain.Graph, error) {
	buf, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMissing
		}
		return nil, zerr.Wrap(err, "read graph cache")
	}
	return domain.DecodeGraph(buf)
}

// persist writes g's encoded form to cachePath via a temp-file-then-rename
// publish, so a concurrent reader never observes a partially written cache.
// The temp name is suffixed with a content hash of the encoded bytes rather
// than a pid or counter, keeping two concurrent persists of different graphs
// from colliding while staying deterministic for a given payload (two
// persists of the same graph use the same temp name).
func persist(g *domain.Graph, cachePath string) error {
	buf, err := g.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(cachePath)
	sum := xxhash.Sum64(buf)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%x.tmp", filepath.Base(cachePath), sum))

	if err := os.WriteFile(tmpPath, buf, 0o644); err != nil {
		return zerr.Wrap(err, "write temporary graph cache")
	}
	if err := os.Rename(tmpPath, cachePath); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "publish graph cache")
	}
	return nil
}

// PersistAsync encodes and atomically publishes g to cachePath on a
// background goroutine and returns at once, so the persist runs alongside
// the build: the first build of a tree pays only the parse cost up front,
// and the next invocation finds a fresh cache already in place.
func PersistAsync(g *domain.Graph, cachePath string, onError func(error)) {
	go func() {
		if err := persist(g, cachePath); err != nil && onError != nil {
			onError(err)
		}
	}()
}
