package vlqcache

import (
	"fmt"
	"io"
	"slices"

	"github.com/blukai/vlq"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/phuslu/log"
)

type inputKey uint64

func makeInputKey(s string) inputKey {
	return inputKey(xxhash.Sum64String(s))
}

type entry struct {
	// input is kept to tell hash collisions apart from hits
	input  string
	values []int32
}

// Cache memoizes vlq.Decode. source map mappings repeat the same few
// segments over and over (think "AAAA", "AACA"), so decoding them once pays
// off on large maps.
type Cache struct {
	entries *lru.Cache[inputKey, entry]

	logger *log.Logger
}

func New(size int, logger *log.Logger) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid cache size (got %d; want > 0)", size)
	}

	entries, err := lru.New[inputKey, entry](size)
	if err != nil {
		return nil, fmt.Errorf("could not construct lru: %w", err)
	}

	// if logger is nil (which might be true in tests) => use default, but
	// silenced logger
	if logger == nil {
		tmp := log.DefaultLogger
		logger = &tmp
		logger.Writer = &log.IOWriter{Writer: io.Discard}
	}

	return &Cache{
		entries: entries,
		logger:  logger,
	}, nil
}

// Decode is vlq.Decode backed by the cache. failures are not cached. the
// returned slice is owned by the caller.
func (c *Cache) Decode(s string) ([]int32, error) {
	key := makeInputKey(s)

	if e, ok := c.entries.Get(key); ok && e.input == s {
		c.logger.Debug().
			Str("input", s).
			Msg("cache hit")
		return slices.Clone(e.values), nil
	}

	values, err := vlq.Decode(s)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("input", s).
		Int("values", len(values)).
		Msg("cache miss")

	c.entries.Add(key, entry{input: s, values: values})
	return slices.Clone(values), nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
