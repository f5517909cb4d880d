package scoring

import (
	"hash"
	"hash/fnv"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// Cache memoizes Score results keyed by record id plus a hash of the
// scoring-relevant fields, so an edited record never serves a stale
// breakdown. It is owned by callers (the aggregator), keeping Score itself
// pure. When the entry count would exceed the bound the cache is dropped
// wholesale; correctness never depends on a hit.
type Cache struct {
	max     int
	entries map[cacheKey]model.ScoreBreakdown
}

type cacheKey struct {
	id   string
	hash uint64
}

// NewCache creates a cache bounded to max entries. A non-positive max
// falls back to a small default.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = 256
	}
	return &Cache{
		max:     max,
		entries: make(map[cacheKey]model.ScoreBreakdown),
	}
}

// Score returns the memoized breakdown for m, computing it on a miss.
func (c *Cache) Score(m model.MatchRecord) model.ScoreBreakdown {
	key := cacheKey{id: m.ID, hash: contentHash(m)}
	if bd, ok := c.entries[key]; ok {
		return bd
	}

	bd := Score(m)
	if len(c.entries) >= c.max {
		c.entries = make(map[cacheKey]model.ScoreBreakdown)
	}
	c.entries[key] = bd
	return bd
}

// Len reports the current entry count.
func (c *Cache) Len() int { return len(c.entries) }

// contentHash folds the fields that influence the score. Notes, ratings,
// and identity fields are deliberately excluded.
func contentHash(m model.MatchRecord) uint64 {
	h := fnv.New64a()
	writePhase := func(p model.PhaseActions) {
		writeBool(h, p.Parked)
		writeInt(h, p.NetZonePlacement)
		writeInt(h, p.LowBasket)
		writeInt(h, p.HighBasket)
		writeInt(h, p.LowChamber)
		writeInt(h, p.HighChamber)
	}
	writePhase(m.Auto)
	writePhase(m.Teleop)
	h.Write([]byte(m.Ascent))
	h.Write([]byte(m.Result))
	return h.Sum64()
}

func writeInt(h hash.Hash64, v int) {
	var buf [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	h.Write(buf[:])
}

func writeBool(h hash.Hash64, v bool) {
	if v {
		h.Write([]byte{1})
		return
	}
	h.Write([]byte{0})
}
