package catalog

import (
	"sync"

	"eshop-catalog/core/eshop"
)

// Store owns the merged catalog. It is written by the initialization pass
// (merge, then price enrichment) and read by every request. Readers always
// get copies, so a response can be encoded while prices are still being set.
type Store struct {
	mu    sync.RWMutex
	games map[string]*GameRecord

	ready     chan struct{}
	readyOnce sync.Once
	err       error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		games: make(map[string]*GameRecord),
		ready: make(chan struct{}),
	}
}

// Update runs fn with exclusive access to the catalog map.
func (s *Store) Update(fn func(games map[string]*GameRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.games)
}

// View runs fn with shared access to the catalog map. fn must not mutate it.
func (s *Store) View(fn func(games map[string]*GameRecord)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.games)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Get returns a copy of the record with the given code.
func (s *Store) Get(code string) (GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[code]
	if !ok {
		return GameRecord{}, false
	}
	return g.Clone(), true
}

// Snapshot returns copies of all records in unspecified order.
func (s *Store) Snapshot() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GameRecord, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g.Clone())
	}
	return out
}

// NSUIDs returns the distinct store ids of a region present in the catalog.
func (s *Store) NSUIDs(region eshop.Region) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(s.games))
	for _, g := range s.games {
		id, ok := g.NSUID(region)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// SetPrices attaches prices for one country to the records whose region
// store id matches the price title id. It returns the number of prices that
// matched no record.
func (s *Store) SetPrices(region eshop.Region, country string, prices []eshop.Price) (unmatched int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byNSUID := make(map[string][]*GameRecord)
	for _, g := range s.games {
		if id, ok := g.NSUID(region); ok {
			byNSUID[id] = append(byNSUID[id], g)
		}
	}

	for _, price := range prices {
		matches := byNSUID[price.TitleID]
		if len(matches) == 0 {
			unmatched++
			continue
		}
		for _, g := range matches {
			if g.Prices == nil {
				g.Prices = make(map[string]eshop.Price)
			}
			g.Prices[country] = price
		}
	}
	return unmatched
}

// MarkReady closes the readiness barrier. err is the initialization
// outcome; only the first call has an effect.
func (s *Store) MarkReady(err error) {
	s.readyOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.ready)
	})
}

// Ready is closed once initialization has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// IsReady reports whether initialization has finished, without blocking.
func (s *Store) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Err returns the initialization error, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
