package search

import (
	"sort"
	"sync"
)

// Index is an inverted index from search term to the set of conclusion ids
// whose rendered text contains that term. Each posting also carries the
// term's occurrence count within the document so that search can rank a
// record mentioning a term twice above one mentioning it once.
//
// Add and Search are safe for concurrent use. The index holds everything in
// memory and is discarded with the process.
type Index struct {
	mu sync.RWMutex

	// postings maps term -> conclusion id -> occurrence count.
	postings map[string]map[string]int

	// order records the position at which each id was first indexed,
	// used to break ranking ties in first-seen order.
	order map[string]int
	next  int
}

// NewIndex creates an empty inverted index.
func NewIndex() *Index {
	return &Index{
		postings: make(map[string]map[string]int),
		order:    make(map[string]int),
	}
}

// Add tokenizes text and associates every resulting term with id.
//
// Ids are immutable-content: calling Add again with an id the index has
// already absorbed is a no-op, so a record can never leave stale term
// associations behind.
func (ix *Index) Add(id, text string) {
	if id == "" {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, seen := ix.order[id]; seen {
		return
	}
	ix.order[id] = ix.next
	ix.next++

	for _, token := range Tokenize(text) {
		ids := ix.postings[token]
		if ids == nil {
			ids = make(map[string]int)
			ix.postings[token] = ids
		}
		ids[id]++
	}
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.order)
}

// Search tokenizes query and returns the ids of matching records, most
// relevant first. A record's score is the sum, over every query term present
// in the index, of that term's occurrence count in the record. Ties are
// broken by first-indexed order. No matching term yields an empty result.
//
// This is deliberately a term-frequency-across-matched-terms ranking, not
// TF-IDF: no corpus statistics are maintained.
func (ix *Index) Search(query string) []string {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	scores := make(map[string]int)
	for _, token := range tokens {
		for id, count := range ix.postings[token] {
			scores[id] += count
		}
	}
	if len(scores) == 0 {
		return nil
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ix.order[ids[i]] < ix.order[ids[j]]
	})
	return ids
}
