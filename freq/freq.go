// Package freq counts term frequencies across token sequences.
package freq

import "sort"

// Counter maps terms to occurrence counts.
type Counter map[string]int

// Pair is a term with its count.
type Pair struct {
	Term  string
	Count int
}

// New creates an empty Counter.
func New() Counter {
	return Counter{}
}

// Update adds one occurrence for every token in the sequence.
func (c Counter) Update(toks []string) {
	for _, t := range toks {
		c[t]++
	}
}

// UpdateAll adds every sequence of a token column.
func (c Counter) UpdateAll(rows [][]string) {
	for _, toks := range rows {
		c.Update(toks)
	}
}

// Total returns the sum of all counts.
func (c Counter) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}

	return sum
}

// MostCommon returns the n most frequent terms, highest count first. Ties are
// broken lexicographically so the order is stable. n <= 0 or n larger than
// the counter returns all terms.
func (c Counter) MostCommon(n int) []Pair {
	pairs := make([]Pair, 0, len(c))
	for term, count := range c {
		pairs = append(pairs, Pair{Term: term, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}

		return pairs[i].Term < pairs[j].Term
	})

	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}

	return pairs
}
