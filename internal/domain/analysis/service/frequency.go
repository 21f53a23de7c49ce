package service

import "sort"

// TokenCount is a token with its occurrence count
type TokenCount struct {
	Token string
	Count int
}

// Frequencies counts tokens and remembers the order they were first seen
type Frequencies struct {
	order  []string
	counts map[string]int
}

// Count tallies exact-match occurrences of tokens
func Count(tokens []string) *Frequencies {
	f := &Frequencies{counts: make(map[string]int)}
	for _, t := range tokens {
		f.Add(t)
	}
	return f
}

// Add records one occurrence of token
func (f *Frequencies) Add(token string) {
	if _, ok := f.counts[token]; !ok {
		f.order = append(f.order, token)
	}
	f.counts[token]++
}

// Get returns the count for token
func (f *Frequencies) Get(token string) int {
	return f.counts[token]
}

// Len returns the number of distinct tokens
func (f *Frequencies) Len() int {
	return len(f.order)
}

// Tokens returns distinct tokens in first-occurrence order
func (f *Frequencies) Tokens() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Top returns the n most frequent tokens. Equal counts keep first-occurrence order.
func (f *Frequencies) Top(n int) []TokenCount {
	all := make([]TokenCount, len(f.order))
	for i, t := range f.order {
		all[i] = TokenCount{Token: t, Count: f.counts[t]}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Count > all[j].Count
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
