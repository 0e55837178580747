package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrNotEnoughQuestions = errors.New("not enough questions in category")
)

// Bank holds the question lists for every known category. A category is one
// JSON file in the questions directory containing an array of question
// strings; the file name without extension is the category name.
type Bank struct {
	categories map[string][]string
}

// New builds a bank from an in-memory category map.
func New(categories map[string][]string) *Bank {
	if categories == nil {
		categories = make(map[string][]string)
	}
	return &Bank{categories: categories}
}

// Load reads every *.json file in dir into a bank.
func Load(dir string) (*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read questions dir: %w", err)
	}

	categories := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read bank %s: %w", entry.Name(), err)
		}
		var qs []string
		if err := json.Unmarshal(data, &qs); err != nil {
			return nil, fmt.Errorf("parse bank %s: %w", entry.Name(), err)
		}
		if len(qs) == 0 {
			continue
		}
		categories[name] = qs
	}

	return New(categories), nil
}

// Categories returns the known category names, sorted.
func (b *Bank) Categories() []string {
	out := make([]string, 0, len(b.categories))
	for name := range b.categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the category exists in the bank.
func (b *Bank) Has(category string) bool {
	_, ok := b.categories[category]
	return ok
}

// Size returns the number of questions in a category, zero if unknown.
func (b *Bank) Size(category string) int {
	return len(b.categories[category])
}

// Pick returns n distinct questions from the category in uniformly random
// order. The bank itself is never mutated; the shuffle runs on a copy.
func (b *Bank) Pick(category string, n int) ([]string, error) {
	qs, ok := b.categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	if n <= 0 || n > len(qs) {
		return nil, fmt.Errorf("%w: %s has %d, want %d", ErrNotEnoughQuestions, category, len(qs), n)
	}

	shuffled := make([]string, len(qs))
	copy(shuffled, qs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n], nil
}
