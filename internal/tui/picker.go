package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// PickerItem is one selectable row. ID is opaque to the picker.
type PickerItem struct {
	ID    string
	Label string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filterable single-select list used by the category and
// unit modals. Typing narrows the list; matches are ranked by a
// subsequence score with a one-edit typo fallback.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
	return p
}

func (p *Picker) Title() string { return p.title }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[p.cursor], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "j":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		matched, score := matchScore(item.Label, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	p.filtered = p.filtered[:0]
	for _, row := range scored {
		p.filtered = append(p.filtered, row.item)
	}

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
}

// matchScore prefers subsequence matches (prefix and adjacency weighted),
// and falls back to a small levenshtein distance so one-edit typos like
// "metres" still find "meters".
func matchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	if matchIdx, ok := subsequenceIndexes(labelLower, queryLower); ok {
		score := len(queryLower)
		if matchIdx[0] == 0 {
			score += 10
		}
		for i := 1; i < len(matchIdx); i++ {
			if matchIdx[i] == matchIdx[i-1]+1 {
				score += 3
			}
		}
		if labelLower == queryLower {
			score += 20
		}
		return true, score
	}

	if len(queryLower) >= 3 {
		limit := len(labelLower)
		if len(queryLower) < limit {
			limit = len(queryLower)
		}
		maxDist := 1
		if len(queryLower) >= 5 {
			maxDist = 2 // covers transpositions like "metres"
		}
		if dist := levenshtein.ComputeDistance(labelLower[:limit], queryLower[:limit]); dist <= maxDist {
			return true, 1
		}
	}
	return false, 0
}

func subsequenceIndexes(label, query string) ([]int, bool) {
	idx := make([]int, 0, len(query))
	searchFrom := 0
	for i := 0; i < len(query); i++ {
		found := false
		for j := searchFrom; j < len(label); j++ {
			if label[j] == query[i] {
				idx = append(idx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return idx, true
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
