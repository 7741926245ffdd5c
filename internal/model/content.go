package model

import (
	"fmt"
	"slices"
)

// Category identifies one of the fixed threat groupings shown as tabs.
type Category int

const (
	Ocean Category = iota
	Beach
	Climate

	// NumCategories is the size of the closed category set.
	NumCategories = iota
)

// ItemID identifies a ThreatItem within its own category only.
type ItemID string

// NoItem is the empty ItemID meaning "nothing expanded".
const NoItem ItemID = ""

// ThreatItem is one problem/solution card.
type ThreatItem struct {
	ID       ItemID `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Problem  string `json:"problem" yaml:"problem"`
	Solution string `json:"solution" yaml:"solution"`
	Icon     string `json:"icon" yaml:"icon"`
	Color    string `json:"color" yaml:"color"` // #RRGGBB shade of the category color
}

// ActionTip is a suggestion shown regardless of the selected category.
type ActionTip struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// FunFact is one trivia line of the rotator.
type FunFact string

type categoryInfo struct {
	key   string
	name  string
	color string
	items []ThreatItem
}

// AllCategories returns every category in tab order.
func AllCategories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory maps a key such as "beach" to its Category.
func ParseCategory(key string) (Category, bool) {
	for i, info := range categories {
		if info.key == key {
			return Category(i), true
		}
	}
	return 0, false
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool { return c >= 0 && c < NumCategories }

// Key is the short lowercase identifier ("ocean", "beach", "climate").
func (c Category) Key() string { return c.info().key }

// Name is the tab label.
func (c Category) Name() string { return c.info().name }

// Color is the tab color as #RRGGBB.
func (c Category) Color() string { return c.info().color }

// Items returns the category's cards in display order.
func (c Category) Items() []ThreatItem { return slices.Clone(c.info().items) }

// Item looks up id within the category.
func (c Category) Item(id ItemID) (ThreatItem, bool) {
	for _, it := range c.info().items {
		if it.ID == id {
			return it, true
		}
	}
	return ThreatItem{}, false
}

// Next returns the following tab, wrapping after the last one.
func (c Category) Next() Category { return (c + 1) % NumCategories }

// Prev returns the preceding tab, wrapping before the first one.
func (c Category) Prev() Category { return (c + NumCategories - 1) % NumCategories }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.info().key
}

func (c Category) info() categoryInfo {
	if !c.Valid() {
		panic(fmt.Sprintf("model: invalid category %d", int(c)))
	}
	return categories[c]
}

// ActionTips returns the tips in display order.
func ActionTips() []ActionTip { return slices.Clone(actionTips[:]) }

// FactCount is the length of the fun-fact cycle.
const FactCount = len(funFacts)

// Fails to compile if the fact list is ever emptied, which keeps the
// rotator's modulo well defined.
var _ = [FactCount - 1]struct{}{}

// Fact returns the fun fact at i; i is reduced modulo FactCount.
func Fact(i int) FunFact {
	i %= FactCount
	if i < 0 {
		i += FactCount
	}
	return funFacts[i]
}

// FunFacts returns the whole cycle in order.
func FunFacts() []FunFact { return slices.Clone(funFacts[:]) }
