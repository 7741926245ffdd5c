// Package state holds the widget's view-state: which tab is selected,
// which card is expanded and which fun fact is showing. The three fields
// change independently and every transition is a single assignment.
package state

import (
	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
)

// State is owned by exactly one running widget.
type State struct {
	Category  model.Category
	Expanded  model.ItemID // model.NoItem when nothing is expanded
	FactIndex int
}

// New returns the initial state: first category, nothing expanded, fact 0.
func New() State {
	return State{
		Category:  model.AllCategories()[0],
		Expanded:  model.NoItem,
		FactIndex: 0,
	}
}

// SelectCategory switches tabs. The expanded id is left alone; a stale id
// simply matches no visible card until its category is selected again.
func (s *State) SelectCategory(c model.Category) {
	s.Category = c
}

// ClickCard toggles id: collapse if it is the expanded card, otherwise
// make it the (only) expanded card.
func (s *State) ClickCard(id model.ItemID) {
	if s.Expanded == id {
		s.Expanded = model.NoItem
		return
	}
	s.Expanded = id
}

// ClickLearnMore is the "learn how to help" affordance. It always expands
// and never toggles.
func (s *State) ClickLearnMore(id model.ItemID) {
	s.Expanded = id
}

// AdvanceFact moves to the next fun fact, wrapping after the last.
func (s *State) AdvanceFact() {
	s.FactIndex = (s.FactIndex + 1) % model.FactCount
}

// VisibleItems is the selected category's card list in display order.
func (s State) VisibleItems() []model.ThreatItem {
	return s.Category.Items()
}

// IsExpanded reports whether the card id renders expanded. Only cards of
// the selected category can be expanded.
func (s State) IsExpanded(id model.ItemID) bool {
	if s.Expanded == model.NoItem || s.Expanded != id {
		return false
	}
	_, ok := s.Category.Item(id)
	return ok
}

// ExpandedItem returns the expanded card if it belongs to the selected
// category.
func (s State) ExpandedItem() (model.ThreatItem, bool) {
	if s.Expanded == model.NoItem {
		return model.ThreatItem{}, false
	}
	return s.Category.Item(s.Expanded)
}

// CurrentFact is the fun fact being displayed.
func (s State) CurrentFact() model.FunFact {
	return model.Fact(s.FactIndex)
}
