package state_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Dicklesworthstone/turtle_troubles/internal/model"
	"github.com/Dicklesworthstone/turtle_troubles/internal/state"
)

func TestInitialState(t *testing.T) {
	s := state.New()
	gt.Value(t, s.Category).Equal(model.Ocean)
	gt.Value(t, s.Expanded).Equal(model.NoItem)
	gt.Value(t, s.FactIndex).Equal(0)
	gt.Value(t, s.CurrentFact()).Equal(model.FunFacts()[0])
}

func TestSelectCategoryShowsItsList(t *testing.T) {
	for _, c := range model.AllCategories() {
		t.Run(c.Key(), func(t *testing.T) {
			s := state.New()
			s.SelectCategory(c)
			gt.Value(t, s.Category).Equal(c)
			gt.Value(t, s.VisibleItems()).Equal(c.Items())
		})
	}
}

func TestClickCardTogglesOverTwoClicks(t *testing.T) {
	s := state.New()
	s.ClickCard("plastic")
	gt.Value(t, s.Expanded).Equal(model.ItemID("plastic"))
	gt.Bool(t, s.IsExpanded("plastic")).True()

	s.ClickCard("plastic")
	gt.Value(t, s.Expanded).Equal(model.NoItem)
	gt.Bool(t, s.IsExpanded("plastic")).False()
}

func TestClickCardReplacesOtherExpanded(t *testing.T) {
	s := state.New()
	s.ClickCard("plastic")
	s.ClickCard("boats")
	gt.Value(t, s.Expanded).Equal(model.ItemID("boats"))
	gt.Bool(t, s.IsExpanded("plastic")).False()
	gt.Bool(t, s.IsExpanded("boats")).True()
}

func TestLearnMoreEqualsSingleBodyClick(t *testing.T) {
	for _, it := range model.Ocean.Items() {
		viaBody := state.New()
		viaBody.ClickCard(it.ID)

		viaLink := state.New()
		viaLink.ClickLearnMore(it.ID)

		gt.Value(t, viaLink).Equal(viaBody)
	}
}

func TestLearnMoreNeverCollapses(t *testing.T) {
	s := state.New()
	s.ClickLearnMore("fishing")
	s.ClickLearnMore("fishing")
	gt.Value(t, s.Expanded).Equal(model.ItemID("fishing"))
}

func TestAdvanceFactCycles(t *testing.T) {
	s := state.New()
	for i := 1; i < model.FactCount; i++ {
		s.AdvanceFact()
		gt.Value(t, s.FactIndex).Equal(i)
	}
	s.AdvanceFact()
	gt.Value(t, s.FactIndex).Equal(0)
}

func TestAdvanceFactFullCycleFromAnyStart(t *testing.T) {
	for start := 0; start < model.FactCount; start++ {
		s := state.State{FactIndex: start}
		for i := 0; i < model.FactCount; i++ {
			s.AdvanceFact()
		}
		gt.Value(t, s.FactIndex).Equal(start)
	}
}

func TestBeachLightsScenario(t *testing.T) {
	s := state.New()
	s.SelectCategory(model.Beach)
	s.ClickCard("lights")
	s.AdvanceFact()
	s.AdvanceFact()

	gt.Value(t, s.Category).Equal(model.Beach)
	gt.Value(t, s.Expanded).Equal(model.ItemID("lights"))
	gt.Value(t, s.FactIndex).Equal(2)

	it, ok := s.ExpandedItem()
	gt.Bool(t, ok).True()
	gt.Value(t, it.Title).Equal("Light Pollution")
}

func TestSwitchingCategoryKeepsStaleExpansion(t *testing.T) {
	s := state.New()
	s.SelectCategory(model.Beach)
	s.ClickCard("lights")

	s.SelectCategory(model.Climate)
	gt.Value(t, s.Expanded).Equal(model.ItemID("lights"))
	gt.Bool(t, s.IsExpanded("lights")).False()
	_, ok := s.ExpandedItem()
	gt.Bool(t, ok).False()
	for _, it := range s.VisibleItems() {
		gt.Bool(t, s.IsExpanded(it.ID)).False()
	}

	s.SelectCategory(model.Beach)
	gt.Bool(t, s.IsExpanded("lights")).True()
}

func TestStatesAreIndependent(t *testing.T) {
	s := state.New()
	s.ClickCard("boats")
	s.AdvanceFact()
	s.SelectCategory(model.Climate)

	gt.Value(t, s.FactIndex).Equal(1)
	gt.Value(t, s.Expanded).Equal(model.ItemID("boats"))
}
