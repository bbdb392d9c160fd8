package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

func testDataset() catalog.Dataset {
	return catalog.Dataset{
		Users: []catalog.User{
			{ID: 1, Name: "Roma", Sex: catalog.SexMale},
			{ID: 2, Name: "Anna", Sex: catalog.SexFemale},
		},
		Categories: []catalog.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
		},
		Products: []catalog.Product{
			{ID: 1, Name: "Milk", CategoryID: 3},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Beer", CategoryID: 2},
			{ID: 4, Name: "Apple", CategoryID: 3},
			{ID: 5, Name: "Lost", CategoryID: 9},
		},
	}
}

func visibleIDs(s State) []int {
	out := []int{}
	for _, p := range s.Visible() {
		out = append(out, p.ID)
	}
	return out
}

func TestState_Initial(t *testing.T) {
	s := FromDataset(testDataset())

	assert.Equal(t, catalog.AllOwners, s.Owner())
	assert.Equal(t, "", s.Query())
	assert.False(t, s.CategoryEngaged())
	assert.False(t, s.Filtered())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visibleIDs(s))
}

func TestState_Reducers(t *testing.T) {
	base := FromDataset(testDataset())

	tests := []struct {
		name    string
		intents []Intent
		want    []int
	}{
		{name: "owner", intents: []Intent{SelectOwner{ID: 2}}, want: []int{1, 2, 4}},
		{name: "owner back to all", intents: []Intent{SelectOwner{ID: 2}, SelectOwner{ID: catalog.AllOwners}}, want: []int{1, 2, 3, 4, 5}},
		{name: "query", intents: []Intent{Search{Query: "BE"}}, want: []int{3}},
		{name: "query and owner", intents: []Intent{Search{Query: "e"}, SelectOwner{ID: 2}}, want: []int{2, 4}},
		{name: "cleared query", intents: []Intent{Search{Query: "zzz"}, ClearSearch{}}, want: []int{1, 2, 3, 4, 5}},
		{name: "category", intents: []Intent{PickCategory{Title: "Fruits"}}, want: []int{1, 4}},
		{name: "same category twice", intents: []Intent{PickCategory{Title: "Fruits"}, PickCategory{Title: "Fruits"}}, want: []int{1, 4}},
		{name: "categories intersect", intents: []Intent{PickCategory{Title: "Fruits"}, PickCategory{Title: "Drinks"}}, want: []int{}},
		{name: "category then query", intents: []Intent{PickCategory{Title: "Fruits"}, Search{Query: "app"}}, want: []int{4}},
		{name: "category survives query changes", intents: []Intent{PickCategory{Title: "Grocery"}, Search{Query: "x"}, ClearSearch{}}, want: []int{2}},
		{name: "category and foreign owner", intents: []Intent{PickCategory{Title: "Drinks"}, SelectOwner{ID: 2}}, want: []int{}},
		{name: "reset", intents: []Intent{PickCategory{Title: "Drinks"}, SelectOwner{ID: 1}, Search{Query: "b"}, ResetAll{}}, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibleIDs(Dispatch(base, tt.intents...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestState_Immutable(t *testing.T) {
	base := FromDataset(testDataset())

	narrowed := base.SetOwner(1).SetQuery("beer").ApplyCategory("Drinks")

	assert.Equal(t, catalog.AllOwners, base.Owner())
	assert.Equal(t, "", base.Query())
	assert.False(t, base.CategoryEngaged())
	assert.Len(t, base.Visible(), 5)

	assert.Equal(t, []int{3}, visibleIDs(narrowed))
	assert.True(t, narrowed.Filtered())
}

func TestState_CategoriesDoNotShareBacking(t *testing.T) {
	s := FromDataset(testDataset()).ApplyCategory("Fruits")

	a := s.ApplyCategory("Drinks")
	b := s.ApplyCategory("Grocery")

	assert.Equal(t, []string{"Fruits", "Drinks"}, a.Categories())
	assert.Equal(t, []string{"Fruits", "Grocery"}, b.Categories())
	assert.Equal(t, []string{"Fruits"}, s.Categories())
}

func TestState_EmptyCategoryStageStaysEngaged(t *testing.T) {
	s := FromDataset(testDataset()).ApplyCategory("Nope")

	assert.True(t, s.CategoryEngaged())
	assert.True(t, s.Empty())

	s = s.ApplyCategory("Fruits")
	assert.True(t, s.Empty(), "an emptied category stage cannot be widened by another category")

	s = s.Reset()
	assert.False(t, s.CategoryEngaged())
	assert.False(t, s.Empty())
}

func TestState_OwnerFilterExcludesUnresolved(t *testing.T) {
	s := FromDataset(testDataset()).SetQuery("lost")
	assert.Equal(t, []int{5}, visibleIDs(s))

	for _, owner := range []int{1, 2} {
		assert.True(t, s.SetOwner(owner).Empty())
	}
}

func TestState_Scenario(t *testing.T) {
	ds := catalog.Dataset{
		Users:      []catalog.User{{ID: 1, Name: "Anna", Sex: catalog.SexFemale}},
		Categories: []catalog.Category{{ID: 10, Title: "Fruits", Icon: "🍎", OwnerID: 1}},
		Products: []catalog.Product{
			{ID: 100, Name: "Apple", CategoryID: 10},
			{ID: 101, Name: "Banana", CategoryID: 99},
		},
	}

	s := FromDataset(ds).SetQuery("an")
	assert.Equal(t, []int{101}, visibleIDs(s))

	s = s.SetOwner(1)
	assert.True(t, s.Empty())
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "select owner 3", SelectOwner{ID: 3}.String())
	assert.Equal(t, `search "milk"`, Search{Query: "milk"}.String())
	assert.Equal(t, `pick category "Fruits"`, PickCategory{Title: "Fruits"}.String())
	assert.Equal(t, "reset all filters", ResetAll{}.String())
	assert.Equal(t, "clear search", ClearSearch{}.String())
}
