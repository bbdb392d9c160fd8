package view

import "fmt"

// Intent is a user action that transforms a State.
type Intent interface {
	Apply(State) State
	String() string
}

// SelectOwner picks an owner tab. ID catalog.AllOwners is the "All" tab.
type SelectOwner struct{ ID int }

func (i SelectOwner) Apply(s State) State { return s.SetOwner(i.ID) }
func (i SelectOwner) String() string      { return fmt.Sprintf("select owner %d", i.ID) }

// Search replaces the query text.
type Search struct{ Query string }

func (i Search) Apply(s State) State { return s.SetQuery(i.Query) }
func (i Search) String() string      { return fmt.Sprintf("search %q", i.Query) }

// ClearSearch empties the query text.
type ClearSearch struct{}

func (ClearSearch) Apply(s State) State { return s.ClearQuery() }
func (ClearSearch) String() string      { return "clear search" }

// PickCategory applies a category tab.
type PickCategory struct{ Title string }

func (i PickCategory) Apply(s State) State { return s.ApplyCategory(i.Title) }
func (i PickCategory) String() string      { return fmt.Sprintf("pick category %q", i.Title) }

// ResetAll clears every filter.
type ResetAll struct{}

func (ResetAll) Apply(s State) State { return s.Reset() }
func (ResetAll) String() string      { return "reset all filters" }

// Dispatch applies intents to s in order and returns the final state.
func Dispatch(s State, intents ...Intent) State {
	for _, i := range intents {
		s = i.Apply(s)
	}
	return s
}
