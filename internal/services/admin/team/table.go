package team

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

var (
	// ErrRecordNotFound indicates the id is not in the loaded list.
	ErrRecordNotFound = errors.New("team record not found")
	// ErrUnknownFacet indicates an unrecognized facet option id.
	ErrUnknownFacet = errors.New("unknown facet option")
)

// Option configures a Table.
type Option func(*Table)

// WithClock overrides the clock used for invite status.
func WithClock(clock func() time.Time) Option {
	return func(t *Table) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithPolicy sets the filter composition policy.
func WithPolicy(policy Policy) Option {
	return func(t *Table) {
		if policy != "" {
			t.policy = policy
		}
	}
}

// Table is the merged user and invite list with its filters and the
// operator's pending action. It is safe for concurrent use.
type Table struct {
	mu         sync.Mutex
	clock      func() time.Time
	policy     Policy
	loaded     bool
	generation uint64
	records    []Record
	filters    Filters
	pending    PendingAction
}

// NewTable returns an empty table.
func NewTable(opts ...Option) *Table {
	t := &Table{clock: time.Now, policy: PolicyReplace}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.filters = NewFilters(t.policy)
	return t
}

// Load replaces the full list when generation differs from the loaded one and
// resets filters. It reports whether the list was rebuilt.
//
// A pending action whose entity is gone from the new list is dropped.
func (t *Table) Load(generation uint64, users []commerce.User, invites []commerce.Invite) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loaded && t.generation == generation {
		return false
	}
	t.loaded = true
	t.generation = generation
	t.records = Merge(users, invites)
	t.filters = t.filters.Cleared()

	if kind, id := t.pending.entityID(); id != "" {
		if _, ok := t.findLocked(kind, id); !ok {
			t.pending = PendingAction{}
		}
	}
	return true
}

// Generation returns the loaded snapshot generation and whether anything has
// been loaded.
func (t *Table) Generation() (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation, t.loaded
}

// Records returns a copy of the full list.
func (t *Table) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Record(nil), t.records...)
}

// Visible returns the filtered view, derived from the full list on every call.
func (t *Table) Visible() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visibleLocked()
}

func (t *Table) visibleLocked() []Record {
	return Filter(t.records, t.filters.Predicate(t.clock))
}

// Facets derives facet groups with counts over the full list.
func (t *Table) Facets() []FacetGroup {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Facets(t.records, t.clock)
}

// Filters returns the active filter state.
func (t *Table) Filters() Filters {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filters
}

// SelectFacet activates a facet option, replacing the predicate slot.
func (t *Table) SelectFacet(id string) error {
	if _, ok := facetPredicate(id, t.clock); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFacet, id)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filters = t.filters.WithFacet(id)
	return nil
}

// Search sets the search term. An empty term clears the search and, under
// PolicyReplace, the predicate slot too.
func (t *Table) Search(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filters = t.filters.WithSearch(term)
}

// ApplyExpression parses source and places it in the predicate slot. A blank
// source empties the predicate slot.
func (t *Table) ApplyExpression(source string) error {
	expression, err := ParseExpression(source)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filters = t.filters.WithExpression(expression)
	return nil
}

// ClearFilters shows the full list.
func (t *Table) ClearFilters() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filters = t.filters.Cleared()
}

// Rows renders the filtered view.
func (t *Table) Rows(rc RowContext) []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	return BuildRows(t.visibleLocked(), rc, t.clock())
}

// Pending returns the operator's pending action.
func (t *Table) Pending() PendingAction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// EditUser opens the edit flow for a loaded user.
func (t *Table) EditUser(id string) error {
	return t.selectRecord(EntityUser, id, func(r Record) PendingAction {
		user, _ := r.User()
		return EditingUser(user)
	})
}

// ConfirmUserDelete asks to confirm deleting a loaded user.
func (t *Table) ConfirmUserDelete(id string) error {
	return t.selectRecord(EntityUser, id, func(r Record) PendingAction {
		user, _ := r.User()
		return ConfirmingUserDelete(user)
	})
}

// ConfirmInviteDelete asks to confirm deleting a loaded invite.
func (t *Table) ConfirmInviteDelete(id string) error {
	return t.selectRecord(EntityInvite, id, func(r Record) PendingAction {
		invite, _ := r.Invite()
		return ConfirmingInviteDelete(invite)
	})
}

// Dismiss clears the pending action.
func (t *Table) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = PendingAction{}
}

// Find returns the loaded record of kind with id.
func (t *Table) Find(kind EntityType, id string) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.findLocked(kind, id)
}

func (t *Table) selectRecord(kind EntityType, id string, pending func(Record) PendingAction) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	record, ok := t.findLocked(kind, id)
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrRecordNotFound, kind, id)
	}
	t.pending = pending(record)
	return nil
}

func (t *Table) findLocked(kind EntityType, id string) (Record, bool) {
	for _, record := range t.records {
		if record.Type() == kind && record.ID() == id {
			return record, true
		}
	}
	return Record{}, false
}
