package collision

import "github.com/google/uuid"

// ContactKey identifies a pair of touching entities. A is the active entity
// (the player), B the passive one (an actor or a marker).
type ContactKey struct {
	A uuid.UUID
	B uuid.UUID
}

// ContactTracker remembers which pairs are currently touching so that an
// effect tied to the start of a contact fires once per contact, not once per
// frame. It is not safe for concurrent use; the simulation is frame-synchronous.
type ContactTracker struct {
	active map[ContactKey]struct{}
}

// NewContactTracker creates a new, empty tracker
func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		active: make(map[ContactKey]struct{}),
	}
}

// Begin registers a contact and returns true only if it was not already active
func (ct *ContactTracker) Begin(key ContactKey) bool {
	if _, ok := ct.active[key]; ok {
		return false
	}
	ct.active[key] = struct{}{}
	return true
}

// End forgets a contact. Ending an unknown contact is a no-op.
func (ct *ContactTracker) End(key ContactKey) {
	delete(ct.active, key)
}

// Update begins or ends key depending on touching and reports whether a new
// contact started this call.
func (ct *ContactTracker) Update(key ContactKey, touching bool) bool {
	if touching {
		return ct.Begin(key)
	}
	ct.End(key)
	return false
}

func (ct *ContactTracker) IsActive(key ContactKey) bool {
	_, ok := ct.active[key]
	return ok
}

// Forget drops every contact involving id, on either side
func (ct *ContactTracker) Forget(id uuid.UUID) {
	for key := range ct.active {
		if key.A == id || key.B == id {
			delete(ct.active, key)
		}
	}
}

// Len returns the number of active contacts
func (ct *ContactTracker) Len() int {
	return len(ct.active)
}

// Clear removes all tracked contacts
func (ct *ContactTracker) Clear() {
	clear(ct.active)
}
