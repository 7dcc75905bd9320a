package scheduler

import "github.com/kylemshaw/ganttify/internal/core/domain"

// Ledger tracks the last committed end date per resource. It is consulted
// strictly in plan processing order, so the recorded date always reflects
// everything scheduled before the current task.
type Ledger struct {
	last map[domain.Resource]domain.Date
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{last: make(map[domain.Resource]domain.Date)}
}

// EarliestAvailable returns the end date of the most recently committed
// task for the resource. ok is false while the resource is unused.
func (l *Ledger) EarliestAvailable(r domain.Resource) (end domain.Date, ok bool) {
	end, ok = l.last[r]
	return end, ok
}

// Commit records end as the most recent end date for the resource,
// overwriting any prior value.
func (l *Ledger) Commit(r domain.Resource, end domain.Date) {
	l.last[r] = end
}
