package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	ErrBusy        = errors.New("another decision is in progress")
	ErrEmptyReason = errors.New("rejection reason is required")
)

// Decider issues the approve/reject calls. Satisfied by *api.Client.
type Decider interface {
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int, reason string) error
}

// Collection is the list a decision refreshes afterwards. Invalidate marks
// the cached collection stale; Reload fetches it fresh. Keeping the two steps
// separate makes the invalidation observable on its own.
type Collection interface {
	Invalidate()
	Reload(ctx context.Context) error
}

// Approver drives the pending -> approved/rejected transition. Both outcomes
// are terminal as far as the client is concerned; the acted-on record is
// never patched locally, only re-fetched, so the rendered list can not drift
// from what the server decided.
//
// Only one decision may be in flight at a time. The guard fails fast instead
// of queueing, mirroring a blocking "processing" state in a front end.
type Approver struct {
	api  Decider
	list Collection

	mu   sync.Mutex
	busy bool
}

// NewApprover wires a decider to the collection it refreshes.
func NewApprover(api Decider, list Collection) *Approver {
	return &Approver{api: api, list: list}
}

func (a *Approver) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.busy {
		return false
	}
	a.busy = true
	return true
}

func (a *Approver) end() {
	a.mu.Lock()
	a.busy = false
	a.mu.Unlock()
}

// Busy reports whether a decision is currently in flight.
func (a *Approver) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Approve transitions a pending account to approved, then refreshes the
// collection. On failure the collection keeps its prior state.
func (a *Approver) Approve(ctx context.Context, id int) error {
	if !a.begin() {
		return ErrBusy
	}
	defer a.end()

	if err := a.api.Approve(ctx, id); err != nil {
		log.WithError(err).WithField("id", id).Warn("approve failed")
		return err
	}
	return a.refresh(ctx)
}

// Reject transitions a pending account to rejected. An empty or
// whitespace-only reason fails fast before any network call.
func (a *Approver) Reject(ctx context.Context, id int, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	if !a.begin() {
		return ErrBusy
	}
	defer a.end()

	if err := a.api.Reject(ctx, id, reason); err != nil {
		log.WithError(err).WithField("id", id).Warn("reject failed")
		return err
	}
	return a.refresh(ctx)
}

// refresh is the mutate-then-reload half of a decision: drop the cached
// collection, then fetch the server-authoritative state.
func (a *Approver) refresh(ctx context.Context) error {
	a.list.Invalidate()
	return a.list.Reload(ctx)
}
