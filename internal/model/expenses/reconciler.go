// Package expenses keeps the per-session list of expense records
// consistent with the backing store.
//
// Local mutations are applied optimistically and the store's change feed
// confirms or corrects them later. Records are deduplicated by ID and the
// list is kept ordered by date, newest first.
package expenses

import (
	"context"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionChanged = errors.New("session changed while request was in flight")
	ErrNotFound       = errors.New("expense not found")
)

// Store is the backing store the list is reconciled against.
type Store interface {
	FetchAll(ctx context.Context, owner string) ([]expense.Record, error)
	Insert(ctx context.Context, rec expense.Record, owner string) (expense.Record, error)
	Delete(ctx context.Context, id, owner string) error
}

// refetchTimeout bounds the compensating fetch after a failed delete. The
// fetch does not inherit the caller's cancellation.
const refetchTimeout = 10 * time.Second

type Reconciler struct {
	store Store

	mu      sync.Mutex
	owner   string
	epoch   uint64
	records []expense.Record
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Ticket identifies the session a fetch was started for.
type Ticket struct {
	Owner string
	epoch uint64
}

// Initialize replaces the list with the store's records for owner. An
// empty owner clears the list. On failure the list is left empty.
func (r *Reconciler) Initialize(ctx context.Context, owner string) error {
	return r.Load(ctx, r.Reset(owner))
}

// Reset switches the list to owner, empties it and invalidates requests
// started for any previous session. Load completes the switch.
func (r *Reconciler) Reset(owner string) Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.owner = owner
	r.records = nil
	return Ticket{Owner: owner, epoch: r.epoch}
}

// Load fetches the list for the session t was issued for. The response is
// discarded with ErrSessionChanged when the session moved on meanwhile.
func (r *Reconciler) Load(ctx context.Context, t Ticket) error {
	if t.Owner == "" {
		return nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "reconciler.load")
	defer span.Finish()

	fetched, err := r.store.FetchAll(ctx, t.Owner)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != t.epoch {
		logger.Info("discarding stale fetch", zap.String("owner", t.Owner))
		staleResponses.WithLabelValues("fetch").Inc()
		return ErrSessionChanged
	}
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("initial fetch failed", zap.String("owner", t.Owner), zap.Error(err))
		return errors.Wrap(err, "initialize expenses")
	}
	r.records = normalize(fetched)
	return nil
}

// Clear drops the list and invalidates every in-flight request.
func (r *Reconciler) Clear() {
	r.Reset("")
}

// AddOptimistic stores rec and inserts the stored record into the list.
// If the change feed already delivered it, the list is left as is.
func (r *Reconciler) AddOptimistic(ctx context.Context, rec expense.Record) (expense.Record, error) {
	if err := rec.Validate(); err != nil {
		return expense.Record{}, errors.Wrap(err, "add expense")
	}
	owner, epoch, ok := r.session()
	if !ok {
		return expense.Record{}, ErrNoSession
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "reconciler.add")
	defer span.Finish()

	rec.Owner = owner
	stored, err := r.store.Insert(ctx, rec, owner)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("insert failed", zap.String("owner", owner), zap.Error(err))
		return expense.Record{}, errors.Wrap(err, "add expense")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		staleResponses.WithLabelValues("insert").Inc()
		return stored, ErrSessionChanged
	}
	if r.indexOf(stored.ID) >= 0 {
		duplicateSuppressed.WithLabelValues("local").Inc()
		return stored, nil
	}
	r.insertSorted(stored)
	return stored, nil
}

// DeleteOptimistic removes id from the list right away and then deletes it
// from the store. If the store refuses, the list is re-fetched rather than
// restored from the local copy, which may be stale by then.
func (r *Reconciler) DeleteOptimistic(ctx context.Context, id string) error {
	r.mu.Lock()
	if r.owner == "" {
		r.mu.Unlock()
		return ErrNoSession
	}
	owner, epoch := r.owner, r.epoch
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return errors.Wrap(ErrNotFound, id)
	}
	removed := r.records[idx]
	r.removeAt(idx)
	r.mu.Unlock()

	span, ctx := opentracing.StartSpanFromContext(ctx, "reconciler.delete")
	defer span.Finish()

	err := r.store.Delete(ctx, id, owner)
	if err == nil {
		return nil
	}
	ext.Error.Set(span, true)
	logger.Error("delete failed, refetching", zap.String("owner", owner), zap.String("id", id), zap.Error(err))
	compensations.Inc()

	refetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refetchTimeout)
	defer cancel()
	if refetchErr := r.refetch(refetchCtx, owner, epoch); refetchErr != nil {
		logger.Error("refetch after failed delete", zap.String("owner", owner), zap.Error(refetchErr))
		r.restore(removed, epoch)
	}
	return errors.Wrap(err, "delete expense")
}

func (r *Reconciler) refetch(ctx context.Context, owner string, epoch uint64) error {
	fetched, err := r.store.FetchAll(ctx, owner)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		staleResponses.WithLabelValues("refetch").Inc()
		return ErrSessionChanged
	}
	r.records = normalize(fetched)
	return nil
}

// restore puts back a record whose delete the store refused when the list
// could not be re-fetched.
func (r *Reconciler) restore(rec expense.Record, epoch uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch || r.indexOf(rec.ID) >= 0 {
		return
	}
	r.insertSorted(rec)
}

// ApplyRemoteChange merges a change-feed notification into the list.
func (r *Reconciler) ApplyRemoteChange(ev expense.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owner == "" || ev.Owner() != r.owner {
		foreignEvents.Inc()
		return
	}
	remoteEvents.WithLabelValues(string(ev.Kind)).Inc()

	switch ev.Kind {
	case expense.Insert:
		if r.indexOf(ev.Record.ID) >= 0 {
			duplicateSuppressed.WithLabelValues("remote").Inc()
			return
		}
		r.insertSorted(ev.Record)
	case expense.Delete:
		if idx := r.indexOf(ev.Record.ID); idx >= 0 {
			r.removeAt(idx)
		}
	default:
		logger.Warn("unknown change kind", zap.String("kind", string(ev.Kind)))
	}
}

// Records returns a copy of the current list.
func (r *Reconciler) Records() []expense.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]expense.Record, len(r.records))
	copy(res, r.records)
	return res
}

func (r *Reconciler) Owner() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owner
}

func (r *Reconciler) session() (owner string, epoch uint64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owner, r.epoch, r.owner != ""
}
