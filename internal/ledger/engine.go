// Package ledger owns the tracked-item collections: it validates new items,
// applies contributions with clamping, and persists after every change.
package ledger

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/model"
)

// Engine holds one ordered collection of items of a single kind.
//
// Every mutation runs to completion and is written to the Store before it
// returns. A failed write is logged and kept in SaveErr; the in-memory
// collection stays authoritative and is not rolled back.
type Engine struct {
	kind  model.Kind
	store Store
	now   func() time.Time
	newID func() string
	log   logrus.FieldLogger

	mu      sync.Mutex
	items   []model.Item
	loadErr error
	saveErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of "now" used for creation times and for
// today's date in accrual views.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// WithLogger sets the logger. By default the engine logs nothing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// Open loads kind's collection from st. Absent or malformed data gives an
// empty collection; the load error, if any, is kept in LoadErr.
func Open(kind model.Kind, st Store, opts ...Option) *Engine {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	e := &Engine{
		kind:  kind,
		store: st,
		now:   time.Now,
		newID: uuid.NewString,
		log:   quiet,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("kind", string(kind))

	items, err := st.Load()
	if err != nil {
		e.log.WithError(err).Warn("stored collection unreadable, starting empty")
		e.loadErr = err
		items = nil
	}
	e.items = e.sanitize(items)
	e.log.WithField("items", len(e.items)).Debug("collection loaded")
	return e
}

// sanitize drops items that break creation invariants, clamps progress into
// [0, target] and gives missing or duplicate ids a fresh one.
func (e *Engine) sanitize(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Kind == "" {
			it.Kind = e.kind
		}
		if it.Kind != e.kind {
			e.log.WithField("id", it.ID).Warnf("dropping item of kind %q", it.Kind)
			continue
		}
		it.Name = strings.TrimSpace(it.Name)
		if reason := checkStored(it); reason != "" {
			e.log.WithField("id", it.ID).Warnf("dropping stored item: %s", reason)
			continue
		}
		if it.Kind.Tracked() {
			it.Progress = clampProgress(it.Progress, it.Target)
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = e.newID()
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// Kind returns the kind of items this engine holds.
func (e *Engine) Kind() model.Kind { return e.kind }

// Today returns the engine clock's current date.
func (e *Engine) Today() date.Date { return date.FromTime(e.now()) }

// LoadErr returns the error that made Open start empty, if any.
func (e *Engine) LoadErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadErr
}

// SaveErr returns the error from the most recent write, or nil if it succeeded.
func (e *Engine) SaveErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveErr
}

// Items returns a copy of the collection in insertion order.
func (e *Engine) Items() []model.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Item, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of items.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Get returns the item with the given id.
func (e *Engine) Get(id string) (model.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.index(id); i >= 0 {
		return e.items[i], true
	}
	return model.Item{}, false
}

// Lookup resolves an exact id or a unique id prefix.
func (e *Engine) Lookup(ref string) (model.Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Item{}, ErrNotFound
	}
	if i := e.index(ref); i >= 0 {
		return e.items[i], nil
	}

	found := -1
	for i, it := range e.items {
		if strings.HasPrefix(it.ID, ref) {
			if found >= 0 {
				return model.Item{}, ErrAmbiguous
			}
			found = i
		}
	}
	if found < 0 {
		return model.Item{}, ErrNotFound
	}
	return e.items[found], nil
}

func (e *Engine) index(id string) int {
	for i, it := range e.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add validates d and appends the new item with zero progress.
func (e *Engine) Add(d Draft) (model.Item, error) {
	now := e.now()
	it, err := newItem(e.kind, d, date.FromTime(now))
	if err != nil {
		e.log.WithError(err).Debug("add rejected")
		return model.Item{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	it.ID = e.newID()
	if it.ID == "" || e.index(it.ID) >= 0 {
		it.ID = uuid.NewString()
	}
	it.CreatedAt = now.UTC()
	e.items = append(e.items, it)
	e.log.WithFields(logrus.Fields{"id": it.ID, "name": it.Name}).Info("item added")
	e.persist()
	return it, nil
}

// Contribute parses amount and applies it to the item with the given id.
func (e *Engine) Contribute(id, amount string) (model.Item, error) {
	v, err := ParseAmount(amount)
	if err != nil {
		return model.Item{}, invalid("amount", "amount must be a number")
	}
	return e.ContributeAmount(id, v)
}

// ContributeAmount adds amount to the item's progress, capped at its target.
// Whatever exceeds the remaining balance is discarded.
func (e *Engine) ContributeAmount(id string, amount decimal.Decimal) (model.Item, error) {
	if !amount.IsPositive() {
		return model.Item{}, invalid("amount", "amount must be greater than zero")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.index(id)
	if i < 0 {
		e.log.WithField("id", id).Debug("contribution to unknown item ignored")
		return model.Item{}, ErrNotFound
	}
	it := e.items[i]
	if !it.Kind.Tracked() {
		return model.Item{}, invalid("kind", string(it.Kind)+" items do not take contributions")
	}

	next := decimal.Min(it.Progress.Add(amount), it.Target)
	if next.Equal(it.Progress) {
		return it, nil
	}
	it.Progress = next
	e.items[i] = it

	e.log.WithFields(logrus.Fields{
		"id":       id,
		"amount":   amount.String(),
		"progress": it.Progress.String(),
	}).Info("contribution recorded")
	if it.IsComplete() {
		e.log.WithField("id", id).Info("item complete")
	}
	e.persist()
	return it, nil
}

// Delete removes the item if present and reports whether it was.
// Unknown ids are a no-op.
func (e *Engine) Delete(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.index(id)
	if i < 0 {
		return false
	}
	e.items = append(e.items[:i:i], e.items[i+1:]...)
	e.log.WithField("id", id).Info("item deleted")
	e.persist()
	return true
}

// Import appends items whose ids are not already present, after the same
// sanitising a load applies. It returns how many were added.
func (e *Engine) Import(items []model.Item) int {
	clean := e.sanitize(items)

	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, it := range clean {
		if e.index(it.ID) >= 0 {
			continue
		}
		e.items = append(e.items, it)
		added++
	}
	if added > 0 {
		e.log.WithField("items", added).Info("items imported")
		e.persist()
	}
	return added
}

// AccruedInterest returns the interest accrued by the item as of today.
func (e *Engine) AccruedInterest(id string) (decimal.Decimal, bool) {
	it, ok := e.Get(id)
	if !ok {
		return decimal.Zero, false
	}
	return model.AccruedInterest(it, e.Today()), true
}

// TotalAccruedInterest sums accrued interest across the collection as of today.
func (e *Engine) TotalAccruedInterest() decimal.Decimal {
	return model.TotalAccruedInterest(e.Items(), e.Today())
}

// Summary aggregates the collection as of today.
func (e *Engine) Summary() model.Summary {
	return model.Summarize(e.kind, e.Items(), e.Today())
}

// persist writes the collection. Callers hold e.mu.
func (e *Engine) persist() {
	snapshot := make([]model.Item, len(e.items))
	copy(snapshot, e.items)
	if err := e.store.Save(snapshot); err != nil {
		e.log.WithError(err).Warn("saving collection failed, keeping in-memory state")
		e.saveErr = err
		return
	}
	e.saveErr = nil
}
