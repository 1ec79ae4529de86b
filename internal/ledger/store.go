// Package ledger is the record store: it owns the delivery and daily-rate
// collections, validates input and persists the owning collection after
// every mutation.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/store"
)

// Persisted collection keys.
const (
	DeliveriesKey = "entregas-motoboy"
	DailyRatesKey = "diarias-motoboy"
)

// Options configures a Store.
type Options struct {
	// Clock supplies today and creation timestamps. Defaults to the system clock.
	Clock model.Clock
	// KeepDateOnEdit keeps a record's date when it is edited. By default an
	// edit re-dates the record to today.
	KeepDateOnEdit bool
	// Warn receives storage problems. Nil discards them.
	Warn func(error)
}

// Store holds both collections in insertion order. It is not safe for
// concurrent use.
type Store struct {
	backend    store.Backend
	clock      model.Clock
	keepDate   bool
	warn       func(error)
	deliveries []model.DeliveryRecord
	dailyRates []model.DailyRateRecord
	revision   uint64
}

// Open loads both collections from b. A missing or malformed collection
// starts empty; the problem goes to the warn hook and Open never fails.
func Open(b store.Backend, opts Options) *Store {
	s := &Store{
		backend:  b,
		clock:    opts.Clock,
		keepDate: opts.KeepDateOnEdit,
		warn:     opts.Warn,
	}
	if s.clock == nil {
		s.clock = model.SystemClock{}
	}
	if s.warn == nil {
		s.warn = func(error) {}
	}

	load(s, DeliveriesKey, &s.deliveries)
	load(s, DailyRatesKey, &s.dailyRates)
	return s
}

// SetWarn replaces the hook that receives storage problems. Nil discards them.
func (s *Store) SetWarn(fn func(error)) {
	if fn == nil {
		fn = func(error) {}
	}
	s.warn = fn
}

func load[T any](s *Store, key string, dst *[]T) {
	raw, err := s.backend.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	if err != nil {
		s.warn(fmt.Errorf("loading %s: %w", key, err))
		return
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.warn(fmt.Errorf("ignoring malformed %s: %w", key, err))
		return
	}
	*dst = records
}

func (s *Store) save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.warn(fmt.Errorf("encoding %s: %w", key, err))
		return
	}
	if err := s.backend.Set(key, raw); err != nil {
		s.warn(fmt.Errorf("saving %s: %w", key, err))
	}
}

func (s *Store) saveDeliveries() {
	s.revision++
	if s.deliveries == nil {
		s.save(DeliveriesKey, []model.DeliveryRecord{})
		return
	}
	s.save(DeliveriesKey, s.deliveries)
}

func (s *Store) saveDailyRates() {
	s.revision++
	if s.dailyRates == nil {
		s.save(DailyRatesKey, []model.DailyRateRecord{})
		return
	}
	s.save(DailyRatesKey, s.dailyRates)
}

// nextID returns the clock's millisecond reading, or one past the largest
// existing id when the clock has not moved past it.
func nextID(now int64, ids func(yield func(int64) bool)) int64 {
	id := now
	for existing := range ids {
		if existing >= id {
			id = existing + 1
		}
	}
	return id
}

func (s *Store) deliveryIDs(yield func(int64) bool) {
	for _, r := range s.deliveries {
		if !yield(r.ID) {
			return
		}
	}
}

func (s *Store) dailyRateIDs(yield func(int64) bool) {
	for _, r := range s.dailyRates {
		if !yield(r.ID) {
			return
		}
	}
}

// Today returns the clock's current calendar date.
func (s *Store) Today() model.Date {
	return model.Today(s.clock)
}

// AddDelivery appends a delivery dated today. It returns ErrEmptyLabel or
// ErrInvalidAmount without touching the collection when input is rejected.
func (s *Store) AddDelivery(clientAddress, fee string) (model.DeliveryRecord, error) {
	address, amount, err := parseInput(clientAddress, fee)
	if err != nil {
		return model.DeliveryRecord{}, err
	}
	now := s.clock.Now()
	r := model.DeliveryRecord{
		ID:            nextID(now.UnixMilli(), s.deliveryIDs),
		Date:          model.DateOf(now),
		ClientAddress: address,
		Fee:           amount,
		CreatedAt:     now,
	}
	s.deliveries = append(s.deliveries, r)
	s.saveDeliveries()
	return r, nil
}

// AddDailyRate appends a daily-rate job dated today. The schedule is optional.
func (s *Store) AddDailyRate(workplace, rate, schedule string) (model.DailyRateRecord, error) {
	place, amount, err := parseInput(workplace, rate)
	if err != nil {
		return model.DailyRateRecord{}, err
	}
	now := s.clock.Now()
	r := model.DailyRateRecord{
		ID:        nextID(now.UnixMilli(), s.dailyRateIDs),
		Date:      model.DateOf(now),
		Workplace: place,
		Rate:      amount,
		Schedule:  strings.TrimSpace(schedule),
		CreatedAt: now,
	}
	s.dailyRates = append(s.dailyRates, r)
	s.saveDailyRates()
	return r, nil
}

// addAdjustment appends a reconciliation record dated d.
func (s *Store) addAdjustment(d model.Date, label string, fee float64) model.DeliveryRecord {
	now := s.clock.Now()
	r := model.DeliveryRecord{
		ID:            nextID(now.UnixMilli(), s.deliveryIDs),
		Date:          d,
		ClientAddress: label,
		Fee:           fee,
		CreatedAt:     now,
		IsAdjustment:  true,
	}
	s.deliveries = append(s.deliveries, r)
	s.saveDeliveries()
	return r
}

// EditDelivery replaces the address and fee of the delivery with the given
// id, keeping its id and creation time. Unless KeepDateOnEdit is set the
// record is re-dated to today and loses its adjustment flag, as a freshly
// created record would.
func (s *Store) EditDelivery(id int64, clientAddress, fee string) (model.DeliveryRecord, error) {
	i := slices.IndexFunc(s.deliveries, func(r model.DeliveryRecord) bool { return r.ID == id })
	if i < 0 {
		return model.DeliveryRecord{}, fmt.Errorf("delivery %d: %w", id, ErrNotFound)
	}
	address, amount, err := parseInput(clientAddress, fee)
	if err != nil {
		return model.DeliveryRecord{}, err
	}

	old := s.deliveries[i]
	r := model.DeliveryRecord{
		ID:            old.ID,
		Date:          s.Today(),
		ClientAddress: address,
		Fee:           amount,
		CreatedAt:     old.CreatedAt,
	}
	if s.keepDate {
		r.Date = old.Date
		r.IsAdjustment = old.IsAdjustment
	}
	s.deliveries[i] = r
	s.saveDeliveries()
	return r, nil
}

// EditDailyRate replaces the workplace, rate and schedule of the daily rate
// with the given id. Dating follows the same rule as EditDelivery.
func (s *Store) EditDailyRate(id int64, workplace, rate, schedule string) (model.DailyRateRecord, error) {
	i := slices.IndexFunc(s.dailyRates, func(r model.DailyRateRecord) bool { return r.ID == id })
	if i < 0 {
		return model.DailyRateRecord{}, fmt.Errorf("daily rate %d: %w", id, ErrNotFound)
	}
	place, amount, err := parseInput(workplace, rate)
	if err != nil {
		return model.DailyRateRecord{}, err
	}

	old := s.dailyRates[i]
	r := model.DailyRateRecord{
		ID:        old.ID,
		Date:      s.Today(),
		Workplace: place,
		Rate:      amount,
		Schedule:  strings.TrimSpace(schedule),
		CreatedAt: old.CreatedAt,
	}
	if s.keepDate {
		r.Date = old.Date
	}
	s.dailyRates[i] = r
	s.saveDailyRates()
	return r, nil
}

// DeleteDelivery removes the delivery with the given id. It reports whether
// a record was removed; an absent id changes nothing.
func (s *Store) DeleteDelivery(id int64) bool {
	n := len(s.deliveries)
	s.deliveries = slices.DeleteFunc(s.deliveries, func(r model.DeliveryRecord) bool { return r.ID == id })
	if len(s.deliveries) == n {
		return false
	}
	s.saveDeliveries()
	return true
}

// DeleteDailyRate removes the daily rate with the given id.
func (s *Store) DeleteDailyRate(id int64) bool {
	n := len(s.dailyRates)
	s.dailyRates = slices.DeleteFunc(s.dailyRates, func(r model.DailyRateRecord) bool { return r.ID == id })
	if len(s.dailyRates) == n {
		return false
	}
	s.saveDailyRates()
	return true
}

// Delivery looks up a delivery by id.
func (s *Store) Delivery(id int64) (model.DeliveryRecord, bool) {
	i := slices.IndexFunc(s.deliveries, func(r model.DeliveryRecord) bool { return r.ID == id })
	if i < 0 {
		return model.DeliveryRecord{}, false
	}
	return s.deliveries[i], true
}

// DailyRate looks up a daily rate by id.
func (s *Store) DailyRate(id int64) (model.DailyRateRecord, bool) {
	i := slices.IndexFunc(s.dailyRates, func(r model.DailyRateRecord) bool { return r.ID == id })
	if i < 0 {
		return model.DailyRateRecord{}, false
	}
	return s.dailyRates[i], true
}

// DeliveriesOn returns the deliveries dated d in insertion order.
func (s *Store) DeliveriesOn(d model.Date) []model.DeliveryRecord {
	return model.Snapshot{Deliveries: s.deliveries}.DeliveriesOn(d)
}

// DailyRatesOn returns the daily rates dated d in insertion order.
func (s *Store) DailyRatesOn(d model.Date) []model.DailyRateRecord {
	return model.Snapshot{DailyRates: s.dailyRates}.DailyRatesOn(d)
}

// DistinctDates returns every date with a record, most recent first.
func (s *Store) DistinctDates() []model.Date {
	return s.Snapshot().DistinctDates()
}

// Snapshot returns a copy of both collections.
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		Deliveries: slices.Clone(s.deliveries),
		DailyRates: slices.Clone(s.dailyRates),
	}
}

// Revision increases on every mutation.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Replace swaps both collections for the snapshot's and persists them.
func (s *Store) Replace(snap model.Snapshot) {
	s.deliveries = slices.Clone(snap.Deliveries)
	s.dailyRates = slices.Clone(snap.DailyRates)
	s.saveDeliveries()
	s.saveDailyRates()
}

// Merge appends the snapshot's records whose id is not already present in
// the owning collection and returns how many were added.
func (s *Store) Merge(snap model.Snapshot) int {
	added := 0

	seenD := make(map[int64]struct{}, len(s.deliveries))
	for _, r := range s.deliveries {
		seenD[r.ID] = struct{}{}
	}
	for _, r := range snap.Deliveries {
		if _, ok := seenD[r.ID]; ok {
			continue
		}
		seenD[r.ID] = struct{}{}
		s.deliveries = append(s.deliveries, r)
		added++
	}

	seenR := make(map[int64]struct{}, len(s.dailyRates))
	for _, r := range s.dailyRates {
		seenR[r.ID] = struct{}{}
	}
	for _, r := range snap.DailyRates {
		if _, ok := seenR[r.ID]; ok {
			continue
		}
		seenR[r.ID] = struct{}{}
		s.dailyRates = append(s.dailyRates, r)
		added++
	}

	if added > 0 {
		s.saveDeliveries()
		s.saveDailyRates()
	}
	return added
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
