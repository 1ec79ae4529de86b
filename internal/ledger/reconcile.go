package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/pipeline"
)

// AdjustmentPrefix starts the address of every reconciliation record.
const AdjustmentPrefix = "Ajuste Manual - "

// AdjustmentLabel names an adjustment of delta, e.g. "Ajuste Manual - +5.00"
// or "Ajuste Manual - -2.50".
func AdjustmentLabel(delta decimal.Decimal) string {
	sign := ""
	if delta.IsPositive() {
		sign = "+"
	}
	return AdjustmentPrefix + sign + delta.StringFixed(2)
}

// ReconcileDay brings entry's grand total to newTotal by appending one
// adjustment delivery for the difference, dated entry.Date. Existing records
// are never modified. When the totals already match, or the difference does
// not fit a record, nothing is created and ok is false.
func (s *Store) ReconcileDay(entry model.DayEntry, newTotal decimal.Decimal) (rec model.DeliveryRecord, ok bool) {
	delta := newTotal.Sub(entry.GrandTotal)
	if delta.IsZero() || !Finite(delta) {
		return model.DeliveryRecord{}, false
	}
	fee, _ := delta.Float64()
	return s.addAdjustment(entry.Date, AdjustmentLabel(delta), fee), true
}

// ReconcileDate reconciles d against the store's current records.
func (s *Store) ReconcileDate(d model.Date, newTotal decimal.Decimal) (model.DeliveryRecord, bool) {
	return s.ReconcileDay(pipeline.Day(s.Snapshot(), d), newTotal)
}
