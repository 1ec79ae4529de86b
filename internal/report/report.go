// Package report formats the shareable plain-text day report.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/motolog/internal/model"
)

// Title names the report when it is handed to a share target.
const Title = "Relatório de Entregas"

// DefaultCurrency prefixes every amount unless Options says otherwise.
const DefaultCurrency = "R$"

// Options tunes the report text.
type Options struct {
	Currency string
}

// Format renders the report for d from snap. Daily rates come first, then
// deliveries in insertion order with a running total per line. The output
// depends only on snap and d.
func Format(snap model.Snapshot, d model.Date, opts Options) string {
	cur := opts.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	money := func(v decimal.Decimal) string {
		return cur + " " + v.StringFixed(2)
	}

	rates := snap.DailyRatesOn(d)
	deliveries := snap.DeliveriesOn(d)

	var b strings.Builder
	b.WriteString("📋 RELATÓRIO DE ENTREGAS\n")
	fmt.Fprintf(&b, "📅 %s\n\n", d.LongForm())

	totalRates := decimal.Zero
	if len(rates) > 0 {
		b.WriteString("💼 DIÁRIAS:\n")
		for i, r := range rates {
			fmt.Fprintf(&b, "%d. %s", i+1, r.Workplace)
			if r.Schedule != "" {
				fmt.Fprintf(&b, " (%s)", r.Schedule)
			}
			fmt.Fprintf(&b, " - %s\n", money(r.RateAmount()))
			totalRates = totalRates.Add(r.RateAmount())
		}
		fmt.Fprintf(&b, "💰 Total Diárias: %s\n\n", money(totalRates))
	}

	running := decimal.Zero
	if len(deliveries) > 0 {
		b.WriteString("🏍️ ENTREGAS:\n")
		for i, r := range deliveries {
			running = running.Add(r.FeeAmount())
			fmt.Fprintf(&b, "%d. %s - %s • Total: %s\n", i+1, r.ClientAddress, money(r.FeeAmount()), money(running))
		}
		fmt.Fprintf(&b, "💰 Total Entregas: %s\n\n", money(running))
	}

	fmt.Fprintf(&b, "💵 TOTAL GERAL: %s\n", money(running.Add(totalRates)))
	fmt.Fprintf(&b, "📊 %d entregas realizadas", len(deliveries))
	if len(rates) > 0 {
		fmt.Fprintf(&b, " + %d diária(s)", len(rates))
	}
	return b.String()
}
