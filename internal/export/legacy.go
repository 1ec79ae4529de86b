package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/theirongolddev/motolog/internal/model"
)

// Layout of the web app's "Exportar dados" file.
type legacyBackup struct {
	Entregas    []legacyEntrega `json:"entregas"`
	Diarias     []legacyDiaria  `json:"diarias"`
	ExportadoEm time.Time       `json:"exportadoEm"`
}

type legacyEntrega struct {
	ID              int64      `json:"id"`
	Data            model.Date `json:"data"`
	ClienteEndereco string     `json:"clienteEndereco"`
	ValorTaxa       float64    `json:"valorTaxa"`
	Timestamp       time.Time  `json:"timestamp"`
	IsAjuste        bool       `json:"isAjuste"`
}

type legacyDiaria struct {
	ID              int64      `json:"id"`
	Data            model.Date `json:"data"`
	LocalTrabalho   string     `json:"localTrabalho"`
	ValorDiaria     float64    `json:"valorDiaria"`
	HorarioTrabalho string     `json:"horarioTrabalho"`
	Timestamp       time.Time  `json:"timestamp"`
}

func readLegacy(raw []byte) (Bundle, error) {
	var lb legacyBackup
	if err := json.Unmarshal(raw, &lb); err != nil {
		return Bundle{}, fmt.Errorf("decoding legacy backup: %w", err)
	}

	b := Bundle{
		Deliveries: make([]model.DeliveryRecord, 0, len(lb.Entregas)),
		DailyRates: make([]model.DailyRateRecord, 0, len(lb.Diarias)),
		ExportedAt: lb.ExportadoEm,
	}
	for _, e := range lb.Entregas {
		b.Deliveries = append(b.Deliveries, model.DeliveryRecord{
			ID:            e.ID,
			Date:          e.Data,
			ClientAddress: e.ClienteEndereco,
			Fee:           e.ValorTaxa,
			CreatedAt:     e.Timestamp,
			IsAdjustment:  e.IsAjuste,
		})
	}
	for _, d := range lb.Diarias {
		b.DailyRates = append(b.DailyRates, model.DailyRateRecord{
			ID:        d.ID,
			Date:      d.Data,
			Workplace: d.LocalTrabalho,
			Rate:      d.ValorDiaria,
			Schedule:  d.HorarioTrabalho,
			CreatedAt: d.Timestamp,
		})
	}
	return b, nil
}
