package stats_refresh

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"pincode-service/internal/entities"
)

var (
	rulesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pincode_rules_total",
		Help: "Number of pincode rules across all shops.",
	})
	rulesDeliverable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pincode_rules_deliverable",
		Help: "Number of deliverable pincode rules across all shops.",
	})
)

type Service interface {
	GetTotals(ctx context.Context) (*entities.RulesTotals, error)
}

// StatsRefresh периодически перечитывает агрегаты таблицы правил в gauge-метрики.
type StatsRefresh struct {
	service  Service
	interval time.Duration
}

func NewStatsRefresh(service Service, interval time.Duration) *StatsRefresh {
	return &StatsRefresh{
		service:  service,
		interval: interval,
	}
}

func (s *StatsRefresh) TTL() time.Duration {
	return s.interval
}

func (s *StatsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	totals, err := s.service.GetTotals(ctxWithTimeout)
	if err != nil {
		return err
	}

	rulesTotal.Set(float64(totals.Total))
	rulesDeliverable.Set(float64(totals.Deliverable))

	return nil
}

func (s *StatsRefresh) Info() string {
	return "rules stats refresh"
}
