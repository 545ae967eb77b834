package exporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
	"github.com/vfg2006/growth-dashboard-api/pkg/utils"
)

var ErrNoSinks = errors.New("export: no sink enabled")

type SinkResult struct {
	Sink       string `json:"sink"`
	Rows       int    `json:"rows"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type Result struct {
	RunID      string       `json:"run_id"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	Rows       int          `json:"rows"`
	Sinks      []SinkResult `json:"sinks"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// Failed indica se algum destino falhou
func (r *Result) Failed() bool {
	for _, s := range r.Sinks {
		if s.Error != "" {
			return true
		}
	}
	return false
}

type Service struct {
	reporter reporting.Reporter
	sinks    []Sink
	days     int
	now      func() time.Time
}

func NewService(reporter reporting.Reporter, days int, sinks ...Sink) *Service {
	return &Service{
		reporter: reporter,
		sinks:    sinks,
		days:     days,
		now:      time.Now,
	}
}

// Run monta as linhas dos últimos dias configurados e grava em todos os destinos.
// A falha de um destino não impede os demais e fica registrada no resultado.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	if len(s.sinks) == 0 {
		return nil, ErrNoSinks
	}

	startedAt := s.now()

	dr, err := domain.NewDateRangeFromDays(s.days, startedAt)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("export: failed to generate run id: %w", err)
	}

	rows, err := s.reporter.BuildMerged(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("export: failed to build merged rows: %w", err)
	}

	result := &Result{
		RunID:     runID,
		StartDate: dr.StartKey(),
		EndDate:   dr.EndKey(),
		Rows:      len(rows),
		Sinks:     make([]SinkResult, 0, len(s.sinks)),
		StartedAt: startedAt,
	}

	for _, sink := range s.sinks {
		sinkStarted := time.Now()
		err := sink.Write(ctx, runID, rows)
		sinkResult := SinkResult{
			Sink:       sink.Name(),
			Rows:       len(rows),
			DurationMS: time.Since(sinkStarted).Milliseconds(),
		}

		fields := logrus.Fields{
			"run_id":      runID,
			"sink":        sink.Name(),
			"rows":        len(rows),
			"duration_ms": sinkResult.DurationMS,
		}

		if err != nil {
			sinkResult.Rows = 0
			sinkResult.Error = err.Error()
			metrics.IncExportRun(sink.Name(), false)
			logrus.WithFields(fields).WithError(err).Error("export: sink failed")
		} else {
			metrics.IncExportRun(sink.Name(), true)
			logrus.WithFields(fields).Info("export: sink written")
		}

		result.Sinks = append(result.Sinks, sinkResult)
	}

	result.FinishedAt = s.now()
	return result, nil
}
