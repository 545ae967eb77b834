package exporting

import (
	"context"

	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Sink é um destino da exportação. Cada execução sobrescreve o conteúdo anterior.
type Sink interface {
	Name() string
	Write(ctx context.Context, runID string, rows []domain.MergedRow) error
}

// Exporter executa uma exportação completa
type Exporter interface {
	Run(ctx context.Context) (*Result, error)
}
