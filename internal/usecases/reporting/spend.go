package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// ReconcileSpend calcula o gasto de cada dia do período. O valor agregado dos
// insights vale quando existe e é diferente de zero; caso contrário usa-se a soma
// dos valores absolutos das transações do dia. Registros fora do período são ignorados.
func ReconcileSpend(dr domain.DateRange, insights, transactions []domain.SpendRecord) domain.SpendByDate {
	aggregate := make(map[string]domain.Money)
	for _, r := range insights {
		if !dr.Contains(r.Date) {
			continue
		}
		aggregate[r.Date] = moneyAt(aggregate, r.Date).Add(r.Spend)
	}

	charged := make(map[string]domain.Money)
	for _, r := range transactions {
		if !dr.Contains(r.Date) {
			continue
		}
		charged[r.Date] = moneyAt(charged, r.Date).Add(r.Spend.Abs())
	}

	result := make(domain.SpendByDate, dr.Len())
	for _, date := range dr.Keys() {
		spend, ok := aggregate[date]
		if !ok || spend.IsZero() {
			spend = moneyAt(charged, date)
		}
		result[date] = spend.Rounded().NonNegative()
	}

	return result
}

func moneyAt(m map[string]domain.Money, date string) domain.Money {
	if v, ok := m[date]; ok {
		return v
	}
	return domain.ZeroMoney
}

// SpendReconciler busca insights e transações em paralelo e reconcilia o gasto
type SpendReconciler struct {
	source SpendSource
}

func NewSpendReconciler(source SpendSource) *SpendReconciler {
	return &SpendReconciler{source: source}
}

// Reconcile nunca falha: uma origem indisponível é tratada como vazia
func (r *SpendReconciler) Reconcile(ctx context.Context, dr domain.DateRange) domain.SpendByDate {
	filters := dr.Filters()

	var insights, transactions []domain.SpendRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		insights = fetch(gctx, domain.SourceMetaInsights, func(ctx context.Context) ([]domain.SpendRecord, error) {
			return r.source.GetInsightSpend(ctx, filters)
		})
		return nil
	})
	g.Go(func() error {
		transactions = fetch(gctx, domain.SourceMetaTransactions, func(ctx context.Context) ([]domain.SpendRecord, error) {
			return r.source.GetTransactionSpend(ctx, filters)
		})
		return nil
	})
	_ = g.Wait()

	return ReconcileSpend(dr, insights, transactions)
}

// fetch executa a busca medindo a duração. Em caso de erro registra a falha
// da origem e devolve vazio.
func fetch[T any](ctx context.Context, source string, fn func(context.Context) ([]T, error)) []T {
	started := time.Now()
	result, err := fn(ctx)
	metrics.ObserveUpstreamFetch(source, time.Since(started))

	if err != nil {
		upstreamErr := domain.NewUpstreamUnavailableError(source, err)
		metrics.IncUpstreamFailure(source)
		logrus.WithFields(logrus.Fields{
			"source": source,
			"error":  upstreamErr.Error(),
		}).Warn("reporting: upstream unavailable, using empty data")
		return nil
	}

	return result
}
