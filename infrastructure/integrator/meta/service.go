package meta

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
)

var ErrAccountNotConfigured = errors.New("meta: ad account or access token not configured")

type MetaIntegrator struct {
	cfg      *config.Config
	Client   metaclient.Client
	location *time.Location
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:      cfg,
		Client:   client,
		location: time.Local,
	}
}

// WithLocation define o fuso usado para converter horários em datas
func (s *MetaIntegrator) WithLocation(loc *time.Location) *MetaIntegrator {
	s.location = loc
	return s
}

func (s *MetaIntegrator) accountID() (string, error) {
	if s.cfg.Meta.AdAccountID == "" || s.cfg.Meta.AccessToken == "" {
		return "", ErrAccountNotConfigured
	}
	return s.cfg.Meta.AdAccountID, nil
}

// GetChangeEvents retorna as alterações reconhecidas da conta no período.
// Tipos fora de metadomain.EventDescriptions são descartados.
func (s *MetaIntegrator) GetChangeEvents(ctx context.Context, filters *domain.InsigthFilters) ([]domain.ChangeEvent, error) {
	accountID, err := s.accountID()
	if err != nil {
		return nil, err
	}

	activities, err := s.Client.GetActivities(ctx, accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("activities: failed to get activities from API")
		return nil, err
	}

	events := make([]domain.ChangeEvent, 0, len(activities))
	ignored := 0
	for _, activity := range activities {
		description, ok := metadomain.DescribeEvent(s.cfg.Meta.EventLocale, activity.EventType)
		if !ok {
			ignored++
			continue
		}

		date, err := s.eventDate(activity.EventTime)
		if err != nil {
			s.skipMalformed(domain.NewMalformedRecordError(domain.SourceMetaActivities, "event_time", activity.EventTime, err))
			continue
		}

		events = append(events, domain.ChangeEvent{
			Date:        date,
			EventType:   activity.EventType,
			Description: description,
			ObjectName:  activity.ObjectName,
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"received":   len(activities),
		"accepted":   len(events),
		"ignored":    ignored,
	}).Debug("activities: successfully retrieved change events")

	return events, nil
}

// GetInsightSpend retorna o gasto diário agregado informado pelo edge de insights
func (s *MetaIntegrator) GetInsightSpend(ctx context.Context, filters *domain.InsigthFilters) ([]domain.SpendRecord, error) {
	accountID, err := s.accountID()
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.GetSpendInsights(ctx, accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get spend insights from API")
		return nil, err
	}

	records := make([]domain.SpendRecord, 0, len(rows))
	for _, row := range rows {
		if _, err := time.Parse(domain.DateLayout, row.DateStart); err != nil {
			s.skipMalformed(domain.NewMalformedRecordError(domain.SourceMetaInsights, "date_start", row.DateStart, err))
			continue
		}

		spend, err := parseAmount(row.Spend)
		if err != nil {
			s.skipMalformed(domain.NewMalformedRecordError(domain.SourceMetaInsights, "spend", row.Spend, err))
			continue
		}

		records = append(records, domain.SpendRecord{Date: row.DateStart, Spend: spend})
	}

	return records, nil
}

// GetTransactionSpend retorna as cobranças da conta por dia, com sinal original
func (s *MetaIntegrator) GetTransactionSpend(ctx context.Context, filters *domain.InsigthFilters) ([]domain.SpendRecord, error) {
	accountID, err := s.accountID()
	if err != nil {
		return nil, err
	}

	transactions, err := s.Client.GetTransactions(ctx, accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("transactions: failed to get transactions from API")
		return nil, err
	}

	records := make([]domain.SpendRecord, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Time <= 0 {
			s.skipMalformed(domain.NewMalformedRecordError(domain.SourceMetaTransactions, "time", fmt.Sprint(tx.Time), nil))
			continue
		}

		amount, err := transactionAmount(tx.Amount)
		if err != nil {
			s.skipMalformed(domain.NewMalformedRecordError(domain.SourceMetaTransactions, "amount", tx.Amount.Amount, err))
			continue
		}

		records = append(records, domain.SpendRecord{
			Date:  time.Unix(tx.Time, 0).In(s.location).Format(domain.DateLayout),
			Spend: amount,
		})
	}

	return records, nil
}

func (s *MetaIntegrator) eventDate(eventTime string) (string, error) {
	t, err := time.Parse(metadomain.EventTimeLayout, eventTime)
	if err != nil {
		var rfcErr error
		t, rfcErr = time.Parse(time.RFC3339, eventTime)
		if rfcErr != nil {
			return "", err
		}
	}
	return t.In(s.location).Format(domain.DateLayout), nil
}

func (s *MetaIntegrator) skipMalformed(err *domain.MalformedRecordError) {
	metrics.IncMalformedRecord(err.Source)
	logrus.WithFields(logrus.Fields{
		"source": err.Source,
		"field":  err.Field,
		"value":  err.Value,
	}).Warn("meta: skipping malformed record")
}

func parseAmount(value string) (domain.Money, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.ZeroMoney, nil
	}
	return domain.ParseMoney(value)
}

// transactionAmount usa amount e, na falta dele, amount_in_hundredths
func transactionAmount(amount metadomain.CurrencyAmount) (domain.Money, error) {
	if strings.TrimSpace(amount.Amount) != "" {
		return domain.ParseMoney(strings.TrimSpace(amount.Amount))
	}

	if amount.AmountInHundredths == "" {
		return domain.Money{}, errors.New("missing amount")
	}

	hundredths, err := domain.ParseMoney(amount.AmountInHundredths)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(hundredths.Decimal.Shift(-2)), nil
}
