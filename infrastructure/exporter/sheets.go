package exporter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SinkSheets = "sheets"

// SheetsExporter limpa a aba e regrava cabeçalho e linhas
type SheetsExporter struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	timeout       time.Duration
}

func NewSheetsExporter(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*SheetsExporter, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, errors.New("sheets: GOOGLE_SPREADSHEET_ID not configured")
	}

	if cfg.Sheets.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Sheets.Endpoint), option.WithoutAuthentication())
	} else {
		credentialsJSON, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, errors.Wrapf(err, "sheets: read credentials file %s", cfg.Sheets.CredentialsFile)
		}
		opts = append(opts,
			option.WithCredentialsJSON(credentialsJSON),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: create service")
	}

	return &SheetsExporter{
		svc:           svc,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		sheetName:     cfg.Sheets.SheetName,
		timeout:       cfg.HTTPClientTimeout(),
	}, nil
}

func (e *SheetsExporter) Name() string { return SinkSheets }

func (e *SheetsExporter) Write(ctx context.Context, runID string, rows []domain.MergedRow) error {
	sheetName, err := e.targetSheet(ctx)
	if err != nil {
		return err
	}

	clearCtx, cancel := e.callContext(ctx)
	_, err = e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, sheetName, &sheets.ClearValuesRequest{}).
		Context(clearCtx).Do()
	cancel()
	if err != nil {
		return errors.Wrapf(err, "sheets: failed to clear %s", sheetName)
	}

	values := SheetValues(rows)
	updateCtx, cancel := e.callContext(ctx)
	defer cancel()
	_, err = e.svc.Spreadsheets.Values.Update(e.spreadsheetID, fmt.Sprintf("%s!A1", sheetName), &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(updateCtx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "sheets: failed to update %s", sheetName)
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"sheet":  sheetName,
		"rows":   len(rows),
	}).Debug("sheets: values written")

	return nil
}

// callContext limita cada chamada à API ao HTTP_CLIENT_TIMEOUT_SECONDS
func (e *SheetsExporter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// targetSheet usa GOOGLE_SHEET_NAME ou, na falta dele, a primeira aba da planilha
func (e *SheetsExporter) targetSheet(ctx context.Context) (string, error) {
	if e.sheetName != "" {
		return e.sheetName, nil
	}

	ctx, cancel := e.callContext(ctx)
	defer cancel()

	spreadsheet, err := e.svc.Spreadsheets.Get(e.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "sheets: failed to load spreadsheet")
	}

	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return "", errors.New("sheets: spreadsheet has no sheets")
	}

	return spreadsheet.Sheets[0].Properties.Title, nil
}

// SheetValues converte as linhas em células, com o cabeçalho na primeira linha
func SheetValues(rows []domain.MergedRow) [][]interface{} {
	header := make([]interface{}, 0, len(domain.MergedRowColumns))
	for _, column := range domain.MergedRowColumns {
		header = append(header, column)
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, header)

	for _, row := range rows {
		values = append(values, []interface{}{
			row.Date,
			row.TotalUsers,
			row.AddToCart,
			row.Purchases,
			row.PurchaseRevenue.Float64(),
			row.MetaActions.Join(domain.ActionSeparator),
			row.MetaSpend.Float64(),
		})
	}

	return values
}
