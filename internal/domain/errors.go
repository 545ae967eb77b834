package domain

import (
	"errors"
	"fmt"
)

// Origens de dados, usadas em logs, erros e métricas
const (
	SourceGA4              = "ga4"
	SourceMetaActivities   = "meta_activities"
	SourceMetaInsights     = "meta_insights"
	SourceMetaTransactions = "meta_transactions"
)

var (
	ErrInvalidRange        = errors.New("invalid date range")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedRecord     = errors.New("malformed record")
)

// InvalidRangeError indica limites de data inválidos. É fatal para a requisição.
type InvalidRangeError struct {
	Start  string
	End    string
	Reason string
	Err    error
}

func (e *InvalidRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidRange.Error(), e.Reason)
	if e.Start != "" || e.End != "" {
		msg = fmt.Sprintf("%s (start=%q, end=%q)", msg, e.Start, e.End)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }
func (e *InvalidRangeError) Unwrap() error        { return e.Err }

// UpstreamUnavailableError indica que uma origem falhou; a origem é tratada como vazia
type UpstreamUnavailableError struct {
	Source string
	Err    error
}

func NewUpstreamUnavailableError(source string, err error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Source: source, Err: err}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrUpstreamUnavailable.Error(), e.Source)
	}
	return fmt.Sprintf("%s: %s: %s", ErrUpstreamUnavailable.Error(), e.Source, e.Err.Error())
}

func (e *UpstreamUnavailableError) Is(target error) bool { return target == ErrUpstreamUnavailable }
func (e *UpstreamUnavailableError) Unwrap() error        { return e.Err }

// MalformedRecordError indica um campo de data ou número ilegível; o registro é descartado
type MalformedRecordError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func NewMalformedRecordError(source, field, value string, err error) *MalformedRecordError {
	return &MalformedRecordError{Source: source, Field: field, Value: value, Err: err}
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("%s: %s.%s=%q", ErrMalformedRecord.Error(), e.Source, e.Field, e.Value)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }
func (e *MalformedRecordError) Unwrap() error        { return e.Err }
