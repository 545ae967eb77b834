package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	// DateLayout é o formato da chave de dia usada em todos os joins
	DateLayout = time.DateOnly
	// Today resolve para a data de referência
	Today = "today"
	// MaxRangeDays limita o tamanho de qualquer intervalo (dez anos)
	MaxRangeDays = 3660
)

// DateRange é uma sequência inclusiva e contígua de dias em ordem crescente.
// Os dias são datas de calendário sem fuso (meia-noite UTC); loc é o fuso da
// data de referência, usado só para converter os limites em instantes.
type DateRange struct {
	start time.Time
	end   time.Time
	loc   *time.Location
	keys  []string
}

// NewDateRangeFromDays cria o intervalo [now - days, now], como o dashboard sempre fez
func NewDateRangeFromDays(days int, now time.Time) (DateRange, error) {
	if days < 0 {
		return DateRange{}, &InvalidRangeError{Reason: fmt.Sprintf("days must not be negative, got %d", days)}
	}
	if days > MaxRangeDays {
		return DateRange{}, &InvalidRangeError{Reason: fmt.Sprintf("days must not exceed %d, got %d", MaxRangeDays, days)}
	}

	end := calendarDay(now)
	start := end.AddDate(0, 0, -days)

	return newDateRange(start, end, now.Location())
}

// NewDateRange cria o intervalo entre startDate e endDate (YYYY-MM-DD ou "today")
func NewDateRange(startDate, endDate string, now time.Time) (DateRange, error) {
	start, err := resolveDate(startDate, now)
	if err != nil {
		return DateRange{}, &InvalidRangeError{Start: startDate, End: endDate, Reason: "invalid start date", Err: err}
	}

	end, err := resolveDate(endDate, now)
	if err != nil {
		return DateRange{}, &InvalidRangeError{Start: startDate, End: endDate, Reason: "invalid end date", Err: err}
	}

	dr, err := newDateRange(start, end, now.Location())
	var rangeErr *InvalidRangeError
	if errors.As(err, &rangeErr) {
		rangeErr.Start, rangeErr.End = startDate, endDate
	}

	return dr, err
}

// newDateRange recebe datas de calendário em UTC, onde todo dia tem 24 horas
func newDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, &InvalidRangeError{Reason: "end date precedes start date"}
	}

	span := int(end.Sub(start).Hours() / 24)
	if span > MaxRangeDays {
		return DateRange{}, &InvalidRangeError{Reason: fmt.Sprintf("range must not exceed %d days, got %d", MaxRangeDays, span)}
	}

	keys := make([]string, 0, span+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(DateLayout))
	}

	if loc == nil {
		loc = time.UTC
	}

	return DateRange{start: start, end: end, loc: loc, keys: keys}, nil
}

func resolveDate(value string, now time.Time) (time.Time, error) {
	if value == Today {
		return calendarDay(now), nil
	}

	return time.Parse(DateLayout, value)
}

// calendarDay retorna o dia de t, no fuso de t, como meia-noite UTC
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (d DateRange) StartKey() string { return d.start.Format(DateLayout) }
func (d DateRange) EndKey() string   { return d.end.Format(DateLayout) }
func (d DateRange) Len() int         { return len(d.keys) }

// Days retorna a quantidade de dias antes do último, como no parâmetro days
func (d DateRange) Days() int { return len(d.keys) - 1 }

// Keys retorna uma cópia das chaves em ordem crescente
func (d DateRange) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Contains verifica se a chave pertence ao intervalo
func (d DateRange) Contains(key string) bool {
	// chaves YYYY-MM-DD ordenam lexicograficamente
	_, found := slices.BinarySearch(d.keys, key)
	return found
}

// Filters converte o intervalo nos filtros usados pelos integradores
func (d DateRange) Filters() *InsigthFilters {
	start, end := d.start, d.end
	return &InsigthFilters{StartDate: &start, EndDate: &end, Location: d.loc}
}
