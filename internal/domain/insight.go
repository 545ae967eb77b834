package domain

import (
	"time"
)

// InsigthFilters delimita o período consultado nas APIs externas. StartDate e
// EndDate são datas de calendário; Location é o fuso em que os dias começam.
type InsigthFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Location  *time.Location
}

// Since retorna a data inicial no formato YYYY-MM-DD
func (f *InsigthFilters) Since() string {
	return f.StartDate.Format(time.DateOnly)
}

// Until retorna a data final no formato YYYY-MM-DD
func (f *InsigthFilters) Until() string {
	return f.EndDate.Format(time.DateOnly)
}

// Bounds retorna o início do primeiro dia e o último segundo do último dia, no fuso dos filtros
func (f *InsigthFilters) Bounds() (time.Time, time.Time) {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}

	sy, sm, sd := f.StartDate.Date()
	ey, em, ed := f.EndDate.Date()

	start := time.Date(sy, sm, sd, 0, 0, 0, 0, loc)
	end := time.Date(ey, em, ed+1, 0, 0, 0, 0, loc).Add(-time.Second)

	return start, end
}
