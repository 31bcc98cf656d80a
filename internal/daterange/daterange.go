package daterange

import "time"

const Layout = "2006-01-02"

// Range é um intervalo de datas de calendário, inclusivo nas duas pontas.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) StartKey() string { return r.Start.Format(Layout) }
func (r Range) EndKey() string   { return r.End.Format(Layout) }

// Days lista cada dia do intervalo em ordem crescente.
func (r Range) Days() []time.Time {
	var days []time.Time
	for cur := r.Start; !cur.After(r.End); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Day é o intervalo de um único dia.
func Day(ref time.Time) Range {
	d := BeginningOfDay(ref)
	return Range{Start: d, End: d}
}

// WeeklyWindow é a semana de calendário com início na segunda-feira
// igual ou anterior à referência, 7 dias inclusivos.
func WeeklyWindow(ref time.Time) Range {
	d := BeginningOfDay(ref)

	offset := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	monday := d.AddDate(0, 0, -offset)

	return Range{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// MonthlyWindow vai do primeiro dia do mês até min(último dia, dia 30).
// Meses de 31 dias são truncados no dia 30 — comportamento histórico dos
// relatórios, mantido para os totais não mudarem.
func MonthlyWindow(ref time.Time) Range {
	d := BeginningOfDay(ref)

	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	last := first.AddDate(0, 1, -1)

	endDay := last.Day()
	if endDay > 30 {
		endDay = 30
	}
	end := time.Date(d.Year(), d.Month(), endDay, 0, 0, 0, 0, d.Location())

	return Range{Start: first, End: end}
}
