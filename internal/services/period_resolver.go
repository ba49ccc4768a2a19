package services

import (
	"fmt"

	"frugalfolio/internal/models"
)

const (
	dayLabelLayout   = "Jan 02"
	monthLabelLayout = "Jan 2006"
	rangeLabelLayout = "Jan 02, 2006"
)

// ActiveWeek returns the Monday to Sunday week containing anchor.
func ActiveWeek(anchor models.Date) models.Period {
	sinceMonday := (int(anchor.Weekday()) + 6) % 7
	start := anchor.AddDays(-sinceMonday)
	return dayPeriod(start, start.AddDays(6))
}

// PriorWeek returns the seven days immediately before week.
func PriorWeek(week models.Period) models.Period {
	start := week.Start.AddDays(-7)
	return dayPeriod(start, start.AddDays(6))
}

// MonthBlock spans the `months` full calendar months that end with the month
// before anchor's month. The anchor's own, possibly partial, month is never
// included.
func MonthBlock(anchor models.Date, months int) models.Period {
	end := anchor.FirstOfMonth().AddDays(-1)
	return monthsEndingAt(end, months)
}

// PriorMonthBlock spans the `months` full calendar months immediately before block.
func PriorMonthBlock(block models.Period, months int) models.Period {
	return monthsEndingAt(block.Start.AddDays(-1), months)
}

// TrailingWindow returns the `days` days ending on anchor, anchor included.
func TrailingWindow(anchor models.Date, days int) models.Period {
	if days < 1 {
		days = 1
	}
	return dayPeriod(anchor.AddDays(-(days - 1)), anchor)
}

// PriorWindow returns the non-overlapping window of the same length that
// ends the day before window starts.
func PriorWindow(window models.Period) models.Period {
	end := window.Start.AddDays(-1)
	return dayPeriod(end.AddDays(-(window.Days() - 1)), end)
}

// WeeksEnding returns `weeks` whole weeks ending on weekEnd.
func WeeksEnding(weekEnd models.Date, weeks int) models.Period {
	if weeks < 1 {
		weeks = 1
	}
	return rangePeriod(weekEnd.AddDays(-(7*weeks - 1)), weekEnd)
}

// LookbackMonths returns [anchor - months, anchor].
func LookbackMonths(anchor models.Date, months int) models.Period {
	return rangePeriod(anchor.AddMonths(-months), anchor)
}

// CalendarMonth returns the full calendar month containing d.
func CalendarMonth(d models.Date) models.Period {
	start := d.FirstOfMonth()
	return models.Period{Start: start, End: start.LastOfMonth(), Label: start.Format(monthLabelLayout)}
}

// PreviousCalendarMonth returns the full calendar month before the one containing d.
func PreviousCalendarMonth(d models.Date) models.Period {
	return CalendarMonth(d.FirstOfMonth().AddDays(-1))
}

// ISOWeekLabel formats the ISO-8601 week of d as "2024-W05".
func ISOWeekLabel(d models.Date) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ShortWeekLabel formats the ISO-8601 week of d as "W05".
func ShortWeekLabel(d models.Date) string {
	_, week := d.ISOWeek()
	return fmt.Sprintf("W%02d", week)
}

// MonthLabel formats the month of d as "Jan 2024".
func MonthLabel(d models.Date) string {
	return d.Format(monthLabelLayout)
}

func monthsEndingAt(end models.Date, months int) models.Period {
	if months < 1 {
		months = 1
	}
	start := end.FirstOfMonth().AddMonths(-(months - 1))
	return models.Period{Start: start, End: end, Label: monthRangeLabel(start, end)}
}

func dayPeriod(start, end models.Date) models.Period {
	return models.Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s - %s", start.Format(dayLabelLayout), end.Format(dayLabelLayout)),
	}
}

func rangePeriod(start, end models.Date) models.Period {
	return models.Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s - %s", start.Format(rangeLabelLayout), end.Format(rangeLabelLayout)),
	}
}

func monthRangeLabel(start, end models.Date) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return start.Format(monthLabelLayout)
	}
	return fmt.Sprintf("%s - %s", start.Format(monthLabelLayout), end.Format(monthLabelLayout))
}
