package chart

import (
	"fmt"
	"sort"

	"github.com/Knicklichtjedi/AnichartGraphQLReader/internal/anilist"
)

// FallbackDate substitutes a start date with any missing component.
// The fallback fires even when some components are present; partial
// dates are discarded wholesale.
const FallbackDate = "1.1.1999"

// Row is one extracted chart entry.
type Row struct {
	Romaji  string
	English string
	Date    string
}

// Extract converts media entries into chart rows, one row per entry in
// input order. Titles missing or null become the empty string; the
// start date is rendered day-first without zero padding.
func Extract(media []anilist.Media) []Row {
	rows := make([]Row, 0, len(media))
	for _, m := range media {
		rows = append(rows, Row{
			Romaji:  stringValue(m.Title.Romaji),
			English: stringValue(m.Title.English),
			Date:    FormatStartDate(m.StartDate),
		})
	}
	return rows
}

// FormatStartDate renders a fuzzy date as "day.month.year", falling
// back to FallbackDate unless all three components are set.
func FormatStartDate(d anilist.FuzzyDate) string {
	if d.Year == nil || d.Month == nil || d.Day == nil {
		return FallbackDate
	}
	return fmt.Sprintf("%d.%d.%d", *d.Day, *d.Month, *d.Year)
}

// Sort orders rows by English title, byte-wise and case-sensitive.
// Empty English titles sort first. The sort is stable so rows with
// equal English titles keep their input order.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].English < rows[j].English
	})
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
