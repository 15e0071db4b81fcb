package domain

import (
	"sort"
	"time"
)

// DateRange is the 3-way filter applied before aggregation.
type DateRange string

const (
	Range7Days  DateRange = "7days"
	Range30Days DateRange = "30days"
	RangeAll    DateRange = "all"
)

// ValidDateRange reports whether r is one of the known filter values.
func ValidDateRange(r DateRange) bool {
	return r == Range7Days || r == Range30Days || r == RangeAll
}

// EmotionCount is one (label, count) pair of the emotion distribution.
type EmotionCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ScorePoint is one point of the score time series.
type ScorePoint struct {
	// Date is the display form of the entry date, e.g. "Jan 2".
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Emotion string `json:"emotion"`
}

// KeywordCount is one (keyword, count) pair of the keyword frequency.
type KeywordCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Insights holds the three independent projections derived from the
// filtered entry collection.
type Insights struct {
	EmotionDistribution []EmotionCount `json:"emotionDistribution"`
	ScoreSeries         []ScorePoint   `json:"scoreSeries"`
	KeywordFrequency    []KeywordCount `json:"keywordFrequency"`
}

// keywordTop is the truncation applied to the keyword frequency list.
const keywordTop = 10

// Aggregate derives the insight projections from entries. It is pure given
// (entries, dateRange, now); an empty filtered set yields empty projections.
//
// The emotion distribution carries no guaranteed order (first-seen order in
// practice). The score series is order-sensitive: ascending by entry date.
// Keyword frequency sorts descending by count with first-seen order as the
// tie-break.
func Aggregate(entries []DiaryEntry, dateRange DateRange, now time.Time) Insights {
	filtered := filterByRange(entries, dateRange, now)

	return Insights{
		EmotionDistribution: emotionDistribution(filtered),
		ScoreSeries:         scoreSeries(filtered),
		KeywordFrequency:    keywordFrequency(filtered),
	}
}

// filterByRange keeps entries whose parsed calendar date is on or after
// now minus 7/30 days. Entries with an unparsable date are dropped, same
// as the comparison failing.
func filterByRange(entries []DiaryEntry, dateRange DateRange, now time.Time) []DiaryEntry {
	var days int
	switch dateRange {
	case Range7Days:
		days = 7
	case Range30Days:
		days = 30
	default:
		return entries
	}

	cutoff := now.AddDate(0, 0, -days)
	filtered := make([]DiaryEntry, 0, len(entries))
	for _, entry := range entries {
		d, err := time.ParseInLocation(DateLayout, entry.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func emotionDistribution(entries []DiaryEntry) []EmotionCount {
	counts := make(map[string]int, len(Labels))
	order := make([]string, 0, len(Labels))

	for _, entry := range entries {
		if _, seen := counts[entry.EmotionLabel]; !seen {
			order = append(order, entry.EmotionLabel)
		}
		counts[entry.EmotionLabel]++
	}

	distribution := make([]EmotionCount, 0, len(order))
	for _, label := range order {
		distribution = append(distribution, EmotionCount{Name: label, Value: counts[label]})
	}
	return distribution
}

func scoreSeries(entries []DiaryEntry) []ScorePoint {
	sorted := make([]DiaryEntry, len(entries))
	copy(sorted, entries)

	// Lexicographic order on the zero-padded date equals chronological order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	series := make([]ScorePoint, 0, len(sorted))
	for _, entry := range sorted {
		series = append(series, ScorePoint{
			Date:    displayDate(entry.Date),
			Score:   entry.EmotionScore,
			Emotion: entry.EmotionLabel,
		})
	}
	return series
}

// displayDate shortens a YYYY-MM-DD date for chart axes; an unparsable
// date is displayed as-is.
func displayDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2")
}

func keywordFrequency(entries []DiaryEntry) []KeywordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			if _, seen := counts[keyword]; !seen {
				order = append(order, keyword)
			}
			counts[keyword]++
		}
	}

	frequency := make([]KeywordCount, 0, len(order))
	for _, keyword := range order {
		frequency = append(frequency, KeywordCount{Name: keyword, Value: counts[keyword]})
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(frequency, func(i, j int) bool {
		return frequency[i].Value > frequency[j].Value
	})

	if len(frequency) > keywordTop {
		frequency = frequency[:keywordTop]
	}
	return frequency
}
