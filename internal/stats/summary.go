package stats

import (
	"time"

	"github.com/wellywell/washboard/internal/types"
)

const MonthsShown = 7

type MonthBucket struct {
	Label  string `json:"month"`
	Month  int    `json:"monthNumber"`
	Year   int    `json:"year"`
	Orders int    `json:"orders"`
}

type Today struct {
	Orders    int `json:"orders"`
	Completed int `json:"completed"`
}

type Summary struct {
	Total           int           `json:"total"`
	Pending         int           `json:"pending"`
	InProgress      int           `json:"inProgress"`
	Completed       int           `json:"completed"`
	Monthly         []MonthBucket `json:"monthly"`
	Today           Today         `json:"today"`
	CompletionRatio float64       `json:"completionRatio"`
}

// Summarize derives the dashboard counters from a list of orders. Orders are
// counted as given: duplicates by id are counted twice. Calendar months and
// days are taken in now's location.
func Summarize(orders []types.Order, now time.Time) Summary {
	loc := now.Location()
	s := Summary{
		Total:   len(orders),
		Monthly: monthWindow(now),
	}

	index := make(map[[2]int]int, len(s.Monthly))
	for i, b := range s.Monthly {
		index[[2]int{b.Year, b.Month}] = i
	}

	todayY, todayM, todayD := now.Date()
	for _, o := range orders {
		switch o.Status {
		case types.PendingStatus:
			s.Pending++
		case types.InProgressStatus:
			s.InProgress++
		case types.CompleteStatus:
			s.Completed++
		}

		if o.CreatedAt.IsZero() {
			continue
		}
		created := o.CreatedAt.In(loc)
		y, m, d := created.Date()
		if i, ok := index[[2]int{y, int(m)}]; ok {
			s.Monthly[i].Orders++
		}
		if y == todayY && m == todayM && d == todayD {
			s.Today.Orders++
			if o.Status == types.CompleteStatus {
				s.Today.Completed++
			}
		}
	}

	s.CompletionRatio = CompletionRatio(s.Completed, s.Total)
	return s
}

func CompletionRatio(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// monthWindow returns empty buckets for the trailing months, oldest first,
// ending with now's month.
func monthWindow(now time.Time) []MonthBucket {
	first := time.Date(now.Year(), now.Month()-(MonthsShown-1), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]MonthBucket, 0, MonthsShown)
	for i := 0; i < MonthsShown; i++ {
		m := first.AddDate(0, i, 0)
		buckets = append(buckets, MonthBucket{
			Label: m.Month().String()[:3],
			Month: int(m.Month()),
			Year:  m.Year(),
		})
	}
	return buckets
}
