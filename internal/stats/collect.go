package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/types"
	"golang.org/x/sync/errgroup"
)

const RecentOrders = 5

type Source interface {
	ListOrders(ctx context.Context) api.Result[[]types.Order]
	ListStudents(ctx context.Context) api.Result[[]types.Student]
	ListWashermen(ctx context.Context) api.Result[[]types.Washerman]
}

type Dashboard struct {
	Stats    types.DashboardStats `json:"stats"`
	Summary  Summary              `json:"summary"`
	Recent   []types.Order        `json:"recentOrders"`
	Warnings []string             `json:"warnings,omitempty"`
}

// Collect fetches the three lists concurrently and builds the dashboard from
// whatever came back. A failed list counts as empty and adds a warning. A
// rejected session aborts the whole collection.
func Collect(ctx context.Context, src Source, now time.Time) (*Dashboard, error) {
	var (
		orders    api.Result[[]types.Order]
		students  api.Result[[]types.Student]
		washermen api.Result[[]types.Washerman]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders = src.ListOrders(gctx)
		return fatal(orders.Err)
	})
	g.Go(func() error {
		students = src.ListStudents(gctx)
		return fatal(students.Err)
	})
	g.Go(func() error {
		washermen = src.ListWashermen(gctx)
		return fatal(washermen.Err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Dashboard{Warnings: []string{}}
	for _, r := range []struct {
		name string
		err  error
	}{{"orders", orders.Err}, {"students", students.Err}, {"washermen", washermen.Err}} {
		if r.err != nil {
			d.Warnings = append(d.Warnings, fmt.Sprintf("Could not load %s: %s", r.name, api.Message(r.err)))
		}
	}
	if len(d.Warnings) > 0 {
		logger.Warnf("Dashboard built from partial data: %v", d.Warnings)
	}

	all := orders.OrEmpty()
	d.Summary = Summarize(all, now)
	d.Stats = types.DashboardStats{
		TotalStudents:    len(students.OrEmpty()),
		TotalWashermen:   len(washermen.OrEmpty()),
		TotalOrders:      d.Summary.Total,
		PendingOrders:    d.Summary.Pending,
		InProgressOrders: d.Summary.InProgress,
		CompletedOrders:  d.Summary.Completed,
	}

	n := min(RecentOrders, len(all))
	d.Recent = make([]types.Order, n)
	copy(d.Recent, all[:n])

	return d, nil
}

func fatal(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	return nil
}
