package order

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/types"
)

type Client interface {
	ListOrders(ctx context.Context) api.Result[[]types.Order]
	UpdateOrderStatus(ctx context.Context, id int, status types.Status) (*types.Order, error)
}

// Service applies status changes. Its checks only shape what the dashboard
// offers; the backend decides whether a change is accepted.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Find(ctx context.Context, id int) (*types.Order, error) {
	res := s.client.ListOrders(ctx)
	if !res.OK() {
		return nil, res.Err
	}
	for _, o := range res.Data {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func (s *Service) SetStatus(ctx context.Context, id int, to types.Status) (*types.Order, error) {
	current, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, current, to)
}

// Advance moves the order to its suggested next status.
func (s *Service) Advance(ctx context.Context, id int) (*types.Order, error) {
	current, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if Terminal(current.Status) {
		return nil, fmt.Errorf("order %d: %w", id, ErrTerminal)
	}
	return s.apply(ctx, current, Next(current.Status))
}

func (s *Service) apply(ctx context.Context, current *types.Order, to types.Status) (*types.Order, error) {
	if !CanTransition(current.Status, to) {
		return nil, fmt.Errorf("%w", &TransitionError{OrderID: current.ID, From: current.Status, To: to})
	}
	if current.Status == to {
		return current, nil
	}

	updated, err := s.client.UpdateOrderStatus(ctx, current.ID, to)
	if err != nil {
		return nil, err
	}
	logger.Infof("Order %d moved from %s to %s", current.ID, current.Status, to)

	if updated == nil {
		changed := *current
		changed.Status = to
		return &changed, nil
	}
	return updated, nil
}
