package order

import (
	"fmt"
	"strings"

	"github.com/wellywell/washboard/internal/types"
)

const AllStatuses = "ALL"

// ParseFilter turns a status filter value into a status. "" and "ALL" mean no
// filter and yield an empty status.
func ParseFilter(raw string) (types.Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, AllStatuses) {
		return "", nil
	}
	status, ok := types.ParseStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, raw)
	}
	return status, nil
}

// Filter keeps orders in the given status (empty for any) whose bag number or
// student name contains query. Input order is preserved.
func Filter(orders []types.Order, status types.Status, query string) []types.Order {
	out := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if !o.Matches(query) {
			continue
		}
		out = append(out, o)
	}
	return out
}
