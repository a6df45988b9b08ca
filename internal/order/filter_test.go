package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/washboard/internal/types"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		raw     string
		want    types.Status
		wantErr bool
	}{
		{"", "", false},
		{"ALL", "", false},
		{"all", "", false},
		{"pending", types.PendingStatus, false},
		{" COMPLETE ", types.CompleteStatus, false},
		{"washing", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFilter(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter(t *testing.T) {
	orders := []types.Order{
		{ID: 1, BagNo: "B-001", StudentName: "Asha Rao", Status: types.PendingStatus},
		{ID: 2, BagNo: "G-014", StudentName: "Meera Nair", Status: types.InProgressStatus},
		{ID: 3, BagNo: "B-120", StudentName: "Rohit Das", Status: types.CompleteStatus},
		{ID: 4, BagNo: "B-121", StudentName: "Arjun Sen", Status: types.PendingStatus},
	}

	ids := func(orders []types.Order) []int {
		out := []int{}
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		status types.Status
		query  string
		want   []int
	}{
		{"everything", "", "", []int{1, 2, 3, 4}},
		{"by status", types.PendingStatus, "", []int{1, 4}},
		{"by bag number", "", "b-12", []int{3, 4}},
		{"by student name", "", "meera", []int{2}},
		{"status and query", types.PendingStatus, "b-12", []int{4}},
		{"no match", types.CompleteStatus, "asha", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(orders, tt.status, tt.query)))
		})
	}
}
