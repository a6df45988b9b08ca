package types

import (
	"strings"
	"time"
)

type Status string

const (
	PendingStatus    Status = "PENDING"
	InProgressStatus Status = "INPROGRESS"
	CompleteStatus   Status = "COMPLETE"
)

// ParseStatus accepts any letter case, the backend writes statuses lowercased.
func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case PendingStatus, InProgressStatus, CompleteStatus:
		return status, true
	}
	return "", false
}

type Order struct {
	ID          int       `json:"id"`
	BagNo       string    `json:"bagNo"`
	StudentName string    `json:"studentName,omitempty"`
	Clothes     int       `json:"clothes"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Matches reports whether the bag number or student name contains q, ignoring case.
func (o Order) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.BagNo), q) ||
		strings.Contains(strings.ToLower(o.StudentName), q)
}
