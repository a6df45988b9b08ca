package types

import (
	"strings"
	"time"
)

type Student struct {
	BagNo        string    `json:"bagNo"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	EnrollmentNo string    `json:"enrollmentNo"`
	PhoneNo      string    `json:"phoneNo"`
	ResidencyNo  string    `json:"residencyNo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StudentInput is the write side of a student. Password is never read back.
type StudentInput struct {
	BagNo        string `json:"bagNo"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EnrollmentNo string `json:"enrollmentNo"`
	PhoneNo      string `json:"phoneNo"`
	ResidencyNo  string `json:"residencyNo"`
	Password     string `json:"password,omitempty"`
}

func (s Student) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{s.Name, s.BagNo, s.PhoneNo, s.Email, s.EnrollmentNo, s.ResidencyNo} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
