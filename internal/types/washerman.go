package types

import (
	"strings"
	"time"
)

type Washerman struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WashermanInput is sent on create and update. An empty password is omitted
// from the payload so an update leaves the stored password untouched.
type WashermanInput struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

func (w Washerman) Matches(q string) bool {
	return strings.Contains(strings.ToLower(w.Username), strings.ToLower(strings.TrimSpace(q)))
}
