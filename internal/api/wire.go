package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wellywell/washboard/internal/types"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", s)
}

type wireOrder struct {
	ID              int      `json:"id"`
	BagNo           string   `json:"bagNo"`
	StudentName     string   `json:"studentName"`
	NumberOfClothes *int     `json:"numberOfClothes"`
	NoOfClothes     *int     `json:"noOfClothes"`
	Status          string   `json:"status"`
	SubmissionDate  wireTime `json:"submissionDate"`
	CreatedAt       wireTime `json:"createdAt"`
	UpdatedAt       wireTime `json:"updatedAt"`
}

func (w wireOrder) toOrder() types.Order {
	o := types.Order{
		ID:          w.ID,
		BagNo:       w.BagNo,
		StudentName: w.StudentName,
		CreatedAt:   w.CreatedAt.Time,
		UpdatedAt:   w.UpdatedAt.Time,
	}
	switch {
	case w.NumberOfClothes != nil:
		o.Clothes = *w.NumberOfClothes
	case w.NoOfClothes != nil:
		o.Clothes = *w.NoOfClothes
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = w.SubmissionDate.Time
	}
	if status, ok := types.ParseStatus(w.Status); ok {
		o.Status = status
	} else {
		o.Status = types.Status(w.Status)
	}
	return o
}

type wireStudent struct {
	BagNo        string   `json:"bagNo"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	EnrollmentNo string   `json:"enrollmentNo"`
	PhoneNo      string   `json:"phoneNo"`
	ResidencyNo  string   `json:"residencyNo"`
	CreatedAt    wireTime `json:"createdAt"`
	UpdatedAt    wireTime `json:"updatedAt"`
}

func (w wireStudent) toStudent() types.Student {
	return types.Student{
		BagNo:        w.BagNo,
		Name:         w.Name,
		Email:        w.Email,
		EnrollmentNo: w.EnrollmentNo,
		PhoneNo:      w.PhoneNo,
		ResidencyNo:  w.ResidencyNo,
		CreatedAt:    w.CreatedAt.Time,
		UpdatedAt:    w.UpdatedAt.Time,
	}
}

type wireWasherman struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

func (w wireWasherman) toWasherman() types.Washerman {
	return types.Washerman{
		ID:        w.ID,
		Username:  w.Username,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
}

type createOrderBody struct {
	BagNo           string `json:"bagNo"`
	NumberOfClothes int    `json:"numberOfClothes"`
}

type orderCountBody struct {
	NoOfClothes int `json:"noOfClothes"`
}

type orderStatusBody struct {
	Status string `json:"status"`
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
