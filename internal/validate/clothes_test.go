package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClothes(t *testing.T) {

	testCases := []struct {
		raw    string
		result bool
	}{
		{"0", false},
		{"51", false},
		{"-1", false},
		{"abc", false},
		{"", false},
		{"1", true},
		{"50", true},
		{"25", true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.result, Clothes(ParseClothes(tc.raw)))
		})
	}
}

func TestCountUnmarshal(t *testing.T) {

	testCases := []struct {
		body string
		want Count
	}{
		{`{"numberOfClothes": 12}`, 12},
		{`{"numberOfClothes": "7"}`, 7},
		{`{"numberOfClothes": "abc"}`, 0},
		{`{"numberOfClothes": 4.5}`, 0},
		{`{"numberOfClothes": null}`, 0},
		{`{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.body, func(t *testing.T) {
			var form CountForm
			require.NoError(t, json.Unmarshal([]byte(tc.body), &form))
			assert.Equal(t, tc.want, form.Clothes)
		})
	}
}
