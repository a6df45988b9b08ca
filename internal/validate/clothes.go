package validate

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	MinClothes = 1
	MaxClothes = 50
)

// ParseClothes turns form input into a count. Anything that is not an integer
// becomes 0, which Clothes rejects.
func ParseClothes(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func Clothes(n int) bool {
	return n >= MinClothes && n <= MaxClothes
}

// Count decodes a clothes count sent either as a JSON number or a string.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Count(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Count(ParseClothes(s))
		return nil
	}
	*c = 0
	return nil
}
