package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Selection is one city picked in the host's color grouping.
type Selection struct {
	CityID   int    `json:"city_id" example:"2643743"`
	ColorHex string `json:"color" example:"#4f81bd"`
}

// DataView is the host's read of the visualization data: one row per leaf of
// the color hierarchy, plus any errors the host hit while reading it.
type DataView struct {
	Rows   []Row    `json:"rows"`
	Errors []string `json:"errors,omitempty"`
}

type Row struct {
	CityID CityID `json:"city_id" swaggertype:"string" example:"2643743"`
	Color  string `json:"color" example:"#4f81bd"`
}

// CityID accepts both the numeric id and its formatted string value.
type CityID int

func (c *CityID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = CityID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("city id must be a number or a string: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid city id %q: %w", s, err)
	}
	*c = CityID(n)

	return nil
}

// Selections returns the rows in host order, truncated to limit. total is
// the number of rows before truncation.
func (v DataView) Selections(limit int) (selections []Selection, total int) {
	total = len(v.Rows)

	n := total
	if limit >= 0 && n > limit {
		n = limit
	}

	selections = make([]Selection, 0, n)
	for _, row := range v.Rows[:n] {
		selections = append(selections, Selection{
			CityID:   int(row.CityID),
			ColorHex: row.Color,
		})
	}

	return selections, total
}
