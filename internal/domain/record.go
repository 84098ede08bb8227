package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const TimestampLayout = "2006-01-02 15:04:05"

type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// BMIRecord is a single immutable observation. Height is stored in metres.
type BMIRecord struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	WeightKg   float64   `json:"weight_kg"`
	HeightM    float64   `json:"height_m"`
	BMI        float64   `json:"bmi"`
	Category   Category  `json:"category"`
	RecordedAt time.Time `json:"recorded_at"`
}

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	BMI       float64   `json:"bmi"`
}

type CalculateRequest struct {
	Username string    `json:"username"`
	Weight   TextInput `json:"weight"`
	Height   TextInput `json:"height"`
}

type CalculateResponse struct {
	BMIRecord
	Result string `json:"result"`
}

// TextInput holds the raw contents of an input field. It decodes from either a
// JSON string or a JSON number so clients may send "72.5" or 72.5.
type TextInput string

func (t *TextInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*t = TextInput(n.String())
	return nil
}
