package domain

// WeatherRecord is one row of the input table. Temperatures are Fahrenheit.
type WeatherRecord struct {
	Date string  `json:"date"`
	MinF float64 `json:"min"`
	MaxF float64 `json:"max"`
}

// WeatherTable is an ordered list of records in input row order.
// Dates are not required to be unique.
type WeatherTable []WeatherRecord

// Len returns the number of records in the table.
func (t WeatherTable) Len() int { return len(t) }
