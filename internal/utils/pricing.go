package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %v", err)
	}
	return t, nil
}

// InclusiveDays returns the number of rental days between start and end,
// counting both endpoints. start == end is a one-day rental.
func InclusiveDays(startStr, endStr string) (int32, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return 0, err
	}
	diff := int32(end.Sub(start).Hours() / 24)
	if diff < 0 {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	return diff + 1, nil
}

// RentalCostCents computes the total price for a date range at a daily rate.
// Pricing policy lives here with the caller, not in the lifecycle engine;
// the engine only validates that the amount it is handed is positive.
func RentalCostCents(pricePerDayCents int32, startStr, endStr string) (int32, error) {
	days, err := InclusiveDays(startStr, endStr)
	if err != nil {
		return 0, err
	}
	return pricePerDayCents * days, nil
}
