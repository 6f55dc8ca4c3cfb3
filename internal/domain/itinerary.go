package domain

// ItineraryRow is one line of an exported itinerary: a flat, denormalized
// view of a single activity with the holiday name and destination repeated
// on every row. Optional activity fields hold "" and EstimatedCost nil when
// unset.
type ItineraryRow struct {
	HolidayName string
	Destination string

	DayNumber     int
	ActivityDate  string // "2006-01-02"
	SortOrder     int
	StartTime     string
	EndTime       string
	ActivityName  string
	VenueName     string
	Address       string
	EstimatedCost *float64
	Currency      string
	Notes         string
}

// Itinerary is a holiday with all of its activities flattened into rows,
// ordered by day_number then sort_order.
type Itinerary struct {
	Holiday Holiday
	Rows    []ItineraryRow
}
