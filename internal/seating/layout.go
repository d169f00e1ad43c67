package seating

import (
	"sort"
	"strconv"

	"github.com/filmgate/storefront/internal/model"
)

// Row is one row of the seat map as presented to the visitor.
type Row struct {
	Label string       `json:"row"`
	Seats []model.Seat `json:"seats"`
}

// GroupByRow partitions seats by the leading letter of their label and
// returns rows in ascending alphabetical order with seats ascending by
// column within each row.  It is a pure view transform over the seat
// slice and keeps no state of its own.
func GroupByRow(seats []model.Seat) []Row {
	byRow := make(map[string][]model.Seat)
	for _, s := range seats {
		if s.Label == "" {
			continue
		}
		lbl := s.Label[:1]
		byRow[lbl] = append(byRow[lbl], s)
	}
	labels := make([]string, 0, len(byRow))
	for lbl := range byRow {
		labels = append(labels, lbl)
	}
	sort.Strings(labels)
	rows := make([]Row, 0, len(labels))
	for _, lbl := range labels {
		rowSeats := byRow[lbl]
		sort.Slice(rowSeats, func(i, j int) bool {
			return seatColumn(rowSeats[i]) < seatColumn(rowSeats[j])
		})
		rows = append(rows, Row{Label: lbl, Seats: rowSeats})
	}
	return rows
}

// seatColumn parses the numeric part of a seat label.  Labels that do
// not parse sort first.
func seatColumn(s model.Seat) int {
	if len(s.Label) < 2 {
		return 0
	}
	n, err := strconv.Atoi(s.Label[1:])
	if err != nil {
		return 0
	}
	return n
}
