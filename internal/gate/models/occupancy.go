package models

// Occupancy summarizes where the roster currently is.
type Occupancy struct {
	Inside  int `json:"inside"`
	Outside int `json:"outside"`
	Total   int `json:"total"`
}

// CountOccupancy tallies residents by status.
func CountOccupancy(residents []Resident) Occupancy {
	var o Occupancy
	for _, r := range residents {
		if r.Status == StatusInside {
			o.Inside++
		}
	}
	o.Total = len(residents)
	o.Outside = o.Total - o.Inside
	return o
}
