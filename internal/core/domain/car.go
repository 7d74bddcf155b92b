package domain

// FleetCar is one railcar in the fleet table, identified by its reporting mark.
type FleetCar struct {
	CarID    string `json:"carID"`
	Mark     string `json:"mark"` // reporting mark, e.g. "RFLX 12345"
	CarType  string `json:"carType"`
	IsActive bool   `json:"isActive"`
}

// CarRemark maps a retired reporting mark to the mark that replaced it.
// Invoices frequently arrive carrying the old mark.
type CarRemark struct {
	OldMark string `json:"oldMark"`
	NewMark string `json:"newMark"`
}
