package models

// Starter is one new hire to be rostered. StartDate and BirthDate are
// YYYY-MM-DD strings; BirthDate is validated when present but the builder
// does not schedule from it.
type Starter struct {
	Name          string   `json:"name"`
	StaffID       string   `json:"staffId,omitempty"`
	StartDate     string   `json:"startDate"`
	BirthDate     string   `json:"birthDate,omitempty"`
	BlackoutDates []string `json:"blackoutDates,omitempty"`
}

// QuotaSpec is one normalized outlet quota entry.
type QuotaSpec struct {
	Outlet string `json:"outlet"`
	Count  int    `json:"count"`
}
