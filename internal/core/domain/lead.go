package domain

// LeadStatus is the pipeline stage of a lead. The wire form of
// StatusInProgress contains a space and is authoritative.
type LeadStatus string

const (
	StatusNew        LeadStatus = "New"
	StatusInProgress LeadStatus = "In Progress"
	StatusConverted  LeadStatus = "Converted"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusConverted:
		return true
	}
	return false
}

type Lead struct {
	ID     int64      `json:"id,string"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Status LeadStatus `json:"status"`
}
