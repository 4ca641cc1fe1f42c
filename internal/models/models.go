package models

// Status tracks where an application currently sits in the pipeline.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// Statuses returns every pipeline status in display order.
func Statuses() []Status {
	return []Status{StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}
}

// ValidStatus reports whether s is one of the four pipeline statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// ApplicationRecord is one tracked job application. The json tags match the
// export format exactly, so the persisted file doubles as a backup document.
type ApplicationRecord struct {
	ID      string `json:"id"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Source  string `json:"source"`
	Status  Status `json:"status"`
	Date    string `json:"date"` // day precision, YYYY-MM-DD
	Notes   string `json:"notes"`
}

// Account is the signed-in identity. It only lives for the session; the email
// is what namespaces the storage key.
type Account struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SortMode selects the comparator applied to the visible set.
type SortMode string

const (
	SortDateDesc    SortMode = "dateDesc"
	SortDateAsc     SortMode = "dateAsc"
	SortCompanyAsc  SortMode = "companyAsc"
	SortCompanyDesc SortMode = "companyDesc"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "All"

// QueryState is the transient filter/sort state. It is never persisted and
// resets whenever the active account changes.
type QueryState struct {
	Query  string
	Status string // StatusFilterAll or one of the Status values
	Sort   SortMode
}

// DefaultQueryState matches the view a fresh sign-in starts with.
func DefaultQueryState() QueryState {
	return QueryState{Status: StatusFilterAll, Sort: SortDateDesc}
}
