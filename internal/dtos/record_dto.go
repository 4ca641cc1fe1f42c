package dtos

// RecordRequest carries the editable fields for create and update. Company
// and role are required only after trimming, so the store owns that check
// instead of a binding tag.
type RecordRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Source  string `json:"source"`
	Status  string `json:"status"` // Defaults to "Applied" if empty
	Date    string `json:"date"`   // Defaults to today if empty
	Notes   string `json:"notes"`
}

// SignInRequest carries the credential returned by the Google Identity
// Services callback.
type SignInRequest struct {
	Credential string `json:"credential" binding:"required"`
}
