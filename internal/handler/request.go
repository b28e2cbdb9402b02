package handler

// TranscriptCredentialsRequest represents request body for POST /admin/transcript-credentials.
type TranscriptCredentialsRequest struct {
	Org       string `json:"org" binding:"required"`
	Provider  string `json:"provider" binding:"required"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
	Username  string `json:"username"`
}

// Identity headers trusted from the upstream gateway. Authentication itself
// happens there; these only carry who is acting and whether they are staff.
const (
	HeaderUser      = "X-User"
	HeaderUserStaff = "X-User-Staff"
)
