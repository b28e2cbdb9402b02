package domain

// User represents a platform account.
type User struct {
	UserID   int64  `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	IsStaff  bool   `json:"is_staff" db:"is_staff"`
}
