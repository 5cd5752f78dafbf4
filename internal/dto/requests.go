package dto

import "time"

// ReportRange bounds a report query.
type ReportRange struct {
	Start time.Time
	End   time.Time
	Sort  string
}

// LoginResult is what a successful password-grant login yields.
type LoginResult struct {
	UserID      uint
	AccessToken string
}

// RegisterRequest creates a new user plus their first account.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	AccountName string `json:"account_name"`
	Token       string `json:"token"` // registration access token, when required
}

// InviteUserRequest invites a user into the active account.
type InviteUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message"`
}

// SnapClerkUploadRequest captures a receipt photo plus its extracted hints.
type SnapClerkUploadRequest struct {
	FileName string
	FileType string
	Category string
	Labels   string
	Note     string
	Lat      string
	Lon      string
}
