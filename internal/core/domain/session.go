package domain

import "time"

// Session is the token pair issued on sign-in or refresh.
type Session struct {
	User               *User
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}
