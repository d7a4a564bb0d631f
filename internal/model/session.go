package model

import (
	"time"
)

type SessionType string

const (
	SessionGuest         SessionType = "guest"
	SessionAuthenticated SessionType = "authenticated"
)

const (
	GuestSessionTTL = 24 * time.Hour
	AuthSessionTTL  = 7 * 24 * time.Hour
)

// Session is the ephemeral identity record kept in Redis under
// session:{userId}; it expires via TTL and is never persisted relationally.
type Session struct {
	UserID            string      `json:"userId"`
	Type              SessionType `json:"type"`
	Username          string      `json:"username,omitempty"`
	Email             string      `json:"email,omitempty"`
	DisplayName       string      `json:"displayName,omitempty"`
	PreferredLanguage string      `json:"preferredLanguage"`
	CreatedAt         time.Time   `json:"createdAt"`
	ExpiresAt         time.Time   `json:"expiresAt"`
}
