package entity

import "time"

// InviteEmail is the message handed to the notifier after an invite commits.
type InviteEmail struct {
	To        string    `json:"to"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expires_at"`
}
