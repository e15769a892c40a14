// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Principal is the authenticated identity for the lifetime of a session.
// It mirrors the identity provider's user record; the provider owns the
// record's lifecycle, we only hold it.
type Principal struct {
	UID           string       // The identity provider's unique user ID.
	Email         string       // The user's email, empty for providers that withhold it.
	DisplayName   string       // Optional display name.
	PhotoURL      string       // Optional URL to the user's profile picture.
	ProfileImage  string       // Optional storage path of a portal-managed profile image.
	Provider      ProviderType // Which credential produced this principal.
	EmailVerified bool         // Whether the provider has verified the email.
}

// UserProfile is the document database mirror of a Principal, keyed by the
// provider UID. It is written as a background side effect of sign-in and is
// never load-bearing for authentication.
type UserProfile struct {
	UID         string    `json:"uid" firestore:"-"` // Provider UID, used as the document ID.
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty" firestore:"photoUrl,omitempty"`
	Provider    string    `json:"provider,omitempty" firestore:"provider,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	LastLoginAt time.Time `json:"lastLoginAt" firestore:"lastLoginAt"`
}
