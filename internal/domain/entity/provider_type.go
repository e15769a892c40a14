package entity

// ProviderType represents the credential type that produced a session.
// The values follow the identity provider's sign_in_provider claim.
type ProviderType string

const (
	// ProviderTypePassword indicates an email/password credential.
	ProviderTypePassword ProviderType = "password"
	// ProviderTypeGoogle indicates a Google social sign-in.
	ProviderTypeGoogle ProviderType = "google.com"
	// ProviderTypeApple indicates an Apple social sign-in.
	ProviderTypeApple ProviderType = "apple.com"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a valid value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypePassword, ProviderTypeGoogle, ProviderTypeApple:
		return true
	default:
		return false
	}
}
