package entity

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UID string `json:"uid"`
}
