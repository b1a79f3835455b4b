package entity

// TokenPair is the credential pair returned by the token endpoint. Both
// tokens are opaque to the client; no expiry or signature checking happens
// locally.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
