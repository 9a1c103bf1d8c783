package auth

// CredentialKind tags how an Identity authenticates locally.
type CredentialKind string

const (
	// CredentialLocal means a bcrypt hash is stored for the identity.
	CredentialLocal CredentialKind = "local"
	// CredentialFederated means the identity was provisioned by an
	// external provider and has no local password.
	CredentialFederated CredentialKind = "federated"
)

// Credential is a kind-tagged credential. Hash is set only for local
// credentials; federated identities carry no secret at all.
type Credential struct {
	Kind CredentialKind
	Hash string
}

// Identity is a registered user record, keyed by a unique email.
// Records are never mutated after creation; there is no password-change
// path in this system.
type Identity struct {
	ID         string
	Email      string
	Credential Credential
}

// Principal is the public projection of an Identity. It is the only
// shape allowed to leave the auth layer (into sessions, logs, handlers);
// the credential hash stays behind the store boundary.
type Principal struct {
	ID    string
	Email string
}

func (i *Identity) Principal() *Principal {
	return &Principal{ID: i.ID, Email: i.Email}
}

// Profile is a normalized external identity asserted by an OAuth
// provider. It contains facts only, no decisions.
type Profile struct {
	Provider      string // e.g. "google"
	Subject       string // provider-scoped unique user identifier (sub)
	Email         string // email returned by provider
	EmailVerified bool   // whether provider asserts email ownership
}
