package service

// AdminKey is one configured admin credential. The username exists for
// audit attribution; the secret is what callers present.
type AdminKey struct {
	Username string
	Secret   string
}

// AdminGate authorizes admin requests against the configured key set.
// Keys load once at startup and never change for the process lifetime.
type AdminGate struct {
	keys []AdminKey
}

func NewAdminGate(keys []AdminKey) *AdminGate {
	return &AdminGate{keys: keys}
}

// Check matches a caller-supplied token against every configured key's
// secret and returns the matched key for audit attribution. With no keys
// configured the whole admin surface is disabled and every token is
// rejected; otherwise a missing or unmatched token is rejected as an
// invalid key. The two rejections share a status code but keep distinct
// messages.
//
// Matching is exact string equality. Secrets are unique by operator
// responsibility; among duplicates the first match wins.
func (g *AdminGate) Check(token string) (*AdminKey, *Result) {
	if len(g.keys) == 0 {
		res := forbidden(msgAdminDisabled)
		return nil, &res
	}
	if token != "" {
		for i := range g.keys {
			if g.keys[i].Secret == token {
				return &g.keys[i], nil
			}
		}
	}
	res := forbidden(msgInvalidKey)
	return nil, &res
}
