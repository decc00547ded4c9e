package sec

import (
	"encoding/base64"
	"strings"
)

// Credentials is an (identifier, secret) pair extracted from an Authorization
// header. The identifier is the user's email address.
type Credentials struct {
	Identifier string
	Secret     string
}

// ParseAuthorization extracts Basic Auth credentials from a raw Authorization
// header value. A missing or malformed header reports ok=false; that is an
// absence of credentials, not an error. Secrets containing colons are
// captured whole: the payload is split on the first colon only.
func ParseAuthorization(header string) (creds Credentials, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return creds, false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return creds, false
	}
	identifier, secret, found := strings.Cut(string(raw), ":")
	if !found {
		return creds, false
	}
	return Credentials{Identifier: identifier, Secret: secret}, true
}
