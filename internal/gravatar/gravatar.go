// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// Options control the avatar variant requested from the Gravatar service.
type Options struct {
	Size    string // pixel size, e.g. "200"
	Rating  string // maximum content rating, e.g. "pg"
	Default string // fallback image when the email has no gravatar, e.g. "mm"
}

// DefaultOptions matches the parameters used at registration time.
var DefaultOptions = Options{Size: "200", Rating: "pg", Default: "mm"}

// URL returns the avatar URL for an email address. Hashing follows the
// Gravatar contract: trim, lowercase, then MD5.
func URL(email string, opts Options) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	q := url.Values{}
	if opts.Size != "" {
		q.Set("s", opts.Size)
	}
	if opts.Rating != "" {
		q.Set("r", opts.Rating)
	}
	if opts.Default != "" {
		q.Set("d", opts.Default)
	}

	u := baseURL + hex.EncodeToString(sum[:])
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}
