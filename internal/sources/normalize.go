package sources

import (
	"net/url"
	"strings"
)

// NormalizeWebsite validates a raw website value as an HTTP(S) URL,
// prefixing https:// when the scheme is missing. The second return value is
// false when the value cannot be salvaged.
func NormalizeWebsite(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	if !strings.Contains(u.Host, ".") {
		return "", false
	}

	return u.String(), true
}

// NormalizePhone reduces a raw phone value to E.164-like form. 10-digit US
// numbers get a +1 prefix, 11-digit numbers starting with 1 get a + prefix,
// anything else is rejected.
func NormalizePhone(raw string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	switch d := digits.String(); {
	case len(d) == 10:
		return "+1" + d, true
	case len(d) == 11 && d[0] == '1':
		return "+" + d, true
	default:
		return "", false
	}
}
