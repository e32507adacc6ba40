package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// preferredLocalParts are role addresses worth picking over personal ones.
var preferredLocalParts = []string{"info", "contact", "owner", "hello", "office", "sales", "admin"}

// blockedEmailDomains are cloud/tooling providers whose addresses leak into
// page source but never belong to the business itself.
var blockedEmailDomains = []string{
	"sentry.io",
	"wixpress.com",
	"wix.com",
	"squarespace.com",
	"godaddy.com",
	"cloudflare.com",
	"example.com",
	"googleapis.com",
	"schema.org",
	"yourdomain.com",
	"domain.com",
}

// contactPaths are checked when the landing page yields nothing.
var contactPaths = []string{"/contact", "/contact-us", "/about", "/about-us"}

const maxScanBytes = 512 * 1024

// EmailFinder scrapes a business website for a contact email address. All
// fetches are short-lived and best effort; a finder failure never aborts an
// adapter run.
type EmailFinder struct {
	client *http.Client
}

func NewEmailFinder(timeout time.Duration) *EmailFinder {
	return &EmailFinder{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Discover returns the best email found on the site, or a synthesized
// info@<host> fallback when scanning yields nothing.
func (f *EmailFinder) Discover(ctx context.Context, websiteURL string) string {
	if email := f.scanPage(ctx, websiteURL); email != "" {
		return email
	}

	for _, path := range contactPaths {
		if email := f.scanPage(ctx, strings.TrimRight(websiteURL, "/")+path); email != "" {
			return email
		}
	}

	u, err := url.Parse(websiteURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	return fmt.Sprintf("info@%s", host)
}

func (f *EmailFinder) scanPage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; outreach-bot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScanBytes))
	if err != nil {
		return ""
	}

	return pickEmail(emailPattern.FindAllString(string(body), -1))
}

// pickEmail filters out tooling domains and prefers role-based local parts.
func pickEmail(candidates []string) string {
	var usable []string
	for _, raw := range candidates {
		email := strings.ToLower(raw)
		if isBlockedDomain(email) || strings.HasSuffix(email, ".png") || strings.HasSuffix(email, ".jpg") {
			continue
		}
		usable = append(usable, email)
	}
	if len(usable) == 0 {
		return ""
	}

	for _, local := range preferredLocalParts {
		for _, email := range usable {
			if strings.HasPrefix(email, local+"@") {
				return email
			}
		}
	}

	return usable[0]
}

func isBlockedDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return true
	}
	domain := email[at+1:]
	for _, blocked := range blockedEmailDomains {
		if domain == blocked || strings.HasSuffix(domain, "."+blocked) {
			return true
		}
	}
	return false
}
