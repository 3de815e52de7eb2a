// Package autocomplete keeps the user's custom domains used to complete
// what is typed into the URL bar.
package autocomplete

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
)

var (
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrDuplicateDomain = errors.New("domain already exists")
	ErrOutOfRange      = errors.New("position out of range")
)

// Domains is an ordered list of custom domains, safe for concurrent use
type Domains struct {
	mu      sync.RWMutex
	domains []string
}

// NewDomains creates a list seeded with initial domains. Invalid or
// duplicate seeds are skipped.
func NewDomains(initial ...string) *Domains {
	d := &Domains{}
	for _, domain := range initial {
		_, _ = d.Add(domain)
	}
	return d
}

// List returns a copy of the domains in display order
func (d *Domains) List() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.domains))
	copy(out, d.domains)
	return out
}

// Add normalizes and appends a domain, returning the stored form
func (d *Domains) Add(raw string) (string, error) {
	domain, err := normalize(raw)
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.domains {
		if existing == domain {
			return "", ErrDuplicateDomain
		}
	}
	d.domains = append(d.domains, domain)
	return domain, nil
}

// Remove deletes the given domains and reports how many were removed
func (d *Domains) Remove(domains ...string) int {
	drop := make(map[string]bool, len(domains))
	for _, raw := range domains {
		if domain, err := normalize(raw); err == nil {
			drop[domain] = true
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.domains[:0]
	for _, domain := range d.domains {
		if !drop[domain] {
			kept = append(kept, domain)
		}
	}
	removed := len(d.domains) - len(kept)
	d.domains = kept
	return removed
}

// Move reorders the list, shifting the domain at from to position to
func (d *Domains) Move(from, to int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.domains)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrOutOfRange
	}

	domain := d.domains[from]
	rest := append(d.domains[:from:from], d.domains[from+1:]...)
	d.domains = append(rest[:to:to], append([]string{domain}, rest[to:]...)...)
	return nil
}

// Complete returns the first domain the typed text is a prefix of, trying
// each domain with and without its common subdomain.
func (d *Domains) Complete(text string) (string, bool) {
	prefix := strings.ToLower(strings.TrimSpace(text))
	if prefix == "" {
		return "", false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, domain := range d.domains {
		if strings.HasPrefix(domain, prefix) {
			return domain, true
		}
		if stripped := urlutil.StripCommonSubdomains(domain); strings.HasPrefix(stripped, prefix) {
			return stripped, true
		}
	}
	return "", false
}

func normalize(raw string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(domain, "://") {
		u, err := url.Parse(domain)
		if err != nil {
			return "", ErrInvalidDomain
		}
		domain = u.Hostname()
	}
	domain = strings.TrimSuffix(domain, "/")

	if domain == "" || strings.ContainsAny(domain, " /?#") {
		return "", ErrInvalidDomain
	}
	return domain, nil
}
