// Package rendering assembles selected portfolio content into a self-contained printable HTML document.
package rendering

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// ContactLink is one rendered contact field.
type ContactLink struct {
	Label   string
	Display string
	Href    string
}

// FormatContact returns the present contact fields in display order:
// email, phone, LinkedIn, GitHub, portfolio. Values are not escaped.
func FormatContact(c types.Contact) []ContactLink {
	var links []ContactLink

	if email := strings.TrimSpace(c.Email); email != "" {
		links = append(links, ContactLink{Label: "Email", Display: email, Href: "mailto:" + email})
	}
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		links = append(links, ContactLink{Label: "Phone", Display: phone, Href: "tel:" + phoneDigits(phone)})
	}

	urls := []struct {
		label string
		value string
	}{
		{"LinkedIn", c.LinkedIn},
		{"GitHub", c.GitHub},
		{"Portfolio", c.Portfolio},
	}
	for _, u := range urls {
		value := strings.TrimSpace(u.value)
		if value == "" {
			continue
		}
		links = append(links, ContactLink{Label: u.label, Display: DisplayURL(value), Href: absoluteURL(value)})
	}

	return links
}

// DisplayURL strips the scheme, a leading "www." and a trailing slash.
func DisplayURL(url string) string {
	display := strings.TrimSpace(url)
	for _, prefix := range []string{"https://", "http://"} {
		if len(display) >= len(prefix) && strings.EqualFold(display[:len(prefix)], prefix) {
			display = display[len(prefix):]
			break
		}
	}
	if len(display) >= 4 && strings.EqualFold(display[:4], "www.") {
		display = display[4:]
	}
	return strings.TrimSuffix(display, "/")
}

// absoluteURL keeps the full URL as the link target, adding https:// when the
// value has no scheme.
func absoluteURL(url string) string {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}
	return "https://" + url
}

func phoneDigits(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
