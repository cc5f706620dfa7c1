package webscrape

import (
	"net/url"
)

// Hyperlink is an anchor's display text paired with its absolute URL.
type Hyperlink struct {
	Text string
	URL  string
}

// String renders the link as "text (url)".
func (h Hyperlink) String() string {
	return h.Text + " (" + h.URL + ")"
}

// ExtractHyperlinks resolves every anchor against baseURL using RFC 3986
// reference resolution. Anchors with an empty href or an href that cannot be
// parsed are skipped. Document order and duplicates are preserved.
//
// Returns EINVALID if baseURL is not an absolute URL.
func ExtractHyperlinks(anchors []Anchor, baseURL string) ([]Hyperlink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, Errorf(EINVALID, "base URL %q is not absolute", baseURL)
	}

	links := make([]Hyperlink, 0, len(anchors))
	for _, a := range anchors {
		if a.Href == "" {
			continue
		}
		ref, err := url.Parse(a.Href)
		if err != nil {
			continue
		}
		links = append(links, Hyperlink{
			Text: a.Text,
			URL:  base.ResolveReference(ref).String(),
		})
	}
	return links, nil
}

// FormatHyperlinks renders links for display, one string per link.
func FormatHyperlinks(links []Hyperlink) []string {
	formatted := make([]string, 0, len(links))
	for _, l := range links {
		formatted = append(formatted, l.String())
	}
	return formatted
}
