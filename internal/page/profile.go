// Package page renders the hero page from a Profile.
package page

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// ErrInvalidProfile wraps every Profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Segment is a run of description text, optionally linked.
type Segment struct {
	Text string
	Href string
}

// SocialLink is one entry of the social button row. Labels are unique
// within a profile.
type SocialLink struct {
	Href  string
	Icon  Icon
	Label string
}

// Image is the profile picture.
type Image struct {
	Src string
	Alt string
}

// Meta is the document metadata read by browsers and link previews.
type Meta struct {
	Title       string
	Description string
	Lang        language.Tag
}

// Profile is the whole content of the page.
type Profile struct {
	FirstName   string
	LastName    string
	Subtitle    string
	Description []Segment
	SocialLinks []SocialLink
	Image       Image
	SponsorURL  string
	CTALabel    string
	Meta        Meta
}

// FullName joins the first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Validate checks the invariants the components rely on.
func (p Profile) Validate() error {
	var errs []error
	if p.FullName() == "" {
		errs = append(errs, errors.New("name is empty"))
	}

	seen := make(map[string]bool, len(p.SocialLinks))
	for i, link := range p.SocialLinks {
		label := strings.TrimSpace(link.Label)
		switch {
		case label == "":
			errs = append(errs, fmt.Errorf("social link %d: empty label", i))
		case seen[label]:
			errs = append(errs, fmt.Errorf("social link %d: duplicate label %q", i, label))
		}
		seen[label] = true
		if !isAbsoluteURL(link.Href) {
			errs = append(errs, fmt.Errorf("social link %q: href %q is not an absolute URL", label, link.Href))
		}
	}

	if !isAbsoluteURL(p.SponsorURL) {
		errs = append(errs, fmt.Errorf("sponsor url %q is not an absolute URL", p.SponsorURL))
	}
	for _, seg := range p.Description {
		if seg.Href != "" && !isAbsoluteURL(seg.Href) && !strings.HasPrefix(seg.Href, "/") {
			errs = append(errs, fmt.Errorf("description link %q: bad href %q", seg.Text, seg.Href))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
