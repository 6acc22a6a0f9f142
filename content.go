package main

import (
	"golang.org/x/text/language"

	"github.com/gabrielbrunop/site/internal/page"
)

var profile = page.Profile{
	FirstName: "Gabriel",
	LastName:  "Bruno",
	Subtitle:  "Software Engineer",
	Description: []page.Segment{
		{Text: "Computer enthusiast. Creator of "},
		{Text: "Tenda", Href: "https://tenda.dev"},
		{Text: ", a programming language designed for Portuguese speakers."},
	},
	SocialLinks: []page.SocialLink{
		{Href: "https://x.com/gabrielbrunodev", Icon: page.IconX, Label: "X.com"},
		{Href: "https://linkedin.com/in/gabrielbrunoop", Icon: page.IconLinkedIn, Label: "LinkedIn"},
		{Href: "https://github.com/gabrielbrunop", Icon: page.IconGitHub, Label: "GitHub"},
	},
	Image:      page.Image{Src: "/static/avatar.png", Alt: "Gabriel Bruno"},
	SponsorURL: "https://github.com/sponsors/gabrielbrunop",
	CTALabel:   "Sponsor",
	Meta: page.Meta{
		Title:       "Gabriel Bruno",
		Description: "Personal website of Gabriel Bruno, software engineer and creator of the Tenda programming language.",
		Lang:        language.English,
	},
}
