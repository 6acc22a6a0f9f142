package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon names an inline SVG glyph.
type Icon string

const (
	IconX            Icon = "x"
	IconLinkedIn     Icon = "linkedin"
	IconGitHub       Icon = "github"
	IconHeart        Icon = "heart"
	IconArrowUpRight Icon = "arrow-up-right"
)

type glyph struct {
	filled bool
	paths  string
}

var glyphs = map[Icon]glyph{
	IconX: {
		filled: true,
		paths:  `<path d="M18.244 2.25h3.308l-7.227 8.26 8.502 11.24H16.17l-5.214-6.817L4.99 21.75H1.68l7.73-8.835L1.254 2.25H8.08l4.713 6.231zm-1.161 17.52h1.833L7.084 4.126H5.117z"/>`,
	},
	IconLinkedIn: {
		paths: `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	},
	IconGitHub: {
		paths: `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	},
	IconHeart: {
		paths: `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	},
	IconArrowUpRight: {
		paths: `<path d="M7 7h10v10"/><path d="M7 17 17 7"/>`,
	},
}

// SVG renders the icon. Unknown icons render nothing.
func (i Icon) SVG(class string) g.Node {
	gl, ok := glyphs[i]
	if !ok {
		return g.Group{}
	}
	paint := []g.Node{g.Attr("fill", "none"), g.Attr("stroke", "currentColor"), g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round")}
	if gl.filled {
		paint = []g.Node{g.Attr("fill", "currentColor")}
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		h.Aria("hidden", "true"),
		h.Class(class),
		g.Group(paint),
		g.Raw(gl.paths),
	)
}
