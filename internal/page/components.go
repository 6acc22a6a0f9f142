package page

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func classes(cs ...string) g.Node {
	return h.Class(strings.Join(cs, " "))
}

// FloatingOrb is a blurred, pulsing shape. delay is the animation
// start offset in seconds.
func FloatingOrb(class string, delay int) g.Node {
	return h.Div(
		classes("absolute rounded-full blur-xl opacity-20 animate-pulse", class),
		h.Style("animation-delay: "+strconv.Itoa(delay)+"s"),
	)
}

// AnimatedBackground is the fixed set of orbs behind the hero plus a
// faint grid.
func AnimatedBackground() g.Node {
	return g.Group{
		h.Div(
			h.Class("absolute inset-0 overflow-hidden"),
			h.Aria("hidden", "true"),
			FloatingOrb("w-96 h-96 bg-emerald-500 -top-48 -left-48", 0),
			FloatingOrb("w-80 h-80 bg-purple-500 top-1/3 -right-40", 2),
			FloatingOrb("w-64 h-64 bg-blue-500 bottom-1/4 left-1/4", 4),
			FloatingOrb("w-72 h-72 bg-pink-500 -bottom-36 -right-36", 1),
		),
		h.Div(
			h.Class("absolute inset-0 bg-[linear-gradient(rgba(127,127,127,0.04)_1px,transparent_1px),linear-gradient(90deg,rgba(127,127,127,0.04)_1px,transparent_1px)] bg-[size:50px_50px]"),
			h.Aria("hidden", "true"),
		),
	}
}

// ProfileImage is the circular portrait with its glow ring. It sits
// above the fold, so the browser is told to fetch it first.
func ProfileImage(img Image) g.Node {
	return h.Div(
		h.Class("relative group shrink-0"),
		h.Div(h.Class("absolute -inset-4 bg-gradient-to-r from-emerald-500 via-purple-500 to-pink-500 rounded-full blur-lg opacity-30 group-hover:opacity-50 transition-opacity duration-500")),
		h.Div(
			h.Class("relative size-64 lg:size-96 rounded-full overflow-hidden border border-black/10 dark:border-white/10 backdrop-blur-sm bg-white/5 shadow-2xl"),
			h.Img(
				h.Src(img.Src),
				h.Alt(img.Alt),
				h.Class("absolute inset-0 h-full w-full object-cover transition-transform duration-700 group-hover:scale-110"),
				g.Attr("loading", "eager"),
				g.Attr("fetchpriority", "high"),
				g.Attr("decoding", "async"),
			),
		),
		h.Div(h.Class("absolute -top-4 -right-4 w-8 h-8 bg-emerald-400 rounded-full animate-bounce opacity-80")),
		h.Div(h.Class("absolute -bottom-6 -left-6 w-6 h-6 bg-purple-400 rounded-full animate-pulse opacity-60")),
	)
}

// HeroTitle renders the name as two spans with their own gradients.
func HeroTitle(firstName, lastName string) g.Node {
	return h.H1(
		h.Class("text-5xl sm:text-6xl lg:text-7xl xl:text-8xl font-bold leading-tight"),
		h.Span(
			h.Class("bg-gradient-to-r from-slate-900 via-emerald-700 to-emerald-500 dark:from-white dark:via-emerald-200 dark:to-emerald-400 text-transparent bg-clip-text"),
			g.Text(firstName+" "),
		),
		h.Span(
			h.Class("bg-gradient-to-r from-emerald-500 via-purple-500 to-pink-500 dark:from-emerald-400 dark:via-purple-400 dark:to-pink-400 text-transparent bg-clip-text"),
			g.Text(lastName),
		),
	)
}

func Subtitle(title string) g.Node {
	return h.Div(
		h.Class("space-y-2"),
		h.P(h.Class("text-2xl sm:text-3xl text-slate-600 dark:text-slate-300 font-light"), g.Text(title)),
		h.Div(h.Class("w-24 h-1 bg-gradient-to-r from-emerald-400 to-purple-400 rounded-full mx-auto lg:mx-0")),
	)
}

// HeroDescription renders the biography. Linked segments become inline
// anchors.
func HeroDescription(segments []Segment) g.Node {
	return h.P(
		h.Class("text-lg sm:text-xl text-slate-600 dark:text-slate-400 max-w-2xl leading-relaxed"),
		g.Map(segments, func(s Segment) g.Node {
			if s.Href == "" {
				return g.Text(s.Text)
			}
			return h.A(h.Href(s.Href), h.Class("text-emerald-600 dark:text-emerald-400 font-semibold"), g.Text(s.Text))
		}),
	)
}

// externalLink is shared by every anchor that leaves the site.
func externalLink(href string) g.Node {
	return g.Group{h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer")}
}

func SocialButton(link SocialLink) g.Node {
	return h.A(
		externalLink(link.Href),
		h.Aria("label", link.Label),
		classes(
			"group relative overflow-hidden inline-flex items-center gap-3",
			"border border-black/10 bg-black/5 text-slate-700 dark:border-white/10 dark:bg-white/5 backdrop-blur-md dark:text-slate-200",
			"hover:bg-black/10 hover:border-black/20 dark:hover:bg-white/10 dark:hover:border-white/20 hover:text-slate-900 dark:hover:text-white",
			"transition-all duration-300 ease-out",
			"rounded-xl px-6 py-3",
			"hover:scale-105 hover:shadow-lg hover:shadow-white/10",
		),
		h.Span(h.Class("transition-transform duration-300 group-hover:scale-110"), link.Icon.SVG("w-5 h-5")),
		h.Span(h.Class("font-medium"), g.Text(link.Label)),
	)
}

// SocialLinks renders one button per link, in order.
func SocialLinks(links []SocialLink) g.Node {
	return h.Div(
		h.Class("flex flex-wrap gap-4 justify-center lg:justify-start"),
		g.Map(links, SocialButton),
	)
}

// CTAButton is the sponsorship call-to-action.
func CTAButton(href, label string) g.Node {
	return h.Div(
		h.Class("pt-4"),
		h.A(
			externalLink(href),
			h.Class("group inline-flex items-center bg-gradient-to-r from-pink-500 to-red-600 hover:from-pink-600 hover:to-red-700 text-white border-0 px-8 py-4 text-lg font-semibold rounded-2xl shadow-2xl hover:shadow-pink-500/25 transition-all duration-300 hover:scale-105"),
			IconHeart.SVG("w-5 h-5 mr-2 group-hover:scale-110 transition-transform duration-300"),
			g.Text(label),
			IconArrowUpRight.SVG("w-5 h-5 ml-2 group-hover:translate-x-1 group-hover:-translate-y-1 transition-transform duration-300"),
		),
	)
}

// Footer shows the copyright line for year.
func Footer(name string, year int) g.Node {
	return h.Footer(
		h.Class("mt-24 text-center"),
		h.Div(
			h.Class("inline-flex items-center gap-2 text-slate-500 text-sm"),
			h.Div(h.Class("w-2 h-2 bg-emerald-400 rounded-full animate-pulse")),
			h.Span(g.Textf("© %d %s.", year, name)),
		),
	)
}
