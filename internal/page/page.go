package page

import (
	"encoding/json"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/gabrielbrunop/site/internal/theme"
)

const (
	fontURL     = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;800&display=swap"
	tailwindURL = "https://cdn.tailwindcss.com"
)

// ThemeSwitch links to the theme setter for every preference.
func ThemeSwitch(active theme.Preference) g.Node {
	title := cases.Title(language.English)
	return h.Nav(
		h.Class("mt-6 flex justify-center gap-3 text-xs text-slate-500"),
		h.Aria("label", "Theme"),
		g.Map(theme.Preferences, func(p theme.Preference) g.Node {
			return h.A(
				h.Href("/theme/"+string(p)),
				h.Class("rounded-full px-3 py-1 hover:text-emerald-500 aria-[current=true]:text-emerald-500"),
				g.If(p == active, h.Aria("current", "true")),
				g.Text(title.String(string(p))),
			)
		}),
	)
}

// Page is the hero section. The footer year comes from now, so every
// render shows the current year.
func Page(p Profile, active theme.Preference, now time.Time) g.Node {
	return h.Main(
		h.Class("min-h-screen relative overflow-hidden bg-gradient-to-br from-slate-50 via-purple-50 to-slate-100 dark:from-slate-950 dark:via-purple-950 dark:to-slate-900"),
		AnimatedBackground(),
		h.Div(
			h.Class("relative z-10 min-h-screen flex flex-col items-center justify-center p-4 sm:p-8"),
			h.Div(
				h.Class("max-w-6xl w-full mx-auto"),
				h.Div(
					h.Class("flex flex-col lg:flex-row items-center gap-12 lg:gap-20"),
					ProfileImage(p.Image),
					h.Div(
						h.Class("flex-1 text-center lg:text-left space-y-8"),
						h.Div(
							h.Class("space-y-4"),
							HeroTitle(p.FirstName, p.LastName),
							Subtitle(p.Subtitle),
						),
						HeroDescription(p.Description),
						SocialLinks(p.SocialLinks),
						CTAButton(p.SponsorURL, p.CTALabel),
					),
				),
				Footer(p.FullName(), now.Year()),
				ThemeSwitch(active),
			),
		),
	)
}

// Document is the complete HTML document for the page.
func Document(p Profile, tc *theme.Context, now time.Time) g.Node {
	lang := p.Meta.Lang
	if lang == language.Und {
		lang = language.English
	}
	return h.Doctype(
		h.HTML(
			h.Lang(lang.String()),
			tc.RootAttributes(),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(p.Meta.Title)),
				h.Meta(h.Name("description"), h.Content(p.Meta.Description)),
				h.Meta(g.Attr("property", "og:title"), h.Content(p.Meta.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(p.Meta.Description)),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				h.Meta(g.Attr("property", "og:image"), h.Content(p.Image.Src)),
				h.Meta(h.Name("color-scheme"), h.Content("dark light")),
				tc.BootScript(),
				h.Link(h.Rel("preload"), h.Href(p.Image.Src), g.Attr("as", "image"), g.Attr("fetchpriority", "high")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.gstatic.com"), g.Attr("crossorigin", "")),
				h.Link(h.Rel("stylesheet"), h.Href(fontURL)),
				h.Script(h.Src(tailwindURL)),
				h.Script(g.Raw("tailwind.config="+tailwindConfig(tc.Options().Attribute)+";")),
			),
			h.Body(
				h.Class("antialiased"),
				h.Style("font-family: 'Inter', sans-serif"),
				Page(p, tc.Selected(), now),
			),
		),
	)
}

// tailwindConfig keys the dark: variant off the theme root attribute.
func tailwindConfig(attribute string) string {
	cfg := map[string]any{"darkMode": "class"}
	if attribute != "class" {
		cfg["darkMode"] = []string{"selector", `[` + attribute + `="dark"]`}
	}
	out, _ := json.Marshal(cfg)
	return string(out)
}
