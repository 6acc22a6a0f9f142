// Package theme holds the color-scheme preference for a page render and
// applies it to the document root.
//
// A Context is created once per mount. It starts from the stored
// preference, or the configured default when nothing is stored, and
// broadcasts every change to its subscribers synchronously.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Preference is the user or system selected color scheme.
type Preference string

const (
	Dark   Preference = "dark"
	Light  Preference = "light"
	System Preference = "system"
)

// Preferences lists every preference in display order.
var Preferences = []Preference{Dark, Light, System}

// ErrUnknownPreference is returned when a value names no preference.
var ErrUnknownPreference = errors.New("unknown theme preference")

// ParsePreference parses a preference name, ignoring case and surrounding space.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case Dark, Light, System:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreference, s)
	}
}

func (p Preference) scheme() (Scheme, bool) {
	switch p {
	case Dark:
		return SchemeDark, true
	case Light:
		return SchemeLight, true
	default:
		return "", false
	}
}

// Scheme is a resolved, concrete color scheme.
type Scheme string

const (
	SchemeDark  Scheme = "dark"
	SchemeLight Scheme = "light"
)

// ParseScheme parses a scheme reported by the environment. It reports
// false for anything that is not dark or light.
func ParseScheme(s string) (Scheme, bool) {
	switch sc := Scheme(strings.Trim(strings.ToLower(strings.TrimSpace(s)), `"`)); sc {
	case SchemeDark, SchemeLight:
		return sc, true
	default:
		return "", false
	}
}

// Options configures a Context.
type Options struct {
	Default                   Preference
	EnableSystem              bool
	DisableTransitionOnChange bool
	// Attribute is "class" or the name of a data-* attribute set on the
	// document root.
	Attribute  string
	StorageKey string
}

// DefaultOptions returns dark by default with system tracking on.
func DefaultOptions() Options {
	return Options{
		Default:                   Dark,
		EnableSystem:              true,
		DisableTransitionOnChange: true,
		Attribute:                 "class",
		StorageKey:                "theme",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if _, err := ParsePreference(string(o.Default)); err != nil {
		o.Default = def.Default
	}
	if o.Attribute != "class" && !strings.HasPrefix(o.Attribute, "data-") {
		o.Attribute = def.Attribute
	}
	if o.StorageKey == "" {
		o.StorageKey = def.StorageKey
	}
	return o
}

// Store persists the last explicit preference.
type Store interface {
	Load() (Preference, bool)
	Save(Preference) error
}

// Listener receives the preference and the resolved scheme after a change.
type Listener func(pref Preference, resolved Scheme)

type subscriber struct {
	id int
	fn Listener
}

// Context holds the active preference. It is not safe for concurrent
// use; the server creates one per request.
type Context struct {
	opts  Options
	store Store
	log   zerolog.Logger

	pref     Preference
	explicit bool
	system   Scheme

	nextID int
	subs   []subscriber
}

// New creates a Context. system is the scheme reported by the
// environment at mount time, or "" when unknown. A nil store keeps the
// preference in memory only.
func New(opts Options, store Store, system Scheme, log zerolog.Logger) *Context {
	opts = opts.withDefaults()
	c := &Context{
		opts:   opts,
		store:  store,
		log:    log,
		pref:   opts.Default,
		system: system,
	}
	if store != nil {
		if p, ok := store.Load(); ok {
			c.pref = p
			c.explicit = true
		}
	}
	return c
}

// Options returns the effective options.
func (c *Context) Options() Options {
	return c.opts
}

// Preference returns the current preference.
func (c *Context) Preference() Preference {
	return c.pref
}

// Explicit reports whether the preference came from the user rather
// than the default.
func (c *Context) Explicit() bool {
	return c.explicit
}

// Selected is the choice a theme switch should mark as current. With
// nothing stored and system tracking on, that is System rather than the
// default the context started from.
func (c *Context) Selected() Preference {
	if !c.explicit && c.opts.EnableSystem {
		return System
	}
	return c.pref
}

// Resolved returns the scheme to apply.
func (c *Context) Resolved() Scheme {
	if c.followsSystem() && c.system != "" {
		return c.system
	}
	if s, ok := c.pref.scheme(); ok {
		return s
	}
	if s, ok := c.opts.Default.scheme(); ok {
		return s
	}
	return SchemeDark
}

func (c *Context) followsSystem() bool {
	if !c.opts.EnableSystem {
		return false
	}
	return c.pref == System || !c.explicit
}

// SetPreference updates the preference, persists it and notifies
// subscribers. A failing store leaves the new value in memory.
func (c *Context) SetPreference(p Preference) {
	c.pref = p
	c.explicit = true
	if c.store != nil {
		if err := c.store.Save(p); err != nil {
			c.log.Debug().Err(err).Str("preference", string(p)).Msg("theme preference kept in memory only")
		}
	}
	c.notify()
}

// SetSystemScheme records a change of the environment scheme.
// Subscribers hear about it only when the resolved scheme changes.
func (c *Context) SetSystemScheme(s Scheme) {
	before := c.Resolved()
	c.system = s
	if c.Resolved() != before {
		c.notify()
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Context) Subscribe(fn Listener) (cancel func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Context) notify() {
	resolved := c.Resolved()
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(c.pref, resolved)
	}
}
