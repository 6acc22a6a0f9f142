package theme

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

type memStore struct {
	value   Preference
	ok      bool
	saveErr error
	saves   int
}

func (s *memStore) Load() (Preference, bool) { return s.value, s.ok }

func (s *memStore) Save(p Preference) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value, s.ok = p, true
	return nil
}

func TestParsePreference(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Preference{
		"dark":    Dark,
		" Light ": Light,
		"SYSTEM":  System,
	} {
		got, err := ParsePreference(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := ParsePreference("sepia")
	require.ErrorIs(t, err, ErrUnknownPreference)
}

func TestParseScheme(t *testing.T) {
	t.Parallel()

	s, ok := ParseScheme(`"light"`)
	require.True(t, ok)
	require.Equal(t, SchemeLight, s)

	_, ok = ParseScheme("no-preference")
	require.False(t, ok)
}

func TestNewDefaultsToDark(t *testing.T) {
	t.Parallel()

	c := New(Options{}, &memStore{}, "", zerolog.Nop())
	require.Equal(t, Dark, c.Preference())
	require.False(t, c.Explicit())
	require.Equal(t, SchemeDark, c.Resolved())
}

func TestNewLoadsStoredPreference(t *testing.T) {
	t.Parallel()

	c := New(DefaultOptions(), &memStore{value: Light, ok: true}, SchemeDark, zerolog.Nop())
	require.Equal(t, Light, c.Preference())
	require.True(t, c.Explicit())
	require.Equal(t, SchemeLight, c.Resolved())
}

func TestResolvedFollowsSystemWithoutStoredPreference(t *testing.T) {
	t.Parallel()

	c := New(DefaultOptions(), &memStore{}, SchemeLight, zerolog.Nop())
	require.Equal(t, SchemeLight, c.Resolved())

	opts := DefaultOptions()
	opts.EnableSystem = false
	c = New(opts, &memStore{}, SchemeLight, zerolog.Nop())
	require.Equal(t, SchemeDark, c.Resolved())
}

func TestResolvedExplicitSystem(t *testing.T) {
	t.Parallel()

	c := New(DefaultOptions(), &memStore{value: System, ok: true}, SchemeLight, zerolog.Nop())
	require.Equal(t, SchemeLight, c.Resolved())

	c = New(DefaultOptions(), &memStore{value: System, ok: true}, "", zerolog.Nop())
	require.Equal(t, SchemeDark, c.Resolved())
}

func TestSetPreferencePersistsAndNotifies(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	c := New(DefaultOptions(), store, "", zerolog.Nop())

	var got []Scheme
	cancel := c.Subscribe(func(_ Preference, s Scheme) { got = append(got, s) })

	c.SetPreference(Light)
	require.Equal(t, Light, c.Preference())
	require.Equal(t, []Scheme{SchemeLight}, got)
	require.Equal(t, Light, store.value)

	reloaded := New(DefaultOptions(), store, "", zerolog.Nop())
	require.Equal(t, Light, reloaded.Preference())
	require.Equal(t, SchemeLight, reloaded.Resolved())

	cancel()
	c.SetPreference(Dark)
	require.Len(t, got, 1)
}

func TestSetPreferenceSurvivesStoreFailure(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := zerolog.New(buf).Level(zerolog.DebugLevel)
	store := &memStore{saveErr: errors.New("quota exceeded")}
	c := New(DefaultOptions(), store, "", log)

	notified := 0
	c.Subscribe(func(Preference, Scheme) { notified++ })
	c.SetPreference(Light)

	require.Equal(t, Light, c.Preference())
	require.Equal(t, SchemeLight, c.Resolved())
	require.Equal(t, 1, notified)
	require.Equal(t, 1, store.saves)
	require.Contains(t, buf.String(), "quota exceeded")
}

func TestSetSystemSchemeNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	c := New(DefaultOptions(), nil, SchemeDark, zerolog.Nop())
	var got []Scheme
	c.Subscribe(func(_ Preference, s Scheme) { got = append(got, s) })

	c.SetSystemScheme(SchemeDark)
	require.Empty(t, got)

	c.SetSystemScheme(SchemeLight)
	require.Equal(t, []Scheme{SchemeLight}, got)

	c.SetPreference(Dark)
	c.SetSystemScheme(SchemeDark)
	c.SetSystemScheme(SchemeLight)
	require.Equal(t, []Scheme{SchemeLight, SchemeDark}, got)
}

func TestSelected(t *testing.T) {
	t.Parallel()

	c := New(DefaultOptions(), &memStore{}, SchemeLight, zerolog.Nop())
	require.Equal(t, Dark, c.Preference())
	require.Equal(t, System, c.Selected())

	opts := DefaultOptions()
	opts.EnableSystem = false
	c = New(opts, &memStore{}, SchemeLight, zerolog.Nop())
	require.Equal(t, Dark, c.Selected())

	c = New(DefaultOptions(), &memStore{value: Light, ok: true}, SchemeDark, zerolog.Nop())
	require.Equal(t, Light, c.Selected())

	c = New(DefaultOptions(), &memStore{}, SchemeLight, zerolog.Nop())
	c.SetPreference(Dark)
	require.Equal(t, Dark, c.Selected())
}

func TestRootAttributes(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	c := New(DefaultOptions(), &memStore{value: Light, ok: true}, "", zerolog.Nop())
	require.NoError(t, h.HTML(c.RootAttributes()).Render(&buf))
	require.Contains(t, buf.String(), `class="light"`)
	require.Contains(t, buf.String(), `color-scheme: light`)

	opts := DefaultOptions()
	opts.Attribute = "data-theme"
	buf.Reset()
	c = New(opts, nil, "", zerolog.Nop())
	require.NoError(t, h.HTML(c.RootAttributes()).Render(&buf))
	require.Contains(t, buf.String(), `data-theme="dark"`)
}

func TestBootScriptCarriesOptions(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	c := New(DefaultOptions(), nil, "", zerolog.Nop())
	require.NoError(t, c.BootScript().Render(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<script>"))
	require.Contains(t, out, `"key":"theme"`)
	require.Contains(t, out, `"system":true`)
	require.Contains(t, out, `"noTransition":true`)
	require.NotContains(t, out, "%CONFIG%")
	require.Contains(t, out, `["dark","light","system"]`)
}
