package theme

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RootAttributes returns the attributes that select the theme on the
// document root element.
func (c *Context) RootAttributes() g.Node {
	s := string(c.Resolved())
	var selector g.Node
	if c.opts.Attribute == "class" {
		selector = h.Class(s)
	} else {
		selector = g.Attr(c.opts.Attribute, s)
	}
	return g.Group{selector, h.Style("color-scheme: " + s)}
}

type bootConfig struct {
	Key          string       `json:"key"`
	Attribute    string       `json:"attr"`
	Default      string       `json:"default"`
	System       bool         `json:"system"`
	NoTransition bool         `json:"noTransition"`
	Values       []Preference `json:"values"`
}

// The script runs before first paint. It re-reads the stored key,
// follows prefers-color-scheme when the preference allows it and
// exposes window.setTheme for in-page switching.
const bootScript = `(function(){
var c=%CONFIG%,d=document.documentElement,mq=window.matchMedia("(prefers-color-scheme: dark)");
function read(){var m=document.cookie.match(new RegExp("(?:^|; )"+c.key+"=([^;]*)"));if(!m)return null;var v=decodeURIComponent(m[1]).toLowerCase();return c.values.indexOf(v)<0?null:v}
function sys(){return mq.matches?"dark":"light"}
function follows(p){return c.system&&(p==="system"||!p)}
function resolve(p){if(follows(p))return sys();if(p==="dark"||p==="light")return p;return c["default"]==="light"?"light":"dark"}
function apply(s){var css=null;
if(c.noTransition){css=document.createElement("style");css.appendChild(document.createTextNode("*,*::before,*::after{transition:none!important}"));document.head.appendChild(css)}
if(c.attr==="class"){d.classList.remove("dark","light");d.classList.add(s)}else{d.setAttribute(c.attr,s)}
d.style.colorScheme=s;
if(css){window.getComputedStyle(document.body||d);setTimeout(function(){document.head.removeChild(css)},1)}}
apply(resolve(read()));
mq.addEventListener("change",function(){if(follows(read()))apply(sys())});
window.setTheme=function(p){document.cookie=c.key+"="+encodeURIComponent(p)+"; path=/; max-age=31536000; samesite=lax";apply(resolve(p))};
})();`

// BootScript returns the inline script that keeps the client in sync
// with the stored preference and the environment scheme.
func (c *Context) BootScript() g.Node {
	cfg, err := json.Marshal(bootConfig{
		Key:          c.opts.StorageKey,
		Attribute:    c.opts.Attribute,
		Default:      string(c.opts.Default),
		System:       c.opts.EnableSystem,
		NoTransition: c.opts.DisableTransitionOnChange,
		Values:       Preferences,
	})
	if err != nil {
		// bootConfig holds only strings, bools and a string slice.
		panic(err)
	}
	return h.Script(g.Raw(strings.Replace(bootScript, "%CONFIG%", string(cfg), 1)))
}
