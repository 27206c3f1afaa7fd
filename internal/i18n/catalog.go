// Package i18n looks up translated UI strings from a YAML message catalog.
//
// A catalog file maps locale tags to flat key/message tables:
//
//	en:
//	  modal.aria.back: Back
//	nb:
//	  modal.aria.back: Tilbake
//
// The built-in catalog covers the modal affordance labels; callers may load
// an override file that adds locales or replaces messages.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// Messages is a catalog for every known locale.
type Messages map[string]map[string]string

// Catalog resolves keys for one active locale.
type Catalog struct {
	messages Messages
	locale   language.Tag
	table    map[string]string
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (Messages, error) {
	var msgs Messages
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if msgs == nil {
		msgs = Messages{}
	}
	return msgs, nil
}

// Builtin returns the embedded catalog.
func Builtin() Messages {
	msgs, err := Parse(builtin)
	if err != nil {
		panic(err)
	}
	return msgs
}

// Load reads the catalog at path and merges it over the built-in messages.
// An empty path yields the built-in catalog.
func Load(path string) (Messages, error) {
	msgs := Builtin()
	if strings.TrimSpace(path) == "" {
		return msgs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	extra, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	for locale, table := range extra {
		key := canonical(locale)
		if msgs[key] == nil {
			msgs[key] = make(map[string]string, len(table))
		}
		for k, v := range table {
			msgs[key][k] = v
		}
	}
	return msgs, nil
}

// New returns a catalog bound to the locale best matching the requested one.
// Unknown or empty locales fall back to English.
func New(msgs Messages, locale string) *Catalog {
	normalised := make(Messages, len(msgs))
	for k, v := range msgs {
		normalised[canonical(k)] = v
	}
	c := &Catalog{messages: normalised}
	c.locale = c.match(locale)
	c.table = normalised[c.locale.String()]
	return c
}

// Locale returns the active locale.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// Locales lists the locales present in the catalog.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.messages))
	for k := range c.messages {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Translate returns the message for key, or fallback when the active locale
// has no entry for it.
func (c *Catalog) Translate(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if msg, ok := c.table[key]; ok && msg != "" {
		return msg
	}
	return fallback
}

func (c *Catalog) match(locale string) language.Tag {
	supported := []language.Tag{language.English}
	for _, k := range c.Locales() {
		tag, err := language.Parse(k)
		if err != nil || tag == language.English {
			continue
		}
		supported = append(supported, tag)
	}
	requested, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return language.English
	}
	_, idx, conf := language.NewMatcher(supported).Match(requested)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// FromEnvironment returns the locale named by LC_ALL, LC_MESSAGES or LANG, in
// that order of precedence.
func FromEnvironment(lookup func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(lookup(key)); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

// posixToBCP47 turns values such as "nb_NO.UTF-8" into "nb-NO".
func posixToBCP47(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func canonical(locale string) string {
	tag, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return strings.ToLower(locale)
	}
	return tag.String()
}
