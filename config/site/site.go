package site

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

type SiteConfig struct {
	URL               string        `yaml:"url" json:"url"`
	PathPrefix        string        `yaml:"pathPrefix" json:"pathPrefix"`
	Title             string        `yaml:"title" json:"title"`
	Subtitle          string        `yaml:"subtitle" json:"subtitle"`
	Copyright         string        `yaml:"copyright" json:"copyright"`
	DisqusShortname   string        `yaml:"disqusShortname" json:"disqusShortname"`
	PostsPerPage      int           `yaml:"postsPerPage" json:"postsPerPage"`
	GoogleAnalyticsID string        `yaml:"googleAnalyticsId" json:"googleAnalyticsId"`
	UseKatex          bool          `yaml:"useKatex" json:"useKatex"`
	Menu              Menu          `yaml:"menu" json:"menu"`
	Author            AuthorProfile `yaml:"author" json:"author"`
}

// Menu is the navigation in display order. A nil menu and an empty one are
// kept apart in documents: nil is written as null, empty as [].
type Menu []MenuItem

// MenuItem is one navigation entry.
type MenuItem struct {
	Label string `yaml:"label" json:"label"`
	Path  string `yaml:"path" json:"path"`
}

type AuthorProfile struct {
	Name     string   `yaml:"name" json:"name"`
	Photo    string   `yaml:"photo" json:"photo"`
	Bio      string   `yaml:"bio" json:"bio"`
	Contacts Contacts `yaml:"contacts" json:"contacts"`
}

// Clone returns a deep copy. The menu slice and the contacts map are not shared.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.Menu = slices.Clone(c.Menu)
	out.Author.Contacts = maps.Clone(c.Author.Contacts)
	return out
}

// PageURL builds the absolute URL of a site path, honouring the path prefix.
func (c SiteConfig) PageURL(p string) string {
	if isAbsoluteURL(p) {
		return p
	}
	base := strings.TrimSuffix(c.URL, "/")
	prefix := strings.TrimSuffix(c.PathPrefix, "/")
	return base + prefix + "/" + strings.TrimPrefix(p, "/")
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
