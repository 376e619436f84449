package site

import (
	"github.com/rs/zerolog"
)

func (c *SiteConfig) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	e.Str("title", c.Title).
		Str("url", c.URL).
		Str("path_prefix", c.PathPrefix).
		Int("posts_per_page", c.PostsPerPage).
		Int("menu_items", len(c.Menu))
	if level <= zerolog.DebugLevel {
		labels := make([]string, 0, len(c.Menu))
		for _, m := range c.Menu {
			labels = append(labels, m.Label)
		}
		visible := []string{}
		for p := range c.VisibleContacts() {
			visible = append(visible, p)
		}
		e.Strs("menu", labels).
			Strs("contacts", visible).
			Bool("katex", c.UseKatex).
			Bool("disqus", c.DisqusShortname != "").
			Bool("analytics", c.GoogleAnalyticsID != "")
	}
}
