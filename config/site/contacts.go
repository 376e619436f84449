package site

import (
	"iter"
	"slices"
	"sort"
)

// Contacts maps a platform key to a handle. An empty handle means "not provided";
// every key in Platforms must be present.
type Contacts map[string]string

const (
	ContactEmail     = "email"
	ContactFacebook  = "facebook"
	ContactTelegram  = "telegram"
	ContactTwitter   = "twitter"
	ContactGitHub    = "github"
	ContactRSS       = "rss"
	ContactVKontakte = "vkontakte"
	ContactLinkedIn  = "linkedin"
	ContactInstagram = "instagram"
	ContactLine      = "line"
	ContactGitLab    = "gitlab"
	ContactWeibo     = "weibo"
)

var platforms = []string{
	ContactEmail,
	ContactFacebook,
	ContactTelegram,
	ContactTwitter,
	ContactGitHub,
	ContactRSS,
	ContactVKontakte,
	ContactLinkedIn,
	ContactInstagram,
	ContactLine,
	ContactGitLab,
	ContactWeibo,
}

// Platforms returns the closed set of contact keys in declaration order.
func Platforms() []string {
	return slices.Clone(platforms)
}

func IsPlatform(key string) bool {
	return slices.Contains(platforms, key)
}

func EmptyContacts() Contacts {
	c := make(Contacts, len(platforms))
	for _, p := range platforms {
		c[p] = ""
	}
	return c
}

// unknownKeys returns keys outside the closed set, sorted.
func (c Contacts) unknownKeys() []string {
	var out []string
	for k := range c {
		if !IsPlatform(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func (c Contacts) missingKeys() []string {
	var out []string
	for _, p := range platforms {
		if _, ok := c[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// VisibleContacts yields (platform, handle) for every non-empty handle in
// declaration order. The sequence reads the config on each iteration.
func (c SiteConfig) VisibleContacts() iter.Seq2[string, string] {
	contacts := c.Author.Contacts
	return func(yield func(string, string) bool) {
		for _, p := range platforms {
			handle := contacts[p]
			if handle == "" {
				continue
			}
			if !yield(p, handle) {
				return
			}
		}
	}
}

// ContactURL resolves the handle of platform to the link shown on the site.
// Returns "" when the contact is not provided.
func (c SiteConfig) ContactURL(platform string) string {
	handle := c.Author.Contacts[platform]
	if handle == "" {
		return ""
	}
	switch platform {
	case ContactEmail:
		return "mailto:" + handle
	case ContactTwitter:
		return "https://www.twitter.com/" + handle
	case ContactGitHub:
		return "https://github.com/" + handle
	case ContactVKontakte:
		return "https://vk.com/" + handle
	case ContactTelegram:
		return "https://t.me/" + handle
	case ContactLinkedIn:
		return "https://linkedin.com/in/" + handle
	case ContactInstagram:
		return "https://instagram.com/" + handle
	case ContactLine:
		return "line://ti/p/" + handle
	case ContactGitLab:
		return "https://gitlab.com/" + handle
	case ContactWeibo:
		return "https://weibo.com/" + handle
	default:
		// facebook and rss are configured as full URLs
		return handle
	}
}
