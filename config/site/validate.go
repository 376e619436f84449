package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/benlindsay/gatsby-site/config/validate"
	"github.com/rs/zerolog/log"
)

func (c SiteConfig) Validate(v *validate.ValidationErrors, path string) {
	validateURL(v, join(path, "url"), c.URL)
	validatePathPrefix(v, join(path, "pathPrefix"), c.PathPrefix)
	validate.RequireIntMin(v, join(path, "postsPerPage"), c.PostsPerPage, 1)
	validateMenu(v, join(path, "menu"), c.Menu)
	c.Author.validate(v, join(path, "author"))
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "/" + field
}

func validateURL(v *validate.ValidationErrors, path string, value string) {
	if !validate.RequireString(v, path, value) {
		return
	}
	u, err := url.Parse(value)
	if err != nil {
		validate.Invalid(v, path, value, "must be a parseable URI: "+err.Error())
		return
	}
	if !u.IsAbs() || u.Host == "" {
		validate.Invalid(v, path, value, "must be an absolute URI with scheme and host")
		return
	}
	validate.LogConfigOK(path, value)
}

func validatePathPrefix(v *validate.ValidationErrors, path string, value string) {
	switch {
	case !strings.HasPrefix(value, "/"):
		validate.Invalid(v, path, value, "must start with /")
	case !strings.HasSuffix(value, "/"):
		validate.Invalid(v, path, value, "must end with /")
	case strings.ContainsAny(value, " \t\r\n?#"):
		validate.Invalid(v, path, value, "must not contain whitespace, ? or #")
	default:
		validate.LogConfigOK(path, value)
	}
}

func validateMenu(v *validate.ValidationErrors, path string, menu []MenuItem) {
	seen := map[string]int{}
	for i, item := range menu {
		base := fmt.Sprintf("%s[%d]", path, i)
		validate.RequireString(v, base+"/label", item.Label)
		if !validate.RequireString(v, base+"/path", item.Path) {
			continue
		}
		if !strings.HasPrefix(item.Path, "/") && !isAbsoluteURL(item.Path) {
			validate.Invalid(v, base+"/path", item.Path, "must be root-relative or an absolute URL")
			continue
		}
		if first, ok := seen[item.Path]; ok {
			log.Logger.Warn().
				Str("config", base+"/path").
				Str("value", item.Path).
				Int("first", first).
				Msg("duplicate menu path")
			continue
		}
		seen[item.Path] = i
	}
}

func (a AuthorProfile) validate(v *validate.ValidationErrors, path string) {
	validate.LogConfigOK(path+"/name", a.Name)
	a.Contacts.validate(v, path+"/contacts")
}

func (c Contacts) validate(v *validate.ValidationErrors, path string) {
	ok := true
	if unknown := c.unknownKeys(); len(unknown) > 0 {
		validate.Invalid(v, path, unknown, fmt.Sprintf("unknown platform keys %v (allowed %v)", unknown, platforms))
		ok = false
	}
	if missing := c.missingKeys(); len(missing) > 0 {
		validate.Invalid(v, path, missing, fmt.Sprintf("missing platform keys %v (use an empty string for not provided)", missing))
		ok = false
	}
	if ok {
		validate.LogConfigOK(path, len(c))
	}
}
