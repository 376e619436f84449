package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/benlindsay/gatsby-site/config"
	"github.com/benlindsay/gatsby-site/config/site"
	"github.com/benlindsay/gatsby-site/config/validate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func run(t *testing.T, cfg site.SiteConfig, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(cfg, args, &out)
	return out.String(), err
}

func TestRun_ShowIsDefault(t *testing.T) {
	cfg := site.Default()

	def, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	show, err := run(t, cfg, "show")
	if err != nil {
		t.Fatalf("Run(show) error = %v", err)
	}
	if def != show {
		t.Error("default command output differs from show")
	}

	back, err := config.Parse([]byte(show))
	if err != nil {
		t.Fatalf("Parse(show output) error = %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("show output does not parse back to the same config")
	}
}

func TestRun_ExportJSON(t *testing.T) {
	cfg := site.Default()

	out, err := run(t, cfg, "export", "-format", "json")
	if err != nil {
		t.Fatalf("Run(export) error = %v", err)
	}
	var back site.SiteConfig
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("exported JSON does not decode to the same config")
	}
}

func TestRun_ExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")

	out, err := run(t, site.Default(), "export", "-o", path)
	if err != nil {
		t.Fatalf("Run(export -o) error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Title != "Ben Lindsay" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Ben Lindsay")
	}
}

func TestRun_ExportUnknownFormat(t *testing.T) {
	out, err := run(t, site.Default(), "export", "-f", "toml")
	fe, ok := validate.AsFieldError(err)
	if !ok {
		t.Fatalf("Run(export -f toml) error = %v, want FieldError", err)
	}
	if fe.Field != "export/format" || fe.Kind != validate.InvalidField {
		t.Errorf("FieldError = %+v, want InvalidField on export/format", fe)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
}

func TestRun_ExportYmlAlias(t *testing.T) {
	yml, err := run(t, site.Default(), "export", "-format", "yml")
	if err != nil {
		t.Fatalf("Run(export -format yml) error = %v", err)
	}
	yaml, _ := run(t, site.Default(), "show")
	if yml != yaml {
		t.Error("yml export differs from yaml output")
	}
}

func TestRun_Validate(t *testing.T) {
	out, err := run(t, site.Default(), "validate")
	if err != nil {
		t.Fatalf("Run(validate) error = %v", err)
	}
	if !strings.Contains(out, "valid") {
		t.Errorf("output = %q", out)
	}

	broken := site.Default()
	broken.PostsPerPage = 0
	_, err = run(t, broken, "validate")
	if err == nil || !strings.Contains(err.Error(), "postsPerPage") {
		t.Errorf("Run(validate) error = %v, want postsPerPage failure", err)
	}
}

func TestRun_ValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("pathPrefix: about\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	_, err := run(t, site.Default(), "validate", "-f", path)
	if err == nil || !strings.Contains(err.Error(), "pathPrefix") {
		t.Errorf("Run(validate -f) error = %v, want pathPrefix failure", err)
	}
}

func TestRun_Contacts(t *testing.T) {
	out, err := run(t, site.Default(), "contacts")
	if err != nil {
		t.Fatalf("Run(contacts) error = %v", err)
	}
	want := "twitter\thttps://www.twitter.com/ben_j_lindsay\n" +
		"github\thttps://github.com/benlindsay\n" +
		"linkedin\thttps://linkedin.com/in/benjlindsay\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Menu(t *testing.T) {
	out, err := run(t, site.Default(), "menu")
	if err != nil {
		t.Fatalf("Run(menu) error = %v", err)
	}
	want := "Articles\thttps://benjlindsay.com/\n" +
		"About me\thttps://benjlindsay.com/pages/about\n" +
		"Contact me\thttps://benjlindsay.com/pages/contacts\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Fingerprint(t *testing.T) {
	out, err := run(t, site.Default(), "fingerprint")
	if err != nil {
		t.Fatalf("Run(fingerprint) error = %v", err)
	}
	want, _ := config.Fingerprint(site.Default())
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_HelpAndUnknown(t *testing.T) {
	out, err := run(t, site.Default(), "help")
	if err != nil || !strings.Contains(out, "Commands:") {
		t.Errorf("Run(help) = %q, %v", out, err)
	}
	if _, err := run(t, site.Default(), "export", "-h"); err != nil {
		t.Errorf("Run(export -h) error = %v, want nil", err)
	}
	if _, err := run(t, site.Default(), "deploy"); err == nil {
		t.Error("Run(deploy) expected error, got nil")
	}
}
