package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/benlindsay/gatsby-site/config"
	"github.com/benlindsay/gatsby-site/config/site"
	"github.com/benlindsay/gatsby-site/config/validate"
	"github.com/rs/zerolog/log"
)

const progName = "gatsby-site"

var exportFormats = []string{"yaml", "yml", "json"}

// Run executes the command in args (without the program name) against cfg,
// writing results to out.
func Run(cfg site.SiteConfig, args []string, out io.Writer) error {
	if len(args) == 0 {
		return runShow(cfg, out)
	}

	cmd := args[0]

	switch cmd {
	case "show":
		return runShow(cfg, out)

	case "export":
		return runExport(cfg, args[1:], out)

	case "validate":
		return runValidate(cfg, args[1:], out)

	case "contacts":
		return runContacts(cfg, out)

	case "menu":
		return runMenu(cfg, out)

	case "fingerprint":
		return runFingerprint(cfg, out)

	case "-h", "--help", "help":
		printGlobalHelp(out)
		return nil

	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printGlobalHelp(out io.Writer) {
	fmt.Fprintf(out, `Usage: %s <command> [options]

Commands:
  show         Print the site configuration as YAML (default)
  export       Write the configuration as yaml or json
  validate     Validate the configuration or a YAML file
  contacts     List visible author contacts
  menu         List menu entries in display order
  fingerprint  Print the configuration hash

Use "%s <command> --help" for command-specific options.
`, progName, progName)
}

func runShow(cfg site.SiteConfig, out io.Writer) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func runExport(cfg site.SiteConfig, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s export [options]\n\n", progName)
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	format := fs.String("format", "yaml", "output format: yaml or json")
	fs.StringVar(format, "f", "yaml", "shorthand for -format")
	output := fs.String("o", "", "write to file instead of stdout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var verr validate.ValidationErrors
	if !validate.RequireOneOf(&verr, "export/format", *format, exportFormats) {
		return verr.Err()
	}

	var (
		data []byte
		err  error
	)
	switch *format {
	case "yaml", "yml":
		data, err = config.Marshal(cfg)
	case "json":
		data, err = config.MarshalJSON(cfg)
	}
	if err != nil {
		return err
	}

	if *output == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	log.Logger.Info().Str("path", *output).Str("format", *format).Msg("configuration exported")
	return nil
}

func runValidate(cfg site.SiteConfig, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s validate [options]\n\n", progName)
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	file := fs.String("file", "", "YAML file to validate instead of the loaded configuration")
	fs.StringVar(file, "f", "", "shorthand for -file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var err error
	if *file != "" {
		_, err = config.LoadFile(*file)
	} else {
		_, err = config.Validate(cfg)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "configuration is valid")
	return nil
}

func runContacts(cfg site.SiteConfig, out io.Writer) error {
	for platform := range cfg.VisibleContacts() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", platform, cfg.ContactURL(platform)); err != nil {
			return err
		}
	}
	return nil
}

func runMenu(cfg site.SiteConfig, out io.Writer) error {
	for _, item := range cfg.Menu {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", item.Label, cfg.PageURL(item.Path)); err != nil {
			return err
		}
	}
	return nil
}

func runFingerprint(cfg site.SiteConfig, out io.Writer) error {
	sum, err := config.Fingerprint(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, sum)
	return err
}
