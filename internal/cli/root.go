package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skamsie/Domain-Status-Checker/internal/domain"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/config"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/domainlist"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/httpcheck"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/logger"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/sink"
	"github.com/skamsie/Domain-Status-Checker/internal/infra/whoislookup"
	"github.com/skamsie/Domain-Status-Checker/internal/ports"
	"github.com/skamsie/Domain-Status-Checker/internal/usecase"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var (
		file      string
		display   []string
		registrar bool
		length    []int
		timeout   time.Duration
		outDir    string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "domainstatus",
		Short: "Check HTTP status, IP and registrar info for a list of domains",
		Long: `domainstatus verifies the status of domain names from a file or the
command line. For each domain it reports the HTTP status code and the
resolved IP, and optionally the registrar name and referral URL via WHOIS.

Accepted input forms: "https://www.example.com", "http://example.com",
"www.example.com", "example.com". Tokens with a path component, such as
"example.com/index.html", are reported as invalid.

File mode writes a sortable HTML table under the results directory;
display mode prints one line per domain to stdout.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(logger.Config{Debug: debug})

			// Bare arguments count as display-mode domains.
			display = append(display, args...)

			if (file == "") == (len(display) == 0) {
				return errors.New("exactly one of --file or --display is required")
			}

			cfg, cfgErr := config.Load(".")
			if cfgErr != nil && !domain.IsKind(cfgErr, domain.KindNotFound) {
				return cfgErr
			}
			if cmd.Flags().Changed("timeout") {
				cfg.HTTP.Timeout = timeout
			}
			if cmd.Flags().Changed("out") {
				cfg.Paths.ResultsDir = outDir
			}

			rng := domain.FullRange()
			if len(length) > 0 {
				if len(length) != 2 {
					return errors.New("--length expects exactly two integers: start,end")
				}
				rng = domain.InputRange{Start: length[0], End: length[1]}
				if err := rng.Validate(); err != nil {
					return err
				}
			}

			resolver := httpcheck.New(
				httpcheck.WithClient(httpcheck.NewClient(clientConfig(cfg))),
				httpcheck.WithUserAgent(cfg.HTTP.UserAgent),
			)

			// WHOIS is a capability: switched off in config, the -r flag is
			// silently ignored rather than failing the run.
			var lookup ports.RegistrarLookup
			if cfg.Whois.Enabled {
				lookup = whoislookup.New(whoislookup.WithTimeout(cfg.Whois.Timeout))
			}

			if len(display) > 0 {
				source := domainlist.NewLiteralSource(display)
				uc := usecase.NewCheckDomains(resolver, lookup, sink.NewConsole())
				_, err := uc.Execute(cmd.Context(), source, registrar)
				return err
			}

			source := domainlist.NewFileSource(file, rng)
			htmlSink := sink.NewHTML(cfg.Paths.ResultsDir, sink.WithProgress(cmd.OutOrStdout()))
			uc := usecase.NewCheckDomains(resolver, lookup, htmlSink)
			if _, err := uc.Execute(cmd.Context(), source, registrar); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", htmlSink.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one domain per line; results go to an HTML table")
	cmd.Flags().StringSliceVarP(&display, "display", "d", nil, "domains given directly; results are printed to stdout")
	cmd.Flags().BoolVarP(&registrar, "registrar", "r", false, "also look up registrar name and referral URL over WHOIS")
	cmd.Flags().IntSliceVarP(&length, "length", "l", nil, "start and end line of the file to process, e.g. --length 2,10")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "HTTP probe timeout")
	cmd.Flags().StringVar(&outDir, "out", "generated_results", "directory for generated HTML results")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	return cmd
}

func clientConfig(cfg domain.Config) httpcheck.ClientConfig {
	cc := httpcheck.DefaultClientConfig()
	cc.Timeout = cfg.HTTP.Timeout
	return cc
}
