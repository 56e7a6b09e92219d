package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gompdf/resumepdf/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version shown by --version, usually from ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// buildVersion falls back to the module build info when no version was set.
func buildVersion() (v, c, d string) {
	v, c, d = version, commit, date
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if v == "" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if c == "" {
				c = s.Value
			}
		case "vcs.time":
			if d == "" {
				d = s.Value
			}
		}
	}
	return v, c, d
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	v, c, d := buildVersion()
	root := &cobra.Command{
		Use:          "resumepdf",
		Short:        "resumepdf renders résumés as paginated PDFs",
		Long:         `resumepdf turns a YAML or JSON résumé into a styled PDF using one of 24 layouts in four families: classical, modern, simple and creative.`,
		Version:      v,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("resumepdf %s\ncommit: %s\nbuilt: %s\n", v, c, d))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newLayoutsCmd())
	return root
}
