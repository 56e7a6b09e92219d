package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gompdf/resumepdf/internal/resume"
	"github.com/gompdf/resumepdf/pkg/api"
)

// renderOpts holds the flags of the render command. Empty values keep the
// configuration file setting.
type renderOpts struct {
	layout   string   // layout key, e.g. "modern-3"
	output   string   // output path, defaults to the input name with .pdf
	pageSize string   // a4, a5, letter or legal
	styles   []string // extra CSS or TOML style sheets
	strict   bool     // fail on unusable resources

	strictSet bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <resume.yaml|resume.json>",
		Short: "Render a résumé to PDF",
		Long: `Render a résumé to PDF.

The layout comes from --layout, else RESUMEPDF_LAYOUT, else the
configuration file. Relative image paths in the résumé are resolved against the
résumé's directory.`,
		Example: `  resumepdf render resume.yaml --layout modern-3 --out cv.pdf
  resumepdf render resume.json -c resumepdf.toml -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.strictSet = cmd.Flags().Changed("strict")
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "layout key, e.g. classical-1 (see 'resumepdf layouts')")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output PDF path")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "", "page size: a4, a5, letter or legal")
	cmd.Flags().StringSliceVar(&opts.styles, "style", nil, "CSS or TOML style sheet (repeatable)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the profile image or an icon cannot be used")

	return cmd
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := *configFromContext(ctx)

	if opts.layout != "" {
		cfg.Layout = opts.layout
	}
	if opts.pageSize != "" {
		cfg.PageSize = opts.pageSize
	}
	if opts.strictSet {
		cfg.StrictResources = opts.strict
	}
	cfg.StyleSheets = append(append([]string(nil), cfg.StyleSheets...), opts.styles...)

	key, err := cfg.Key()
	if err != nil {
		return err
	}
	options, err := cfg.Options(key, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	api.WithBaseDir(filepath.Dir(input))(&options)

	prog := newProgress(logger)
	r, err := resume.LoadFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded resume", "path", input, "experiences", len(r.Experiences), "educations", len(r.Educations))

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}
	res, err := api.NewWithOptions(options).GenerateFile(*r, key, out)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s with %s, %d page(s)", out, res.Layout, res.Pages))
	return nil
}
