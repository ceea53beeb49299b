package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/render/anchorgraph"
)

// Graph output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
)

// validFormats is the set of supported graph output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true, formatPDF: true}

// graphCommand creates the graph command for drawing a result's anchors.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		skipGravity bool
		scale       float64
	)

	cmd := &cobra.Command{
		Use:   "graph [result.json]",
		Short: "Draw the anchor graph of a resolved result",
		Long: `Draw the anchor graph of a resolved result.

The graph command takes a result file (produced by 'resolve') and draws
every anchor as an edge from the anchored element to its target. Edge and
offset anchors are solid, circular anchors dashed, and gravity offset
parents dotted. Pivots are highlighted.

DOT and SVG output use the embedded Graphviz; PNG and PDF need rsvg-convert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			opts := anchorgraph.Options{SkipGravity: skipGravity}
			return c.runGraph(cmd.Context(), args[0], formats, output, opts, scale)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&skipGravity, "skip-gravity", false, "leave out gravity edges")
	cmd.Flags().Float64Var(&scale, "scale", 2, "PNG scale factor")

	return cmd
}

// runGraph loads the result and writes one file per format.
func (c *CLI) runGraph(ctx context.Context, input string, formats []string, output string, opts anchorgraph.Options, scale float64) error {
	res, err := document.ReadResultFile(input)
	if err != nil {
		return fmt.Errorf("load result %s: %w", input, err)
	}
	dot := anchorgraph.ToDOT(res, opts)
	logger := loggerFromContext(ctx)
	logger.Debug("built anchor graph", "anchors", len(res.Anchors), "gravity", len(res.Gravity))

	spinner := newSpinnerWithContext(ctx, "Rendering anchor graph...")
	spinner.Start()

	base := basePath(output, input)
	var written []string
	for _, format := range formats {
		spinner.SetMessage(fmt.Sprintf("Rendering %s...", format))
		data, err := renderGraph(ctx, dot, format, scale)
		if err != nil {
			spinner.StopWithError("Graph failed")
			return fmt.Errorf("%s: %w", format, err)
		}
		path := output
		if path == "" || len(formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			spinner.StopWithError("Graph failed")
			return fmt.Errorf("write output %s: %w", path, err)
		}
		logger.Debugf("Generated %s: %d bytes", path, len(data))
		written = append(written, path)
	}
	spinner.Stop()

	printSuccess("Graph complete")
	for _, p := range written {
		printFile(p)
	}
	return nil
}

// renderGraph converts DOT source to the requested format.
func renderGraph(ctx context.Context, dot, format string, scale float64) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return anchorgraph.RenderSVG(ctx, dot)
	case formatPNG:
		return anchorgraph.RenderPNG(ctx, dot, scale)
	case formatPDF:
		return anchorgraph.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
