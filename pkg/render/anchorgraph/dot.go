package anchorgraph

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/render"
)

// Options configures anchor graph generation.
type Options struct {
	// SkipGravity leaves out gravity edges, showing only constraint
	// anchors.
	SkipGravity bool
}

// ToDOT converts a result to Graphviz DOT. Every anchor becomes an edge
// from the anchored element to its target: edge anchors solid, circular
// anchors dashed, gravity offset parents dotted. Pivots are filled.
func ToDOT(res *document.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph anchors {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	pivots := make(map[string]bool, len(res.Pivots))
	for _, p := range res.Pivots {
		pivots[p] = true
	}
	for _, id := range nodeIDs(res, opts) {
		attrs := []string{fmt.Sprintf("label=%q", id)}
		if pivots[id] {
			attrs = append(attrs, "fillcolor=lightyellow", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, d := range res.Anchors {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", d.ID, d.Target, anchorAttrs(d))
	}
	if !opts.SkipGravity {
		for _, g := range res.Gravity {
			fmt.Fprintf(&buf, "  %q -> %q [style=dotted, color=gray40, label=%q];\n",
				g.ID, g.OffsetParent, g.Gravity.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeIDs(res *document.Result, opts Options) []string {
	ids := make(map[string]bool)
	for _, d := range res.Anchors {
		ids[d.ID] = true
		ids[d.Target] = true
	}
	if !opts.SkipGravity {
		for _, g := range res.Gravity {
			ids[g.ID] = true
			ids[g.OffsetParent] = true
		}
	}
	return slices.Sorted(maps.Keys(ids))
}

func anchorAttrs(d anchor.Directive) string {
	switch d.Kind {
	case anchor.KindCircular:
		return fmt.Sprintf("style=dashed, color=steelblue, label=%q", fmt.Sprintf("r=%g a=%g°", d.Radius, d.Angle))
	case anchor.KindOffset:
		return fmt.Sprintf("label=%q", fmt.Sprintf("%s%+g", d.Edge, d.Offset))
	default:
		return fmt.Sprintf("label=%q", d.Edge)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a
// zero-origin viewBox and pixel size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given
// scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
