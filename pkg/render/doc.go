// Package render provides output rendering for resolution results.
//
// # Overview
//
// The directive result itself is consumed by the template renderer as
// JSON. This package adds human-facing views of the same data:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Anchor graphs (in [anchorgraph] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := anchorgraph.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [anchorgraph]: github.com/anpham6/squared-sub012/pkg/render/anchorgraph
package render
