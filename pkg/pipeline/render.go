package pipeline

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/render/nodelink"
	"github.com/matzehuels/algoviz/pkg/tree"
)

// pngScale is the resolution multiplier for PNG export.
const pngScale = 2.0

// FrameDocument is the JSON render output.
type FrameDocument struct {
	Tree  graph.Graph  `json:"tree"`
	Frame render.Frame `json:"frame"`
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, t *tree.Tree, f render.Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var svg []byte

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.SVG(t, f, render.Options{Width: opts.Width})
		case FormatDOT:
			data = []byte(nodelink.ToDOT(t, f, nodelink.Options{Detailed: opts.Detailed}))
		case FormatGraphviz:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(t, f, nodelink.Options{Detailed: opts.Detailed}))
		case FormatJSON:
			data, err = json.MarshalIndent(FrameDocument{Tree: graph.FromTree(t), Frame: f}, "", "  ")
		case FormatPNG, FormatPDF:
			if svg == nil {
				svg = render.SVG(t, f, render.Options{Width: opts.Width})
			}
			if format == FormatPNG {
				data, err = render.ToPNG(ctx, svg, pngScale)
			} else {
				data, err = render.ToPDF(ctx, svg)
			}
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
