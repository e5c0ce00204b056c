package preview

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/shapealign/pkg/cache"
	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/observability"
	"github.com/matzehuels/shapealign/pkg/render"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// RenderSVG renders a DOT graph from [ToDOT] to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return buf.Bytes(), nil
}

// Renderer draws previews. When Cache is set, SVGs are looked up by a hash
// of their DOT source before Graphviz runs, and stored for TTL afterwards.
type Renderer struct {
	Cache cache.Cache
	TTL   time.Duration
}

// Render draws s without a cache.
func Render(ctx context.Context, s *slide.Slide, c layout.Canvas, format string, opts Options) ([]byte, error) {
	return (&Renderer{}).Render(ctx, s, c, format, opts)
}

// Render draws s in the given format (see [render.ValidFormats]). PNG output
// is rendered at 2x.
func (r *Renderer) Render(ctx context.Context, s *slide.Slide, c layout.Canvas, format string, opts Options) ([]byte, error) {
	if err := render.ValidateFormat(format); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Preview()
	hooks.OnRenderStart(ctx, format, len(s.Shapes))
	start := time.Now()

	out, err := r.renderFormat(ctx, ToDOT(s, c, opts), format)
	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("preview %s: %w", format, err)
	}
	return out, nil
}

func (r *Renderer) renderFormat(ctx context.Context, dot, format string) ([]byte, error) {
	if format == render.FormatDOT {
		return []byte(dot), nil
	}
	svg, err := r.svg(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, 2.0)
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	default:
		return svg, nil
	}
}

// svg renders dot, going through the cache when there is one. Cache errors
// fall back to rendering; a failed store is dropped.
func (r *Renderer) svg(ctx context.Context, dot string) ([]byte, error) {
	if r.Cache == nil {
		return RenderSVG(ctx, dot)
	}

	key := cache.RenderKey(render.FormatSVG, dot)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	_ = r.Cache.Set(ctx, key, svg, r.TTL)
	return svg, nil
}
