package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tmoida/lava-test-plans/internal/overlay"
)

// OverlayContext is the template-visible form of an overlay, annotated with
// the archive and compression formats derived from its URL.
type OverlayContext struct {
	URL         string
	Path        string
	Format      string
	Compression string
}

// Renderer renders test plan templates with a merged variable context.
// Overlays are exposed to templates under the "overlays" key.
type Renderer struct {
	Context  map[string]any
	Overlays overlay.List
	OutDir   string    // destination directory; empty means Out
	Out      io.Writer // stdout sink when OutDir is empty
}

// Render processes all template files concurrently and writes the results
// in input order. With an OutDir set, each template produces a file named
// after its base name with any ".tmpl" suffix stripped; otherwise rendered
// plans stream to Out.
func (r *Renderer) Render(ctx context.Context, templates []string) error {
	if len(templates) == 0 {
		return fmt.Errorf("no templates to render")
	}

	data := r.templateData()
	outputs := make([][]byte, len(templates))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range templates {
		i, path := i, path
		g.Go(func() error {
			out, err := renderOne(path, data)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range templates {
		if err := r.write(path, outputs[i]); err != nil {
			return err
		}
	}

	return nil
}

// templateData copies the context and annotates overlays. The renderer's
// own context map is never mutated.
func (r *Renderer) templateData() map[string]any {
	data := make(map[string]any, len(r.Context)+1)
	for k, v := range r.Context {
		data[k] = v
	}

	if len(r.Overlays) > 0 {
		annotated := make([]OverlayContext, 0, len(r.Overlays))
		for _, o := range r.Overlays {
			format, compression := overlay.Compression(o.URL)
			annotated = append(annotated, OverlayContext{
				URL:         o.URL,
				Path:        o.Path,
				Format:      format,
				Compression: compression,
			})
		}
		data["overlays"] = annotated
	}

	return data
}

func renderOne(path string, data map[string]any) ([]byte, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", path, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) write(tmplPath string, rendered []byte) error {
	if r.OutDir == "" {
		out := r.Out
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(rendered)
		return err
	}

	target := filepath.Join(r.OutDir, outputName(tmplPath))
	if err := os.WriteFile(target, rendered, 0o644); err != nil {
		return fmt.Errorf("writing rendered plan %s: %w", target, err)
	}

	log.Debug().Str("template", tmplPath).Str("output", target).Msg("rendered plan")

	return nil
}

// outputName strips the template suffix from a template's base name.
func outputName(tmplPath string) string {
	return strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
}
