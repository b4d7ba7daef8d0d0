package favicon

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
	"github.com/ironsheep/favicon-tools-mcp/internal/fit"
	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// Report lists the files a create call touched, by base name.
type Report struct {
	Written []string `json:"written"`
	Skipped []string `json:"skipped"`
}

func (r *Report) merge(o Report) {
	r.Written = append(r.Written, o.Written...)
	r.Skipped = append(r.Skipped, o.Skipped...)
}

func (r *Report) record(name string, written bool) {
	if written {
		r.Written = append(r.Written, name)
	} else {
		r.Skipped = append(r.Skipped, name)
	}
}

// CreateBasic generates the browser favicons.
func (g *Generator) CreateBasic() (Report, error) {
	return g.createSizes(devices.Basic)
}

// CreateApple generates the Apple touch icons.
func (g *Generator) CreateApple() (Report, error) {
	return g.createSizes(devices.Apple)
}

// CreateAndroid generates the Android Chrome icons and updates manifest.json.
func (g *Generator) CreateAndroid() (Report, error) {
	report, err := g.createSizes(devices.Android)
	if err != nil {
		return report, err
	}

	written, err := g.writeManifest()
	if err != nil {
		return report, err
	}
	report.record(ManifestFile, written)
	return report, nil
}

// CreateMicrosoft generates the Windows tiles and browserconfig.xml.
func (g *Generator) CreateMicrosoft() (Report, error) {
	report, err := g.createSizes(devices.Microsoft)
	if err != nil {
		return report, err
	}

	written, err := g.writeBrowserConfig()
	if err != nil {
		return report, err
	}
	report.record(BrowserConfigFile, written)
	return report, nil
}

// Create generates one family.
func (g *Generator) Create(f devices.Family) (Report, error) {
	switch f {
	case devices.Basic:
		return g.CreateBasic()
	case devices.Apple:
		return g.CreateApple()
	case devices.Android:
		return g.CreateAndroid()
	case devices.Microsoft:
		return g.CreateMicrosoft()
	}
	return Report{}, fmt.Errorf("unknown device family %q", f)
}

// CreateAll generates every family in order, stopping at the first error.
func (g *Generator) CreateAll() (Report, error) {
	var report Report
	for _, f := range devices.Families {
		r, err := g.Create(f)
		report.merge(r)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (g *Generator) createSizes(f devices.Family) (Report, error) {
	var report Report
	level := g.settings.Compression.PNGLevel()

	for _, spec := range devices.Sizes(f) {
		name := spec.FileName()
		path := filepath.Join(g.dir, name)

		if !g.stale && fileExists(path) {
			report.record(name, false)
			continue
		}

		img, err := g.render(spec)
		if err != nil {
			return report, fmt.Errorf("failed to render %s: %w", name, err)
		}
		if err := writePNG(path, img, level); err != nil {
			return report, err
		}

		log.Debug().Str("file", name).Str("family", string(f)).Msg("icon written")
		report.record(name, true)
	}
	return report, nil
}

// render runs the fit pipeline for one size, then applies device styling and
// padding. The source is re-read on every call.
func (g *Generator) render(spec devices.SizeSpec) (image.Image, error) {
	src, err := imaging.Open(g.OriginalPath())
	if err != nil {
		return nil, err
	}

	strategy, err := crop.New(g.settings.CropMethod, g.cropOpts...)
	if err != nil {
		return nil, err
	}

	out, res, err := fit.New(strategy).Fit(src, spec.RenderWidth, spec.RenderHeight)
	if err != nil {
		return nil, err
	}
	log.Trace().
		Str("size", spec.Size()).
		Float64("scale", res.Scale).
		Int("offset_x", res.Offset.X).
		Int("offset_y", res.Offset.Y).
		Msg("fitted")

	if key, ok := spec.StyleKey(); ok {
		if out, err = applyStyle(out, g.settings.Style(key)); err != nil {
			return nil, err
		}
	}

	if pad := spec.PadX(); pad > 0 {
		out = imaging.PadHorizontal(out, pad)
	}
	return out, nil
}

// applyStyle puts img on the style background. Margin is ignored without a
// background.
func applyStyle(img *image.NRGBA, style config.DeviceStyle) (*image.NRGBA, error) {
	if style.Background == "" {
		return img, nil
	}
	bg, err := imaging.ParseHexColor(style.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}
	return imaging.ApplyBackground(img, bg, style.Margin)
}
