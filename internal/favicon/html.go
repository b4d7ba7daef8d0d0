package favicon

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
)

// ReadHTML returns the tags for the assets under root without locking or
// creating anything. The stored settings supply the tile colour.
func ReadHTML(root string, opts Options) (string, error) {
	dir := filepath.Join(root, AssetDir)
	settings, err := config.Store{Dir: dir}.Load()
	if err != nil {
		return "", err
	}

	g := &Generator{
		root:      root,
		dir:       dir,
		urlPrefix: urlPrefix(opts.URLPrefix),
		settings:  settings,
	}
	return g.HTML()
}

// HTML returns the link and meta tags for every asset present in the asset
// directory, one per line. It returns ErrNoAssets when there is nothing to
// link.
func (g *Generator) HTML() (string, error) {
	var b strings.Builder

	for _, spec := range devices.Sizes(devices.Basic) {
		if g.has(spec.FileName()) {
			fmt.Fprintf(&b, "<link rel=\"icon\" type=\"image/png\" href=%s sizes=%s>\n", attr(g.url(spec.FileName())), attr(spec.Size()))
		}
	}

	for _, spec := range devices.Sizes(devices.Apple) {
		if g.has(spec.FileName()) {
			fmt.Fprintf(&b, "<link rel=\"apple-touch-icon\" sizes=%s href=%s>\n", attr(spec.Size()), attr(g.url(spec.FileName())))
		}
	}

	if name := "android-chrome-192x192.png"; g.has(name) {
		fmt.Fprintf(&b, "<link rel=\"icon\" type=\"image/png\" href=%s sizes=\"192x192\">\n", attr(g.url(name)))
	}
	if g.has(ManifestFile) {
		fmt.Fprintf(&b, "<link rel=\"manifest\" href=%s>\n", attr(g.url(ManifestFile)))
	}

	if name := "mstile-144x144.png"; g.has(name) {
		fmt.Fprintf(&b, "<meta name=\"msapplication-TileImage\" content=%s>\n", attr(g.url(name)))
	}
	if g.has(BrowserConfigFile) {
		fmt.Fprintf(&b, "<meta name=\"msapplication-config\" content=%s>\n", attr(g.url(BrowserConfigFile)))
	}
	if color := g.tileColor(); color != "" {
		fmt.Fprintf(&b, "<meta name=\"msapplication-TileColor\" content=%s>\n", attr(color))
		fmt.Fprintf(&b, "<meta name=\"theme-color\" content=%s>\n", attr(color))
	}

	if b.Len() == 0 {
		return "", ErrNoAssets
	}
	return b.String(), nil
}

func (g *Generator) has(name string) bool {
	return fileExists(filepath.Join(g.dir, name))
}

// attr quotes v as an HTML attribute value.
func attr(v string) string {
	return `"` + html.EscapeString(v) + `"`
}
