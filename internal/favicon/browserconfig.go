package favicon

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
)

// BrowserConfigFile is the Windows tile configuration.
const BrowserConfigFile = "browserconfig.xml"

type browserConfig struct {
	XMLName       xml.Name      `xml:"browserconfig"`
	MSApplication msApplication `xml:"msapplication"`
}

type msApplication struct {
	Tile tile `xml:"tile"`
}

type tile struct {
	Square70  logo   `xml:"square70x70logo"`
	Square150 logo   `xml:"square150x150logo"`
	Square310 logo   `xml:"square310x310logo"`
	Wide310   logo   `xml:"wide310x150logo"`
	TileColor string `xml:"TileColor,omitempty"`
}

type logo struct {
	Src string `xml:"src,attr"`
}

// tileColor returns "#rrggbb" for the Microsoft background, or "".
func (g *Generator) tileColor() string {
	bg := g.settings.Style(config.DeviceMicrosoft).Background
	if bg == "" {
		return ""
	}
	return "#" + strings.TrimPrefix(bg, "#")
}

func (g *Generator) browserConfig() ([]byte, error) {
	cfg := browserConfig{
		MSApplication: msApplication{Tile: tile{
			Square70:  logo{Src: g.url("mstile-70x70.png")},
			Square150: logo{Src: g.url("mstile-150x150.png")},
			Square310: logo{Src: g.url("mstile-310x310.png")},
			Wide310:   logo{Src: g.url("mstile-310x150.png")},
			TileColor: g.tileColor(),
		}},
	}

	data, err := xml.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode browserconfig: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// writeBrowserConfig writes browserconfig.xml when missing or when the run
// is stale, and reports whether it wrote.
func (g *Generator) writeBrowserConfig() (bool, error) {
	path := filepath.Join(g.dir, BrowserConfigFile)
	if !g.stale && fileExists(path) {
		return false, nil
	}

	data, err := g.browserConfig()
	if err != nil {
		return false, err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return false, err
	}
	return true, nil
}
