package favicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
)

// ManifestFile is the Android web app manifest.
const ManifestFile = "manifest.json"

// Manifest is the subset of the web app manifest this package manages.
type Manifest struct {
	Name        string         `json:"name,omitempty"`
	StartURL    string         `json:"start_url,omitempty"`
	Display     string         `json:"display,omitempty"`
	Orientation string         `json:"orientation,omitempty"`
	Icons       []ManifestIcon `json:"icons"`
}

// ManifestIcon is one entry of Manifest.Icons.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Density string `json:"density,omitempty"`
}

func readManifest(path string) (Manifest, bool, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, false, nil
	}
	if err != nil {
		return m, false, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, false, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, true, nil
}

// buildManifest applies the Android metadata and icon list to prev.
// The icon list is replaced, not appended.
func (g *Generator) buildManifest(prev Manifest) Manifest {
	m := prev
	meta := g.settings.Android

	if meta.Name != "" {
		m.Name = meta.Name
	}
	if meta.URL != "" {
		m.StartURL = meta.URL
	}
	if meta.Orientation != "" {
		m.Display = "standalone"
		m.Orientation = string(meta.Orientation)
	}

	m.Icons = nil
	for _, spec := range devices.Sizes(devices.Android) {
		m.Icons = append(m.Icons, ManifestIcon{
			Src:     g.url(spec.FileName()),
			Sizes:   spec.Size(),
			Type:    "image/png",
			Density: spec.Density,
		})
	}
	return m
}

// writeManifest writes manifest.json when it is missing or its content
// changed, and reports whether it wrote.
func (g *Generator) writeManifest() (bool, error) {
	path := filepath.Join(g.dir, ManifestFile)

	prev, exists, err := readManifest(path)
	if err != nil {
		return false, err
	}

	next := g.buildManifest(prev)
	if exists && reflect.DeepEqual(prev, next) {
		return false, nil
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := writeFileAtomic(path, append(data, '\n')); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Generator) url(name string) string {
	return g.urlPrefix + "/" + name
}
