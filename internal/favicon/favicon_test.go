package favicon

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// writeIcon writes an opaque w x h gradient PNG and returns its path.
func writeIcon(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}

	path := filepath.Join(dir, "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func newGenerator(t *testing.T, root, icon string, opts Options) *Generator {
	t.Helper()
	g, err := New(root, icon, opts)
	require.NoError(t, err)
	return g
}

func run(t *testing.T, root, icon string, o config.Overrides) Report {
	t.Helper()
	g := newGenerator(t, root, icon, Options{CropOptions: []crop.Option{crop.WithSeed(1)}})
	require.NoError(t, g.Apply(o))
	report, err := g.CreateAll()
	require.NoError(t, err)
	require.NoError(t, g.Close())
	return report
}

func dims(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func expectedFiles() []string {
	var names []string
	for _, f := range devices.Families {
		for _, s := range devices.Sizes(f) {
			names = append(names, s.FileName())
		}
		switch f {
		case devices.Android:
			names = append(names, ManifestFile)
		case devices.Microsoft:
			names = append(names, BrowserConfigFile)
		}
	}
	return names
}

func TestCreateAll_WritesEverySize(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 300, 200)

	report := run(t, root, icon, config.Overrides{})
	assert.ElementsMatch(t, expectedFiles(), report.Written)
	assert.Empty(t, report.Skipped)

	dir := filepath.Join(root, AssetDir)
	for _, f := range devices.Families {
		for _, s := range devices.Sizes(f) {
			w, h := dims(t, filepath.Join(dir, s.FileName()))
			assert.Equal(t, s.Width, w, s.FileName())
			assert.Equal(t, s.Height, h, s.FileName())
		}
	}

	assert.FileExists(t, filepath.Join(dir, OriginalFile))
	assert.FileExists(t, filepath.Join(dir, config.SettingsFile))
}

func TestCreateAll_SecondRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 120, 120)

	run(t, root, icon, config.Overrides{})
	report := run(t, root, icon, config.Overrides{})

	assert.Empty(t, report.Written)
	assert.ElementsMatch(t, expectedFiles(), report.Skipped)
}

func TestCreateAll_ConfigChangeForcesRebuild(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 120, 120)
	run(t, root, icon, config.Overrides{})

	low := config.CompressionLow
	report := run(t, root, icon, config.Overrides{Compression: &low})

	// every image and browserconfig.xml is rewritten; the manifest content
	// does not depend on compression
	var want []string
	for _, name := range expectedFiles() {
		if name != ManifestFile {
			want = append(want, name)
		}
	}
	assert.ElementsMatch(t, want, report.Written)
	assert.Equal(t, []string{ManifestFile}, report.Skipped)

	// the change is persisted, so repeating it is a no-op
	report = run(t, root, icon, config.Overrides{Compression: &low})
	assert.Empty(t, report.Written)
}

func TestCreateAll_NewStyleKeyForcesRebuild(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 120, 120)
	run(t, root, icon, config.Overrides{})

	report := run(t, root, icon, config.Overrides{
		Styles: map[config.DeviceKey]config.DeviceStyle{config.DeviceApple: {Background: config.ColorBlue}},
	})
	assert.Contains(t, report.Written, "favicon-16x16.png")
	assert.Contains(t, report.Written, "apple-touch-icon-57x57.png")
}

func TestCreateAll_AndroidMetaOnlyRewritesManifest(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 120, 120)
	run(t, root, icon, config.Overrides{})

	report := run(t, root, icon, config.Overrides{Android: &config.AndroidMeta{Name: "Site", Orientation: config.Landscape}})
	assert.Equal(t, []string{ManifestFile}, report.Written)
}

func TestNew_ReplacedSourceForcesRebuild(t *testing.T) {
	root := t.TempDir()
	run(t, root, writeIcon(t, t.TempDir(), 120, 120), config.Overrides{})

	report := run(t, root, writeIcon(t, t.TempDir(), 240, 90), config.Overrides{})
	assert.Contains(t, report.Written, "favicon-96x96.png")
}

func TestNew_EmptyIconUsesStoredOriginal(t *testing.T) {
	root := t.TempDir()
	run(t, root, writeIcon(t, t.TempDir(), 120, 120), config.Overrides{})

	report := run(t, root, "", config.Overrides{})
	assert.Empty(t, report.Written)
}

func TestNew_Force(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 120, 120)
	run(t, root, icon, config.Overrides{})

	g := newGenerator(t, root, icon, Options{Force: true})
	defer g.Close()
	report, err := g.CreateBasic()
	require.NoError(t, err)
	assert.Len(t, report.Written, 3)
}

func TestNew_MissingSource(t *testing.T) {
	_, err := New(t.TempDir(), filepath.Join(t.TempDir(), "nope.png"), Options{})
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, err = New(t.TempDir(), "", Options{})
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestNew_Locked(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 64, 64)

	g := newGenerator(t, root, icon, Options{})
	_, err := New(root, icon, Options{})
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, g.Close())
	g = newGenerator(t, root, icon, Options{})
	require.NoError(t, g.Close())
}

func TestCreate_UnreadableSource(t *testing.T) {
	icon := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(icon, []byte("definitely not a png"), 0o644))

	g := newGenerator(t, t.TempDir(), icon, Options{})
	defer g.Close()

	report, err := g.CreateBasic()
	assert.ErrorIs(t, err, imaging.ErrSourceUnreadable)
	assert.Empty(t, report.Written)
}

func TestApply_Invalid(t *testing.T) {
	g := newGenerator(t, t.TempDir(), writeIcon(t, t.TempDir(), 64, 64), Options{})
	defer g.Close()

	bad := config.Compression(42)
	err := g.Apply(config.Overrides{Compression: &bad})
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
	assert.Equal(t, config.CompressionOriginal, g.Settings().Compression)
}

func TestApply_StaleIsSticky(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 64, 64)
	run(t, root, icon, config.Overrides{})

	g := newGenerator(t, root, icon, Options{})
	defer g.Close()
	assert.False(t, g.Stale())

	m := crop.Entropy
	require.NoError(t, g.Apply(config.Overrides{CropMethod: &m}))
	assert.True(t, g.Stale())

	require.NoError(t, g.Apply(config.Overrides{}))
	assert.True(t, g.Stale())
}

func TestCreateApple_BackgroundAndMargin(t *testing.T) {
	root := t.TempDir()
	run(t, root, writeIcon(t, t.TempDir(), 100, 100), config.Overrides{
		Styles: map[config.DeviceKey]config.DeviceStyle{config.DeviceApple: {Background: "ff0000", Margin: 10}},
	})

	img, err := imaging.Open(filepath.Join(root, AssetDir, "apple-touch-icon-180x180.png"))
	require.NoError(t, err)

	r, g, b, a := img.At(2, 2).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})

	// the icon itself sits inside the margin
	_, _, b, _ = img.At(90, 90).RGBA()
	assert.InDelta(t, 128, b>>8, 2)
}

func TestCreateMicrosoft_WideTileIsPadded(t *testing.T) {
	root := t.TempDir()
	g := newGenerator(t, root, writeIcon(t, t.TempDir(), 64, 64), Options{})
	_, err := g.CreateMicrosoft()
	require.NoError(t, err)
	require.NoError(t, g.Close())

	img, err := imaging.Open(filepath.Join(root, AssetDir, "mstile-310x150.png"))
	require.NoError(t, err)

	_, _, _, a := img.At(10, 75).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(300, 75).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(155, 75).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestManifest(t *testing.T) {
	root := t.TempDir()
	run(t, root, writeIcon(t, t.TempDir(), 64, 64), config.Overrides{
		Android: &config.AndroidMeta{Name: "Example", URL: "https://example.com/", Orientation: config.Portrait},
	})

	data, err := os.ReadFile(filepath.Join(root, AssetDir, ManifestFile))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Example", m.Name)
	assert.Equal(t, "https://example.com/", m.StartURL)
	assert.Equal(t, "standalone", m.Display)
	assert.Equal(t, "portrait", m.Orientation)
	require.Len(t, m.Icons, 6)
	assert.Equal(t, ManifestIcon{Src: "/favicon/android-chrome-36x36.png", Sizes: "36x36", Type: "image/png", Density: "0.75"}, m.Icons[0])
}

func TestManifest_KeepsExistingFieldsAndDoesNotDuplicateIcons(t *testing.T) {
	root := t.TempDir()
	icon := writeIcon(t, t.TempDir(), 64, 64)
	run(t, root, icon, config.Overrides{Android: &config.AndroidMeta{Name: "First"}})
	run(t, root, icon, config.Overrides{Android: &config.AndroidMeta{URL: "/start"}})

	data, err := os.ReadFile(filepath.Join(root, AssetDir, ManifestFile))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "First", m.Name)
	assert.Equal(t, "/start", m.StartURL)
	assert.Len(t, m.Icons, 6)
}

func TestBrowserConfig(t *testing.T) {
	root := t.TempDir()
	run(t, root, writeIcon(t, t.TempDir(), 64, 64), config.Overrides{
		Styles: map[config.DeviceKey]config.DeviceStyle{config.DeviceMicrosoft: {Background: config.ColorTeal}},
	})

	data, err := os.ReadFile(filepath.Join(root, AssetDir, BrowserConfigFile))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, `<square70x70logo src="/favicon/mstile-70x70.png"></square70x70logo>`)
	assert.Contains(t, s, `<wide310x150logo src="/favicon/mstile-310x150.png"></wide310x150logo>`)
	assert.Contains(t, s, "<TileColor>#00aba9</TileColor>")
}

func TestHTML_NoAssets(t *testing.T) {
	g := newGenerator(t, t.TempDir(), writeIcon(t, t.TempDir(), 64, 64), Options{})
	defer g.Close()

	_, err := g.HTML()
	assert.ErrorIs(t, err, ErrNoAssets)
}

func TestHTML(t *testing.T) {
	root := t.TempDir()
	g := newGenerator(t, root, writeIcon(t, t.TempDir(), 64, 64), Options{URLPrefix: "/static/icons/"})
	defer g.Close()

	require.NoError(t, g.Apply(config.Overrides{
		Styles: map[config.DeviceKey]config.DeviceStyle{config.DeviceMicrosoft: {Background: "#2d89ef"}},
	}))
	_, err := g.CreateAll()
	require.NoError(t, err)

	html, err := g.HTML()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(html), "\n")
	assert.Equal(t, `<link rel="icon" type="image/png" href="/static/icons/favicon-16x16.png" sizes="16x16">`, lines[0])
	assert.Contains(t, html, `<link rel="apple-touch-icon" sizes="180x180" href="/static/icons/apple-touch-icon-180x180.png">`)
	assert.Contains(t, html, `<link rel="manifest" href="/static/icons/manifest.json">`)
	assert.Contains(t, html, `<meta name="msapplication-TileImage" content="/static/icons/mstile-144x144.png">`)
	assert.Contains(t, html, `<meta name="theme-color" content="#2d89ef">`)
	assert.Len(t, lines, 3+9+1+1+1+1+2)
}

func TestHTML_OnlyPresentAssets(t *testing.T) {
	g := newGenerator(t, t.TempDir(), writeIcon(t, t.TempDir(), 64, 64), Options{})
	defer g.Close()

	_, err := g.CreateBasic()
	require.NoError(t, err)

	html, err := g.HTML()
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(html, "\n"))
	assert.NotContains(t, html, "apple-touch-icon")
}

func TestHTML_EscapesAttributes(t *testing.T) {
	g := newGenerator(t, t.TempDir(), writeIcon(t, t.TempDir(), 64, 64), Options{URLPrefix: `/a"b&c/é`})
	defer g.Close()

	_, err := g.CreateBasic()
	require.NoError(t, err)

	html, err := g.HTML()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(html), "\n")
	assert.Equal(t, `<link rel="icon" type="image/png" href="/a&#34;b&amp;c/é/favicon-16x16.png" sizes="16x16">`, lines[0])
	assert.NotContains(t, html, `\"`)
}

func TestReadHTML_NothingGenerated(t *testing.T) {
	root := t.TempDir()

	_, err := ReadHTML(root, Options{})
	assert.ErrorIs(t, err, ErrNoAssets)
	assert.NoDirExists(t, filepath.Join(root, AssetDir))
}

func TestReadHTML_DoesNotLockOrWrite(t *testing.T) {
	root := t.TempDir()
	g := newGenerator(t, root, writeIcon(t, t.TempDir(), 64, 64), Options{})
	defer g.Close()

	require.NoError(t, g.Apply(config.Overrides{
		Styles: map[config.DeviceKey]config.DeviceStyle{config.DeviceMicrosoft: {Background: "2d89ef"}},
	}))
	_, err := g.CreateBasic()
	require.NoError(t, err)

	// g still holds the lock and has not saved its settings yet
	html, err := ReadHTML(root, Options{URLPrefix: "/icons"})
	require.NoError(t, err)
	assert.Contains(t, html, `href="/icons/favicon-32x32.png"`)
	assert.NotContains(t, html, "theme-color")
	assert.NoFileExists(t, filepath.Join(root, AssetDir, config.SettingsFile))
}
