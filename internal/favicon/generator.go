package favicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
)

const (
	// AssetDir is the directory under the root that receives every asset.
	AssetDir = "favicon"

	// OriginalFile is the stored copy of the source icon.
	OriginalFile = ".original"

	// LockFile guards the asset directory against concurrent runs.
	LockFile = ".lock"

	// DefaultURLPrefix is the public path the asset directory is served from.
	DefaultURLPrefix = "/favicon"
)

var (
	// ErrLocked is returned by New when another run holds the asset directory.
	ErrLocked = errors.New("asset directory is locked by another run")

	// ErrSourceNotFound is returned by New when no source icon exists.
	ErrSourceNotFound = errors.New("source icon not found")

	// ErrNoAssets is returned by HTML when no asset has been generated yet.
	ErrNoAssets = errors.New("no favicon assets found")
)

// Options tune a Generator.
type Options struct {
	// Force regenerates every asset of the run, even when nothing changed.
	Force bool

	// URLPrefix is prepended to asset file names in HTML, the manifest, and
	// browserconfig.xml. Defaults to DefaultURLPrefix.
	URLPrefix string

	// CropOptions are passed to crop.New, e.g. crop.WithSeed for
	// reproducible balanced crops.
	CropOptions []crop.Option
}

// Generator derives the icon set for one root directory.
//
// A Generator holds an exclusive lock on the asset directory from New until
// Close. It is not safe for concurrent use.
type Generator struct {
	root      string
	dir       string
	urlPrefix string
	cropOpts  []crop.Option

	store         config.Store
	loaded        config.Settings
	settingsExist bool
	settings      config.Settings
	stale         bool

	lock *flock.Flock
}

// New prepares generation under root.
//
// icon is the source image; when empty, the previously stored original is
// used. The icon is copied into the asset directory when no original exists
// yet or when its byte size differs from the stored one. Such a copy marks
// the run stale.
func New(root, icon string, opts Options) (*Generator, error) {
	dir := filepath.Join(root, AssetDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, LockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock asset directory: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	g := &Generator{
		root:      root,
		dir:       dir,
		urlPrefix: urlPrefix(opts.URLPrefix),
		cropOpts:  opts.CropOptions,
		store:     config.Store{Dir: dir},
		stale:     opts.Force,
		lock:      lock,
	}

	if err := g.init(icon); err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return g, nil
}

func (g *Generator) init(icon string) error {
	if _, err := os.Stat(g.store.Path()); err == nil {
		g.settingsExist = true
	}

	settings, err := g.store.Load()
	if err != nil {
		return err
	}
	g.loaded = settings
	g.settings = settings

	copied, err := establishSource(icon, g.OriginalPath())
	if err != nil {
		return err
	}
	if copied {
		log.Info().Str("icon", icon).Str("original", g.OriginalPath()).Msg("source icon stored, forcing rebuild")
		g.stale = true
	}
	return nil
}

// Apply merges overrides into the run settings. Any image-affecting change
// marks the run stale; once stale, the run stays stale.
func (g *Generator) Apply(o config.Overrides) error {
	merged, err := config.Merge(g.settings, o)
	if err != nil {
		return err
	}
	g.settings = merged.Settings
	if merged.Stale {
		log.Debug().Msg("configuration changed, forcing rebuild")
		g.stale = true
	}
	return nil
}

// Settings returns the current run settings.
func (g *Generator) Settings() config.Settings {
	return g.settings
}

// Stale reports whether existing assets will be overwritten.
func (g *Generator) Stale() bool {
	return g.stale
}

// Dir returns the asset directory.
func (g *Generator) Dir() string {
	return g.dir
}

// OriginalPath returns the location of the stored source icon.
func (g *Generator) OriginalPath() string {
	return filepath.Join(g.dir, OriginalFile)
}

// Close persists the settings when they changed and releases the lock.
func (g *Generator) Close() error {
	var errs []error
	if !g.settingsExist || !reflect.DeepEqual(g.loaded, g.settings) {
		if err := g.store.Save(g.settings); err != nil {
			errs = append(errs, err)
		}
	}
	if err := g.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("failed to unlock asset directory: %w", err))
	}
	return errors.Join(errs...)
}

func urlPrefix(p string) string {
	if p == "" {
		return DefaultURLPrefix
	}
	return strings.TrimRight(p, "/")
}

// establishSource copies icon to original when needed and reports whether
// it did. An empty icon means "use the stored original".
func establishSource(icon, original string) (bool, error) {
	origInfo, origErr := os.Stat(original)
	if origErr != nil && !errors.Is(origErr, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat original: %w", origErr)
	}

	if icon == "" || icon == original {
		if origErr != nil {
			return false, fmt.Errorf("%w: %s", ErrSourceNotFound, original)
		}
		return false, nil
	}

	iconInfo, err := os.Stat(icon)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, icon, err)
	}

	if origErr == nil && origInfo.Size() == iconInfo.Size() {
		return false, nil
	}

	data, err := os.ReadFile(icon)
	if err != nil {
		return false, fmt.Errorf("failed to read source icon: %w", err)
	}
	if err := writeFileAtomic(original, data); err != nil {
		return false, err
	}
	return true, nil
}
