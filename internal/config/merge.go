package config

import (
	"maps"

	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
)

// Overrides are caller-supplied changes to the persisted settings. Nil
// pointers and missing style keys leave the persisted value in place.
type Overrides struct {
	Compression *Compression
	CropMethod  *crop.Method
	Styles      map[DeviceKey]DeviceStyle
	Android     *AndroidMeta
}

// Merged is the outcome of applying Overrides to a previous snapshot.
type Merged struct {
	Settings Settings

	// Stale is true when an image-affecting value changed, meaning every
	// asset of the run must be regenerated even if its file exists.
	Stale bool
}

// Merge applies o to prev and decides staleness.
//
// A change of compression, crop method, or any per-device style (including
// a style for a device that had none) marks the run stale. Android manifest
// fields are merged but never force an image rebuild.
//
// The merged settings are validated before anything else happens; on error
// the returned Merged is the zero value.
func Merge(prev Settings, o Overrides) (Merged, error) {
	next := prev
	next.Styles = maps.Clone(prev.Styles)
	stale := false

	if o.Compression != nil {
		if *o.Compression != prev.Compression {
			stale = true
		}
		next.Compression = *o.Compression
	}

	if o.CropMethod != nil {
		if *o.CropMethod != prev.CropMethod {
			stale = true
		}
		next.CropMethod = *o.CropMethod
	}

	for key, style := range o.Styles {
		old, ok := prev.Styles[key]
		if !ok || old != style {
			stale = true
		}
		if next.Styles == nil {
			next.Styles = make(map[DeviceKey]DeviceStyle)
		}
		next.Styles[key] = style
	}

	if o.Android != nil {
		next.Android = *o.Android
	}

	if err := next.Validate(); err != nil {
		return Merged{}, err
	}
	return Merged{Settings: next, Stale: stale}, nil
}
