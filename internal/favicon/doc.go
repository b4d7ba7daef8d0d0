// Package favicon generates a complete favicon set from one source image.
//
// A Generator owns the asset directory "<root>/favicon" for the duration of a
// run. It stores a copy of the source icon there, derives every platform size
// through the fit pipeline, and writes the Android manifest and the Windows
// browserconfig.xml alongside.
//
// # Regeneration
//
// Existing assets are kept unless the run is stale. A run becomes stale when
// the source icon is replaced, when Options.Force is set, or when Apply
// changes any image-affecting setting (compression, crop method, or a device
// style). Running twice with the same inputs writes nothing the second time.
//
// # Usage
//
//	g, err := favicon.New(root, "logo.png", favicon.Options{})
//	if err != nil {
//		return err
//	}
//	defer g.Close()
//
//	if err := g.Apply(config.Overrides{CropMethod: &method}); err != nil {
//		return err
//	}
//	report, err := g.CreateAll()
//	...
//	tags, err := g.HTML()
package favicon
