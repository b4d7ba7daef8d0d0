package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/devices"
	"github.com/ironsheep/favicon-tools-mcp/internal/favicon"
)

var styleKeys = []config.DeviceKey{config.DeviceApple, config.DeviceAndroid, config.DeviceMicrosoft}

// addGenerateFlags registers the flags shared by generate and watch.
func addGenerateFlags(fs *pflag.FlagSet) {
	fs.String("icon", "", "source image (default: the previously stored source)")
	fs.String("compression", "", "PNG compression: original, low, high, veryhigh")
	fs.String("crop", "", "crop method: center, balanced, entropy")
	for _, key := range styleKeys {
		fs.String(string(key)+"-bg", "", fmt.Sprintf("%s background colour (RRGGBB or tile colour name)", key))
		fs.Int(string(key)+"-margin", 0, fmt.Sprintf("%s margin in pixels, 0-15 (needs a background)", key))
	}
	fs.String("name", "", "web app name for manifest.json")
	fs.String("url", "", "web app start_url for manifest.json")
	fs.String("orientation", "", "web app orientation: portrait, landscape")
	fs.StringSlice("family", nil, "families to generate: basic, apple, android, microsoft (default all)")
	fs.Bool("force", false, "regenerate every asset")
	fs.Uint64("seed", 0, "random seed for the balanced crop")
	fs.Bool("html", false, "print the HTML tags after generating")
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the icon set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(viper.GetViper(), cmd.OutOrStdout(), false)
		},
	}
	addGenerateFlags(cmd.Flags())
	return cmd
}

// overrides turns the configured values into settings overrides. prev
// supplies the manifest fields that were not given.
func overrides(v *viper.Viper, prev config.Settings) (config.Overrides, error) {
	var o config.Overrides

	if s := v.GetString("compression"); s != "" {
		c, err := config.ParseCompression(s)
		if err != nil {
			return o, err
		}
		o.Compression = &c
	}

	if s := v.GetString("crop"); s != "" {
		m, err := crop.ParseMethod(s)
		if err != nil {
			return o, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
		}
		o.CropMethod = &m
	}

	for _, key := range styleKeys {
		bg := v.GetString(string(key) + "-bg")
		if bg == "" {
			continue
		}
		if o.Styles == nil {
			o.Styles = make(map[config.DeviceKey]config.DeviceStyle)
		}
		o.Styles[key] = config.DeviceStyle{
			Background: config.ResolveColor(bg),
			Margin:     v.GetInt(string(key) + "-margin"),
		}
	}

	name, url, orientation := v.GetString("name"), v.GetString("url"), v.GetString("orientation")
	if name != "" || url != "" || orientation != "" {
		meta := prev.Android
		if name != "" {
			meta.Name = name
		}
		if url != "" {
			meta.URL = url
		}
		if orientation != "" {
			meta.Orientation = config.Orientation(orientation)
		}
		o.Android = &meta
	}

	return o, nil
}

func families(v *viper.Viper) ([]devices.Family, error) {
	names := v.GetStringSlice("family")
	if len(names) == 0 {
		return devices.Families, nil
	}

	out := make([]devices.Family, 0, len(names))
	for _, name := range names {
		f, err := devices.ParseFamily(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func generatorOptions(v *viper.Viper, force bool) favicon.Options {
	opts := favicon.Options{
		Force:     force || v.GetBool("force"),
		URLPrefix: v.GetString("url-prefix"),
	}
	if v.IsSet("seed") {
		opts.CropOptions = []crop.Option{crop.WithSeed(v.GetUint64("seed"))}
	}
	return opts
}

// generate runs one generation with the configured values. force adds to
// the configured --force.
func generate(v *viper.Viper, out io.Writer, force bool) (err error) {
	fams, err := families(v)
	if err != nil {
		return err
	}

	g, err := favicon.New(v.GetString("root"), v.GetString("icon"), generatorOptions(v, force))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, g.Close())
	}()

	o, err := overrides(v, g.Settings())
	if err != nil {
		return err
	}
	if err := g.Apply(o); err != nil {
		return err
	}

	var total favicon.Report
	for _, f := range fams {
		r, err := g.Create(f)
		total.Written = append(total.Written, r.Written...)
		total.Skipped = append(total.Skipped, r.Skipped...)
		if err != nil {
			return err
		}
	}

	log.Info().
		Str("dir", g.Dir()).
		Bool("stale", g.Stale()).
		Int("written", len(total.Written)).
		Int("skipped", len(total.Skipped)).
		Msg("generation complete")

	if v.GetBool("html") {
		html, err := g.HTML()
		if err != nil {
			return err
		}
		fmt.Fprint(out, html)
	}
	return nil
}
