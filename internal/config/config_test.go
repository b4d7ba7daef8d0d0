package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in      string
		want    Compression
		wantErr bool
	}{
		{"original", CompressionOriginal, false},
		{"LOW", CompressionLow, false},
		{"50", CompressionHigh, false},
		{"veryhigh", CompressionVeryHigh, false},
		{"25", CompressionVeryHigh, false},
		{"60", 0, true},
		{"max", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCompression(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompressionPNGLevel(t *testing.T) {
	assert.Equal(t, png.NoCompression, CompressionOriginal.PNGLevel())
	assert.Equal(t, png.BestSpeed, CompressionLow.PNGLevel())
	assert.Equal(t, png.DefaultCompression, CompressionHigh.PNGLevel())
	assert.Equal(t, png.BestCompression, CompressionVeryHigh.PNGLevel())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"bad compression", func(s *Settings) { s.Compression = 60 }, true},
		{"bad crop method", func(s *Settings) { s.CropMethod = crop.Method(5) }, true},
		{"margin 15", func(s *Settings) {
			s.Styles = map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 15}}
		}, false},
		{"margin 16", func(s *Settings) {
			s.Styles = map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 16}}
		}, true},
		{"negative margin", func(s *Settings) {
			s.Styles = map[DeviceKey]DeviceStyle{DeviceAndroid: {Margin: -1}}
		}, true},
		{"bad colour", func(s *Settings) {
			s.Styles = map[DeviceKey]DeviceStyle{DeviceMicrosoft: {Background: "zzzzzz"}}
		}, true},
		{"unknown device", func(s *Settings) {
			s.Styles = map[DeviceKey]DeviceStyle{"blackberry": {}}
		}, true},
		{"bad orientation", func(s *Settings) { s.Android.Orientation = "diagonal" }, true},
		{"landscape", func(s *Settings) { s.Android.Orientation = Landscape }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestStore_SaveLoad(t *testing.T) {
	s := Store{Dir: filepath.Join(t.TempDir(), "favicon")}

	in := Settings{
		Compression: CompressionHigh,
		CropMethod:  crop.Entropy,
		Styles: map[DeviceKey]DeviceStyle{
			DeviceApple:     {Background: ColorGreen, Margin: 10},
			DeviceMicrosoft: {Background: ColorTeal},
		},
		Android: AndroidMeta{Name: "My app", URL: "https://example.com/", Orientation: Portrait},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(`{"compression":33,"cropmethod":0}`), 0o644))

	_, err := Store{Dir: dir}.Load()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStore_LoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(`not json`), 0o644))

	_, err := Store{Dir: dir}.Load()
	assert.Error(t, err)
}

func TestMerge_NoOverridesIsNotStale(t *testing.T) {
	prev := Defaults()

	m, err := Merge(prev, Overrides{})
	require.NoError(t, err)
	assert.False(t, m.Stale)
	assert.Equal(t, prev, m.Settings)
}

func TestMerge_SameValuesAreNotStale(t *testing.T) {
	prev := Settings{
		Compression: CompressionLow,
		CropMethod:  crop.Balanced,
		Styles:      map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 4}},
	}

	m, err := Merge(prev, Overrides{
		Compression: ptr(CompressionLow),
		CropMethod:  ptr(crop.Balanced),
		Styles:      map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 4}},
	})
	require.NoError(t, err)
	assert.False(t, m.Stale)
}

func TestMerge_ChangesAreStale(t *testing.T) {
	prev := Settings{
		Compression: CompressionOriginal,
		CropMethod:  crop.Center,
		Styles:      map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue}},
	}

	tests := []struct {
		name string
		o    Overrides
	}{
		{"compression", Overrides{Compression: ptr(CompressionLow)}},
		{"crop method", Overrides{CropMethod: ptr(crop.Entropy)}},
		{"style value", Overrides{Styles: map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 2}}}},
		{"new style key", Overrides{Styles: map[DeviceKey]DeviceStyle{DeviceAndroid: {Background: ColorGreen}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Merge(prev, tc.o)
			require.NoError(t, err)
			assert.True(t, m.Stale)
		})
	}
}

func TestMerge_AndroidMetaNotStale(t *testing.T) {
	m, err := Merge(Defaults(), Overrides{Android: &AndroidMeta{Name: "App", Orientation: Landscape}})
	require.NoError(t, err)
	assert.False(t, m.Stale)
	assert.Equal(t, "App", m.Settings.Android.Name)
}

func TestMerge_KeepsUntouchedStyles(t *testing.T) {
	prev := Defaults()
	prev.Styles = map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue}}

	m, err := Merge(prev, Overrides{Styles: map[DeviceKey]DeviceStyle{DeviceMicrosoft: {Background: ColorTeal}}})
	require.NoError(t, err)
	assert.Equal(t, DeviceStyle{Background: ColorBlue}, m.Settings.Style(DeviceApple))
	assert.Equal(t, DeviceStyle{Background: ColorTeal}, m.Settings.Style(DeviceMicrosoft))

	// prev is not mutated
	_, ok := prev.Styles[DeviceMicrosoft]
	assert.False(t, ok)
}

func TestMerge_RejectsInvalid(t *testing.T) {
	_, err := Merge(Defaults(), Overrides{Compression: ptr(Compression(99))})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Merge(Defaults(), Overrides{Styles: map[DeviceKey]DeviceStyle{DeviceApple: {Background: ColorBlue, Margin: 20}}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, ColorTeal, ResolveColor("teal"))
	assert.Equal(t, "123456", ResolveColor("123456"))
}
