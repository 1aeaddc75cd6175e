package pipeline

import (
	"testing"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"bmp", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"solid", false},
		{"palette", false},
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateEngine(t *testing.T) {
	for _, e := range []string{"native", "graphviz"} {
		if err := ValidateEngine(e); err != nil {
			t.Errorf("ValidateEngine(%q) error = %v", e, err)
		}
	}
	if err := ValidateEngine("cairo"); err == nil {
		t.Error("unknown engine should fail")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.CenterPoint() != DefaultCenter {
		t.Errorf("Center should be %v, got %v", DefaultCenter, opts.CenterPoint())
	}
	if opts.Count != DefaultCount {
		t.Errorf("Count should be %d, got %d", DefaultCount, opts.Count)
	}
	if opts.MaxWidth != DefaultMaxSide || opts.MaxHeight != DefaultMaxSide {
		t.Errorf("Max size should be %dx%d, got %dx%d", DefaultMaxSide, DefaultMaxSide, opts.MaxWidth, opts.MaxHeight)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed should be %d, got %d", DefaultSeed, opts.Seed)
	}
	if opts.MaxRadius != 0 {
		t.Errorf("MaxRadius should stay unbounded, got %d", opts.MaxRadius)
	}
}

func TestSetLayoutDefaultsKeepsExplicitCenter(t *testing.T) {
	origin := geometry.Pt(0, 0)
	opts := Options{Center: &origin}
	opts.SetLayoutDefaults()
	if opts.CenterPoint() != origin {
		t.Errorf("explicit (0,0) center replaced by %v", opts.CenterPoint())
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("Canvas should be %dx%d, got %dx%d", DefaultWidth, DefaultHeight, opts.Width, opts.Height)
	}
	if opts.Engine != EngineNative {
		t.Errorf("Engine should be %s, got %s", EngineNative, opts.Engine)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative count", Options{Count: -1}, errors.ErrCodeInvalidArgument},
		{"negative max radius", Options{MaxRadius: -5}, errors.ErrCodeInvalidArgument},
		{"min above max", Options{MinWidth: 50, MaxWidth: 10, MaxHeight: 10}, errors.ErrCodeInvalidSize},
		{"negative explicit size", Options{Sizes: []geometry.Size{{Width: 1, Height: -1}}}, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLayout()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateForLayout() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Style: "neon"}, errors.ErrCodeInvalidStyle},
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidSize},
		{"bad background", Options{Background: "#12"}, errors.ErrCodeInvalidArgument},
		{"bad engine", Options{Engine: "cairo"}, errors.ErrCodeInvalidArgument},
		{"oversized canvas", Options{Width: 65536, Height: 65536}, errors.ErrCodeInvalidSize},
		{"huge scale", Options{Scale: 1e4}, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForRender()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateForRender() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Count: 5}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	seed, style, formats := opts.Seed, opts.Style, len(opts.Formats)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Seed != seed || opts.Style != style || len(opts.Formats) != formats {
		t.Error("options changed on second call")
	}
}

func TestLayoutKeyOpts(t *testing.T) {
	a := Options{Count: 10}
	a.SetLayoutDefaults()
	b := a
	b.Seed = 7
	if a.LayoutKeyOpts() == b.LayoutKeyOpts() {
		t.Error("seed should be part of the layout key")
	}

	sized := Options{Sizes: []geometry.Size{{Width: 3, Height: 4}}}
	sized.SetLayoutDefaults()
	other := sized
	other.Seed = 99
	other.Count = 1
	if sized.LayoutKeyOpts() != other.LayoutKeyOpts() {
		t.Error("generation options should not affect the key for explicit sizes")
	}
	if sized.LayoutKeyOpts().SizesHash == "" {
		t.Error("explicit sizes should be hashed into the key")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Engine: EngineGraphviz, Scale: 2}
	opts.SetRenderDefaults()

	if got := opts.ArtifactKeyOpts(FormatSVG).Engine; got != EngineGraphviz {
		t.Errorf("svg key engine = %q, want graphviz", got)
	}
	if got := opts.ArtifactKeyOpts(FormatJSON).Engine; got != "" {
		t.Errorf("json key engine = %q, want empty", got)
	}
	if got := opts.ArtifactKeyOpts(FormatPNG).Scale; got != 2 {
		t.Errorf("png key scale = %v, want 2", got)
	}
	if got := opts.ArtifactKeyOpts(FormatSVG).Seed; got != 0 {
		t.Errorf("solid style key seed = %d, want 0", got)
	}
}
