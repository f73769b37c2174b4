package sprite

import (
	"bytes"
	"testing"
)

func TestRenderGlow_Defaults(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size render in short mode")
	}

	pm, err := RenderGlow(DefaultGlowParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pm.Width() != 1024 || pm.Height() != 1024 {
		t.Errorf("expected 1024x1024, got %dx%d", pm.Width(), pm.Height())
	}

	// The sprite tints purely through alpha: color stays white everywhere,
	// including after the blur.
	data := pm.Data()
	for _, i := range []int{0, (410*1024 + 512) * 4, len(data) - 4} {
		if data[i] != 255 || data[i+1] != 255 || data[i+2] != 255 {
			t.Errorf("pixel at byte %d not white: (%d, %d, %d)", i, data[i], data[i+1], data[i+2])
		}
	}

	// The glow center carries the most alpha
	if pm.Alpha(512, 410) == 0 {
		t.Error("expected nonzero alpha at the center")
	}
	// Far corner is well beyond radius+blur reach
	if pm.Alpha(0, 1023) != 0 {
		t.Errorf("expected zero alpha at far corner, got %d", pm.Alpha(0, 1023))
	}
}

func TestRenderGlow_PeakAlpha(t *testing.T) {
	p := GlowParams{Size: 64, Center: Pt(32, 32), Radius: 20, Alpha: 185, Blur: 0, Power: 1.9}
	pm, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// At the center d=0, so alpha is exactly the configured peak
	if got := pm.Alpha(32, 32); got != 185 {
		t.Errorf("expected peak alpha 185, got %d", got)
	}
}

func TestRenderGlow_FalloffValue(t *testing.T) {
	p := GlowParams{Size: 64, Center: Pt(32, 32), Radius: 20, Alpha: 185, Blur: 0, Power: 1.9}
	pm, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// d=10, t=0.5: 0.5^1.9 * 185 = 49.57, truncated to 49
	if got := pm.Alpha(42, 32); got != 49 {
		t.Errorf("expected alpha 49 at half radius, got %d", got)
	}
}

func TestRenderGlow_ZeroBeyondRadius(t *testing.T) {
	p := GlowParams{Size: 64, Center: Pt(32, 32), Radius: 20, Alpha: 185, Blur: 0, Power: 1.9}
	pm, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range []int{21, 25, 31} {
		if got := pm.Alpha(32+d, 32); got != 0 {
			t.Errorf("expected zero alpha at distance %d, got %d", d, got)
		}
	}
}

func TestRenderGlow_MonotoneFalloff(t *testing.T) {
	p := GlowParams{Size: 64, Center: Pt(32, 32), Radius: 25, Alpha: 200, Blur: 0, Power: 1.9}
	pm, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Walking outward from the center, alpha never increases
	prev := pm.Alpha(32, 32)
	for x := 33; x < 64; x++ {
		cur := pm.Alpha(x, 32)
		if cur > prev {
			t.Fatalf("alpha increased at x=%d: %d -> %d", x, prev, cur)
		}
		prev = cur
	}
}

func TestRenderGlow_Symmetry(t *testing.T) {
	// 65x65 canvas so the pixel grid is symmetric around (32, 32)
	p := GlowParams{Size: 65, Center: Pt(32, 32), Radius: 20, Alpha: 185, Blur: 0, Power: 1.9}
	pm, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for k := 1; k <= 32; k++ {
		l, r := pm.Alpha(32-k, 32), pm.Alpha(32+k, 32)
		if l != r {
			t.Errorf("horizontal asymmetry at offset %d: %d != %d", k, l, r)
		}
		u, d := pm.Alpha(32, 32-k), pm.Alpha(32, 32+k)
		if u != d {
			t.Errorf("vertical asymmetry at offset %d: %d != %d", k, u, d)
		}
	}
}

func TestRenderGlow_BlurSpreads(t *testing.T) {
	sharp := GlowParams{Size: 64, Center: Pt(32, 32), Radius: 10, Alpha: 200, Blur: 0, Power: 1}
	soft := sharp
	soft.Blur = 3

	pmSharp, err := RenderGlow(sharp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pmSoft, err := RenderGlow(soft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Just beyond the radius the sharp glow is zero and the blur leaks through
	if got := pmSharp.Alpha(44, 32); got != 0 {
		t.Fatalf("expected sharp glow to be zero at d=12, got %d", got)
	}
	if got := pmSoft.Alpha(44, 32); got == 0 {
		t.Error("expected blurred glow to reach beyond the radius")
	}

	// The blur also softens the peak
	if pmSoft.Alpha(32, 32) >= pmSharp.Alpha(32, 32) {
		t.Errorf("expected blur to lower the peak: %d >= %d",
			pmSoft.Alpha(32, 32), pmSharp.Alpha(32, 32))
	}
}

func TestRenderGlow_Deterministic(t *testing.T) {
	p := GlowParams{Size: 64, Center: Pt(30, 28), Radius: 18, Alpha: 190, Blur: 4, Power: 2.2}

	pm1, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pm2, err := RenderGlow(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(pm1.Data(), pm2.Data()) {
		t.Error("expected identical renders for identical parameters")
	}

	// The guarantee extends to the encoded files.
	var buf1, buf2 bytes.Buffer
	if err := pm1.WritePNG(&buf1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pm2.WritePNG(&buf2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("expected identical PNG bytes for identical parameters")
	}
}

func TestGlowParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GlowParams)
	}{
		{"zero size", func(p *GlowParams) { p.Size = 0 }},
		{"negative size", func(p *GlowParams) { p.Size = -5 }},
		{"zero radius", func(p *GlowParams) { p.Radius = 0 }},
		{"negative alpha", func(p *GlowParams) { p.Alpha = -1 }},
		{"alpha above 255", func(p *GlowParams) { p.Alpha = 256 }},
		{"negative blur", func(p *GlowParams) { p.Blur = -1 }},
		{"zero power", func(p *GlowParams) { p.Power = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultGlowParams()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
			if _, err := RenderGlow(p); err == nil {
				t.Error("expected RenderGlow to reject invalid params")
			}
		})
	}

	if err := DefaultGlowParams().Validate(); err != nil {
		t.Errorf("default params should validate, got %v", err)
	}
}
