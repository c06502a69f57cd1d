package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/palopsee/internal/sprite"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetNRGBA(x, y, color.NRGBA{G: 200, A: 255})
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestProviderStartsPending(t *testing.T) {
	p := NewProvider([]string{"a", "b"}, sprite.DefaultAlphaThreshold, nil)

	if p.Ready() {
		t.Error("new provider should not be ready")
	}
	if s := p.Get("a"); s == nil || s.State != sprite.StatePending {
		t.Errorf("Get(a) = %+v, expected pending sprite", s)
	}
	if p.Get("zzz") != nil {
		t.Error("unknown sprite should be nil")
	}
	if _, err := p.Lookup("zzz"); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Lookup(zzz) error = %v, expected ErrUnknownSprite", err)
	}
}

func TestLoadDirPrefersFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, sprite.NamePlayer+".png"), 10, 4)

	names := sprite.BuiltinNames()
	p := NewProvider(names, sprite.DefaultAlphaThreshold, nil)
	if err := p.LoadDir(context.Background(), dir, names); err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if !p.Ready() {
		t.Fatal("provider should be ready after load")
	}

	player := p.Get(sprite.NamePlayer)
	if player.State != sprite.StateReady || player.Width != 10 || player.Height != 4 {
		t.Errorf("player = %dx%d %v, expected file sprite 10x4 ready", player.Width, player.Height, player.State)
	}
	if player.Mask.Count() != 20 {
		t.Errorf("player mask count = %d, expected 20", player.Mask.Count())
	}

	// Names without files fall back to built-in art.
	if alien := p.Get(sprite.NameAlien); alien.State != sprite.StateReady {
		t.Errorf("alien state = %v, expected ready", alien.State)
	}
}

func TestLoadCorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider([]string{"broken"}, sprite.DefaultAlphaThreshold, nil)
	err := p.Load(context.Background(), map[string]Source{"broken": FileSource(path)})
	if err != nil {
		t.Fatalf("decode failure should not fail the load: %v", err)
	}

	s := p.Get("broken")
	if s.State != sprite.StateFailed || s.HasMask() {
		t.Errorf("broken sprite = %v hasMask=%v, expected failed without mask", s.State, s.HasMask())
	}
	if !s.Usable() {
		t.Error("failed sprite should stay usable with box collisions")
	}
	if !p.Ready() {
		t.Error("provider should be ready even when a sprite failed")
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProvider([]string{sprite.NamePlayer}, sprite.DefaultAlphaThreshold, nil)
	if err := p.Load(ctx, Sources("", []string{sprite.NamePlayer})); err == nil {
		t.Error("Load() with canceled context should fail")
	}
	if p.Ready() {
		t.Error("provider should not be ready after canceled load")
	}
}

func TestNewBuiltin(t *testing.T) {
	p := NewBuiltin(sprite.DefaultAlphaThreshold)

	if !p.Ready() {
		t.Fatal("builtin provider should be ready")
	}
	for _, name := range p.Names() {
		if !p.Get(name).HasMask() {
			t.Errorf("%s should have a mask", name)
		}
	}
}

func TestSourcesMissingDir(t *testing.T) {
	src := Sources(filepath.Join(t.TempDir(), "nope"), []string{sprite.NamePowerUp})
	if _, ok := src[sprite.NamePowerUp].(BuiltinSource); !ok {
		t.Errorf("expected builtin source, got %T", src[sprite.NamePowerUp])
	}
}
