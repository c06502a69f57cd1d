// Package assets loads sprites concurrently and serves them to the game.
//
// Every sprite starts pending. Loading decodes images in parallel, builds
// opacity masks, and publishes each finished sprite under a lock, so readers
// see either a pending placeholder or a complete immutable sprite.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	// Registered image decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/palopsee/internal/sprite"
)

// maxParallelDecodes bounds concurrent decoders.
const maxParallelDecodes = 4

// Extensions tried, in order, when looking for a sprite file in a directory.
var Extensions = []string{".png", ".gif", ".webp", ".jpg", ".jpeg", ".bmp"}

// Source produces a decoded image for one sprite.
type Source interface {
	Open(ctx context.Context) (image.Image, error)
}

// FileSource decodes an image file.
type FileSource string

func (f FileSource) Open(ctx context.Context) (image.Image, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

// BuiltinSource rasterizes built-in sprite art.
type BuiltinSource string

func (b BuiltinSource) Open(ctx context.Context) (image.Image, error) {
	art, ok := sprite.Builtin[string(b)]
	if !ok {
		return nil, fmt.Errorf("no built-in art named %q", string(b))
	}
	return art.Rasterize(), nil
}

// Decode reads any registered image format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Provider owns the sprite table. It is safe for concurrent use.
type Provider struct {
	mu        sync.RWMutex
	sprites   map[string]*sprite.Sprite
	loaded    bool
	threshold uint8
	logger    *log.Logger
}

// NewProvider creates a provider where every named sprite is pending.
func NewProvider(names []string, threshold uint8, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Provider{
		sprites:   make(map[string]*sprite.Sprite, len(names)),
		threshold: threshold,
		logger:    logger,
	}
	for _, name := range names {
		p.sprites[name] = sprite.Pending(name)
	}
	return p
}

// NewBuiltin returns a provider with every built-in sprite already loaded.
func NewBuiltin(threshold uint8) *Provider {
	names := sprite.BuiltinNames()
	p := NewProvider(names, threshold, nil)
	for _, name := range names {
		p.publish(context.Background(), name, BuiltinSource(name))
	}
	p.loaded = true
	return p
}

// Get returns the named sprite, or nil if the name is unknown.
func (p *Provider) Get(name string) *sprite.Sprite {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sprites[name]
}

// Ready reports whether loading has finished, successfully or not.
func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Names returns the known sprite names in sorted order.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.sprites))
	for name := range p.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load decodes every source concurrently. A source that fails to decode
// publishes a failed sprite and is logged; it does not fail the load.
// Only context cancellation is returned as an error, and in that case
// the provider stays not ready.
func (p *Provider) Load(ctx context.Context, sources map[string]Source) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDecodes)

	for name, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.publish(ctx, name, src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("assets: load interrupted: %w", err)
	}

	p.mu.Lock()
	p.loaded = true
	p.mu.Unlock()
	p.logger.Info("assets loaded", "count", len(sources))
	return nil
}

// publish decodes one source and swaps the result into the table.
func (p *Provider) publish(ctx context.Context, name string, src Source) {
	var s *sprite.Sprite
	img, err := src.Open(ctx)
	switch {
	case err != nil:
		p.logger.Warn("sprite decode failed, using box collisions", "sprite", name, "err", err)
		s = sprite.Failed(name)
	case img.Bounds().Empty():
		p.logger.Warn("sprite image is empty, using box collisions", "sprite", name)
		s = sprite.Failed(name)
	default:
		s = sprite.New(name, img, p.threshold)
	}

	p.mu.Lock()
	p.sprites[name] = s
	p.mu.Unlock()
}

// Sources builds the source table for the given names. When dir is set, a
// file named <name><ext> in it wins; otherwise built-in art is used.
func Sources(dir string, names []string) map[string]Source {
	out := make(map[string]Source, len(names))
	for _, name := range names {
		out[name] = BuiltinSource(name)
		if dir == "" {
			continue
		}
		for _, ext := range Extensions {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				out[name] = FileSource(path)
				break
			}
		}
	}
	return out
}

// LoadDir is Load over Sources(dir, names).
func (p *Provider) LoadDir(ctx context.Context, dir string, names []string) error {
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			p.logger.Warn("sprite directory unavailable, using built-in art", "dir", dir)
			dir = ""
		}
	}
	return p.Load(ctx, Sources(dir, names))
}

// ErrUnknownSprite is returned by Lookup for names the provider does not know.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Lookup returns the named sprite or ErrUnknownSprite.
func (p *Provider) Lookup(name string) (*sprite.Sprite, error) {
	if s := p.Get(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
}
