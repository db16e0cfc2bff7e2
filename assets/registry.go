package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	// texture decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/disasterengine/canvas"
	"github.com/disasterengine/canvas/mesh"
	"github.com/disasterengine/canvas/text"
)

// Sentinel errors for asset loading.
var (
	// ErrNotFound is returned when a path is not in the file system or the
	// buffer table.
	ErrNotFound = errors.New("assets: not found")

	// ErrUnsupportedFormat is returned for files no decoder accepts.
	ErrUnsupportedFormat = errors.New("assets: unsupported format")
)

// Built-in font names.
const (
	FontBasic  = "builtin:basic"
	FontProggy = "builtin:proggy"
)

// bufferPrefix starts every key returned by Register.
const bufferPrefix = "buffer-"

// Registry resolves asset paths against a file system and caches the
// results. It is safe for concurrent use.
type Registry struct {
	fsys fs.FS
	opts options

	buffers *cache[*canvas.PixelBuffer]
	fonts   *cache[*canvas.Font]
	meshes  *cache[*mesh.Mesh]

	nextKey atomic.Uint64

	missingMu sync.Mutex
	missing   map[string]bool
}

var _ canvas.AssetRegistry = (*Registry)(nil)

// New creates a registry over fsys. fsys may be nil when only registered
// buffers and built-in fonts are used.
func New(fsys fs.FS, opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		fsys:    fsys,
		opts:    o,
		buffers: newCache[*canvas.PixelBuffer](),
		fonts:   newCache[*canvas.Font](),
		meshes:  newCache[*mesh.Mesh](),
		missing: make(map[string]bool),
	}
}

func (r *Registry) log() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return canvas.Logger()
}

// clean normalises a path to fs.FS form.
func clean(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func (r *Registry) readFile(p string) ([]byte, error) {
	if r.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}
	return data, nil
}

// warnOnce logs a missing asset the first time each path fails.
func (r *Registry) warnOnce(p string, err error) {
	r.missingMu.Lock()
	seen := r.missing[p]
	r.missing[p] = true
	r.missingMu.Unlock()
	if !seen {
		r.log().Warn("assets: using placeholder", "path", p, "err", err)
	}
}

// LoadPixelBuffer returns the buffer at path, decoding and caching it on
// first use.
func (r *Registry) LoadPixelBuffer(p string) (*canvas.PixelBuffer, error) {
	p = clean(p)
	return r.buffers.GetOrCreate(p, func() (*canvas.PixelBuffer, error) {
		img, err := r.decodeImage(p)
		if err != nil {
			return nil, err
		}
		r.log().Debug("assets: texture loaded", "path", p,
			"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return canvas.FromImage(img), nil
	})
}

func (r *Registry) decodeImage(p string) (image.Image, error) {
	data, err := r.readFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

// PixelBuffer returns the buffer at path, or the shared placeholder when
// it cannot be loaded. Each failing path is logged once.
func (r *Registry) PixelBuffer(p string) *canvas.PixelBuffer {
	b, err := r.LoadPixelBuffer(p)
	if err != nil {
		r.warnOnce(clean(p), err)
		return placeholder()
	}
	return b
}

var placeholder = sync.OnceValue(canvas.Placeholder)

// Register stores b under a fresh "buffer-N" key and returns the key.
func (r *Registry) Register(b *canvas.PixelBuffer) string {
	key := bufferPrefix + strconv.FormatUint(r.nextKey.Add(1)-1, 10)
	r.buffers.Set(key, b)
	r.log().Info("assets: buffer registered", "key", key)
	return key
}

// Font returns the font at path: a built-in name, a .ttf/.otf file baked
// at the configured size, or an image atlas cut by the configured layout.
func (r *Registry) Font(p string) (*canvas.Font, error) {
	switch p {
	case FontBasic, "":
		return canvas.DefaultFont(), nil
	case FontProggy:
		return canvas.ProggyFont(), nil
	}
	p = clean(p)
	return r.fonts.GetOrCreate(p, func() (*canvas.Font, error) {
		switch strings.ToLower(path.Ext(p)) {
		case ".ttf", ".otf":
			data, err := r.readFile(p)
			if err != nil {
				return nil, err
			}
			a, err := text.LoadOpenType(data, r.opts.fontSize, r.opts.layout.Charset, r.opts.layout.Columns)
			if err != nil {
				return nil, fmt.Errorf("assets: font %s: %w", p, err)
			}
			return canvas.FontFromAtlas(a), nil
		}
		atlas, err := r.LoadPixelBuffer(p)
		if err != nil {
			return nil, err
		}
		l := r.opts.layout
		f, err := canvas.NewFont(atlas, atlas.Width()/l.Columns, atlas.Height()/l.Rows, l.Charset)
		if err != nil {
			return nil, fmt.Errorf("assets: font %s: %w", p, err)
		}
		return f, nil
	})
}

// Mesh returns the OBJ mesh at path.
func (r *Registry) Mesh(p string) (*mesh.Mesh, error) {
	p = clean(p)
	return r.meshes.GetOrCreate(p, func() (*mesh.Mesh, error) {
		if ext := strings.ToLower(path.Ext(p)); ext != ".obj" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p)
		}
		data, err := r.readFile(p)
		if err != nil {
			return nil, err
		}
		m, err := mesh.ParseOBJ(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("assets: mesh %s: %w", p, err)
		}
		return m, nil
	})
}

// Preload loads every path by extension and returns the joined errors.
func (r *Registry) Preload(paths ...string) error {
	var errs []error
	for _, p := range paths {
		var err error
		switch strings.ToLower(path.Ext(p)) {
		case ".obj":
			_, err = r.Mesh(p)
		case ".ttf", ".otf":
			_, err = r.Font(p)
		default:
			_, err = r.LoadPixelBuffer(p)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Unload drops every cached asset stored under path and forgets that it
// was reported missing.
func (r *Registry) Unload(p string) bool {
	p = clean(p)
	b := r.buffers.Delete(p)
	f := r.fonts.Delete(p)
	m := r.meshes.Delete(p)
	r.missingMu.Lock()
	delete(r.missing, p)
	r.missingMu.Unlock()
	return b || f || m
}

// UnloadAll drops every cached asset including registered buffers.
func (r *Registry) UnloadAll() {
	r.buffers.Clear()
	r.fonts.Clear()
	r.meshes.Clear()
	r.missingMu.Lock()
	clear(r.missing)
	r.missingMu.Unlock()
}

// Stats reports texture cache usage.
func (r *Registry) Stats() Stats {
	return r.buffers.stats()
}
