// Package fonts resolves font files into sized faces, falling back through a
// list of alternatives to the built-in Go Regular font, and measures text
// drawn with those faces.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Kind says which step of the fallback chain produced a face
type Kind int

const (
	// Loaded - the requested font was used
	Loaded Kind = iota
	// Fallback - one of the fallback fonts was used
	Fallback
	// Default - the built-in font was used
	Default
)

func (k Kind) String() string {
	switch k {
	case Loaded:
		return "loaded"
	case Fallback:
		return "fallback"
	default:
		return "default"
	}
}

// DefaultSource names the built-in font in a Handle
const DefaultSource = "goregular"

// Handle is a resolved, sized font face
type Handle struct {
	Face     font.Face
	Size     int
	Kind     Kind
	Source   string // File actually used, DefaultSource for the built-in font
	Reason   error  // Why the requested font wasn't used. nil when Loaded
	Measurer Measurer
}

// Ascent returns the distance in pixels from the top of a line to its baseline
func (h *Handle) Ascent() float64 {
	ascent := h.Face.Metrics().Ascent
	if ascent <= 0 {
		return float64(h.Size)
	}
	return float64(ascent) / 64
}

type faceKey struct {
	id   string
	size int
}

// Resolver loads sized faces and caches them by (identifier, size). Faces
// are not safe for concurrent use so each worker should own a Resolver;
// parsed fonts are shared between all resolvers.
type Resolver struct {
	fallbacks []string
	log       *common.Logger
	load      func(path string) (*truetype.Font, error)

	mu    sync.Mutex
	faces map[faceKey]*Handle
}

// NewResolver creates a resolver that tries fallbacks, in order, when the
// requested font can't be loaded.
func NewResolver(log *common.Logger, fallbacks ...string) *Resolver {
	if log == nil {
		log = common.NewLog()
	}
	return &Resolver{
		fallbacks: fallbacks,
		log:       log,
		load:      loadFontFile,
		faces:     make(map[faceKey]*Handle),
	}
}

// Resolve returns a face for id at size. It never fails: when neither id nor
// any fallback can be loaded the built-in font is used.
func (r *Resolver) Resolve(id string, size int) *Handle {
	key := faceKey{id, size}
	r.mu.Lock()
	defer r.mu.Unlock()
	if handle, found := r.faces[key]; found {
		return handle
	}
	handle := r.resolve(id, size)
	handle.Measurer = NewMeasurer(handle.Face, size)
	r.faces[key] = handle
	return handle
}

// Len returns the number of cached faces
func (r *Resolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.faces)
}

func (r *Resolver) resolve(id string, size int) *Handle {
	f, err := r.load(id)
	if err == nil {
		r.log.Msg("Using font from: %s", id)
		return &Handle{Face: newFace(f, size), Size: size, Kind: Loaded, Source: id}
	}
	r.log.Msg("Failed to load font from %s: %v", id, err)
	reason := err

	for _, fallback := range r.fallbacks {
		f, err := r.load(fallback)
		if err != nil {
			continue
		}
		r.log.Msg("Using %s as fallback", fallback)
		return &Handle{Face: newFace(f, size), Size: size, Kind: Fallback,
			Source: fallback, Reason: reason}
	}

	r.log.Msg("Using default font as fallback")
	return &Handle{Face: newFace(defaultFont(), size), Size: size, Kind: Default,
		Source: DefaultSource, Reason: reason}
}

func newFace(f *truetype.Font, size int) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size: float64(size), // 72 DPI, points == pixels
	})
}

var parsedFonts sync.Map

// loadFontFile parses a font file. Parsed fonts are read-only and shared
// across all resolvers; failures are not remembered so a font that appears
// later is picked up.
func loadFontFile(path string) (*truetype.Font, error) {
	if v, found := parsedFonts.Load(path); found {
		return v.(*truetype.Font), nil
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("no font path")
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	v, _ := parsedFonts.LoadOrStore(path, f)
	return v.(*truetype.Font), nil
}

var (
	builtin     *truetype.Font
	builtinOnce sync.Once
)

func defaultFont() *truetype.Font {
	builtinOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		builtin = f
	})
	return builtin
}
