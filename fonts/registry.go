package fonts

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"

	"overlaybot/config"
	"overlaybot/types"
)

// Font is a resolved font file.
type Font struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	DisplayName string `json:"display_name,omitempty"`
}

// UnknownFontError is returned when an identifier matches no registered font.
type UnknownFontError struct {
	ID    string
	Known []string
}

func (e *UnknownFontError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("%v %q: no fonts registered", types.ErrUnresolvableFont, e.ID)
	}
	return fmt.Sprintf("%v %q (known: %s)", types.ErrUnresolvableFont, e.ID, strings.Join(e.Known, ", "))
}

func (e *UnknownFontError) Unwrap() error { return types.ErrUnresolvableFont }

// Registry maps font identifiers to files on disk.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]Font
}

// NewRegistry scans dir for .ttf and .otf files. The identifier of a font is
// its lower-cased file name without extension. A missing dir yields an empty
// registry.
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{fonts: make(map[string]Font)}
	if dir == "" {
		return r, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  Fonts directory %s not found, registry is empty", dir)
			return r, nil
		}
		return nil, fmt.Errorf("failed to read fonts directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isFontFile(entry.Name()) {
			continue
		}
		if _, err := r.Register(filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("⚠️  Skipping font %s: %v", entry.Name(), err)
		}
	}
	log.Printf("🔤 Loaded %d fonts from %s", len(r.fonts), dir)
	return r, nil
}

// Register adds one font file and returns its entry.
func (r *Registry) Register(path string) (Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Font{}, fmt.Errorf("failed to read font: %w", err)
	}

	f := Font{ID: idFromPath(path), Path: path, DisplayName: displayName(data)}
	r.mu.Lock()
	r.fonts[f.ID] = f
	r.mu.Unlock()
	return f, nil
}

// Resolve finds a font by identifier. An identifier may also be a path to an
// existing font file. The default identifier falls back to the first known
// font when no file carries that name.
func (r *Registry) Resolve(id string) (Font, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	r.mu.RLock()
	f, ok := r.fonts[key]
	r.mu.RUnlock()

	if !ok && isFontFile(id) {
		if _, err := os.Stat(id); err == nil {
			return Font{ID: idFromPath(id), Path: id}, nil
		}
	}

	if !ok && key == config.DefaultFontID {
		if known := r.Known(); len(known) > 0 {
			r.mu.RLock()
			f, ok = r.fonts[known[0]], true
			r.mu.RUnlock()
		}
	}

	if !ok {
		return Font{}, &UnknownFontError{ID: id, Known: r.Known()}
	}
	if _, err := os.Stat(f.Path); err != nil {
		return Font{}, fmt.Errorf("%w %q: %v", types.ErrUnresolvableFont, id, err)
	}
	return f, nil
}

// Known returns the registered identifiers in sorted order.
func (r *Registry) Known() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.fonts))
	for id := range r.fonts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns every registered font ordered by identifier.
func (r *Registry) List() []Font {
	ids := r.Known()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Font, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.fonts[id])
	}
	return out
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// displayName reads the full font name from the name table. Unparseable
// files still register, just without a display name.
func displayName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}
