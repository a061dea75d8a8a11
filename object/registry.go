package object

import (
	"fmt"

	"github.com/nekotui/neko/terminal"
)

// NotFoundError reports an operation against an unregistered key
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: %q", e.Key)
}

type entry struct {
	drawable Drawable
	pos      Point
}

// Registry maps unique string keys to positioned drawables. Adding an
// existing key overwrites its entry (last write wins). Not safe for
// concurrent use; the registry is owned by the host's draw loop.
type Registry struct {
	objects map[string]entry
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]entry),
	}
}

// Add inserts or replaces the entry for key
func (g *Registry) Add(key string, d Drawable, p Point) {
	g.objects[key] = entry{drawable: d, pos: p}
}

// Draw renders the object for key at its stored position onto s.
// A missing key yields a NotFoundError and no surface writes.
func (g *Registry) Draw(key string, s terminal.Surface) error {
	e, ok := g.objects[key]
	if !ok {
		return &NotFoundError{Key: key}
	}
	e.drawable.Render(s, e.pos)
	return nil
}

// DrawAt renders the object for key at p, ignoring its stored position
func (g *Registry) DrawAt(key string, p Point, s terminal.Surface) error {
	e, ok := g.objects[key]
	if !ok {
		return &NotFoundError{Key: key}
	}
	e.drawable.Render(s, p)
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (g *Registry) Remove(key string) {
	delete(g.objects, key)
}

// Move updates the stored position for key
func (g *Registry) Move(key string, p Point) error {
	e, ok := g.objects[key]
	if !ok {
		return &NotFoundError{Key: key}
	}
	e.pos = p
	g.objects[key] = e
	return nil
}

// Len returns the number of registered objects
func (g *Registry) Len() int {
	return len(g.objects)
}
