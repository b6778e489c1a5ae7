// Package icon provides the images bundled with alertbar.
package icon

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// bundled contains all icon glyph files.
//
//go:embed icons/*.txt
var bundled embed.FS

// Bundled icon names.
const (
	NameExclamation = "exclamation"
	NameInfo        = "info"
	NameCaution     = "caution"
	NameCheck       = "check"
)

// ErrNotFound is returned when no bundled icon has the requested name.
var ErrNotFound = errors.New("icon not found")

// Icon is an image that can be drawn at the leading edge of a bar.
type Icon struct {
	Name  string
	Glyph string
}

// IsZero reports whether the icon is unset.
func (i Icon) IsZero() bool {
	return i.Name == "" && i.Glyph == ""
}

// Load returns the bundled icon with the given name.
func Load(name string) (Icon, error) {
	data, err := bundled.ReadFile("icons/" + name + ".txt")
	if err != nil {
		return Icon{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Icon{Name: name, Glyph: strings.TrimSpace(string(data))}, nil
}

// MustLoad is like Load but panics when the icon is missing. A missing
// bundled icon means the binary was built without its assets.
func MustLoad(name string) Icon {
	i, err := Load(name)
	if err != nil {
		panic("alertbar: bundled " + err.Error())
	}
	return i
}

// Names returns the names of all bundled icons, sorted.
func Names() []string {
	var names []string

	entries, err := fs.ReadDir(bundled, "icons")
	if err != nil {
		return names
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names
}

// Exists reports whether a bundled icon with the given name exists.
func Exists(name string) bool {
	_, err := Load(name)
	return err == nil
}

// The bundled set, resolved once at startup.
var (
	Exclamation = MustLoad(NameExclamation)
	Info        = MustLoad(NameInfo)
	Caution     = MustLoad(NameCaution)
	Check       = MustLoad(NameCheck)
)
