package variant

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// configDir is the directory, relative to the XDG config directories, that
// holds user definitions.
var configDir = filepath.Join("board-engine", "variants")

// Find looks for <name>.yaml in the user's XDG config directories and falls
// back to the built-in definition of the same name. Names must be plain file
// names: separators and ".." are rejected.
func Find(name string) (*Definition, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
	}
	if path, err := xdg.SearchConfigFile(filepath.Join(configDir, name+".yaml")); err == nil {
		return Load(path)
	}
	return Builtin(name)
}

func validName(name string) bool {
	return name != "" && name != "." &&
		!strings.Contains(name, "..") &&
		!strings.ContainsAny(name, `/\`) &&
		filepath.Base(name) == name
}
