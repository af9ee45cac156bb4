package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is the on-disk override directory. A file there shadows the embedded
// copy of the same name, so authors can tune prefabs without a rebuild.
var Dir = "prefabs"

// Load reads a prefab such as "enemy_grunt.yaml".
func Load(name string) ([]byte, error) {
	return read(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a curve script such as "swarm_growth.tengo".
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, cleanScriptPath(name))
}

func read(embedded embed.FS, clean string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return embedded.ReadFile(clean)
}

// List returns the embedded prefab names matching pattern, e.g.
// "enemy_*.yaml", sorted.
func List(pattern string) ([]string, error) {
	names, err := fs.Glob(PrefabsFS, pattern)
	if err != nil {
		return nil, fmt.Errorf("prefabs: list %s: %w", pattern, err)
	}
	sort.Strings(names)
	return names, nil
}

// WatchDirs are the directories a Watcher needs for Dir.
func WatchDirs() []string {
	return []string{Dir, filepath.Join(Dir, "scripts")}
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	s, _ = strings.CutPrefix(s, "prefabs/")
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	return path.Join("scripts", path.Base(filepath.ToSlash(p)))
}
