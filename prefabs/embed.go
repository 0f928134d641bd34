package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a prefab file. prefabs/<name> on disk wins over the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	if filepath.IsAbs(name) {
		return os.ReadFile(name)
	}
	return PrefabsFS.ReadFile(clean)
}

// DiskPath is where a disk override of a prefab lives.
func DiskPath(name string) string {
	return filepath.Join("prefabs", filepath.FromSlash(cleanPrefabPath(name)))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
