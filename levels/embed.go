package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.tengo
var CurvesFS embed.FS

// LoadCurveSource reads a curve script. A file on disk wins over the embedded copy.
func LoadCurveSource(name string) ([]byte, error) {
	if name == "" {
		name = DefaultCurveScript
	}
	if data, err := os.ReadFile(filepath.Join("levels", filepath.Base(name))); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(CurvesFS, filepath.Base(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read curve %s: %w", name, err)
	}
	return data, nil
}
