package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"bdotmerge/common"
)

// Discover returns shapefiles in dir selected for the geometry class. Name
// has to end with class pattern followed by ".shp", or have one of exclude
// markers trailing the pattern (e.g. "Z_L_KU.shp"). Unless all is set, names
// containing any of exclude substrings are dropped. Result is ordered
// naturally by file name.
func Discover(dir string, class common.GeometryClass, exclude []string, all bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !matches(name, class.Pattern(), exclude) {
			continue
		}
		if !all && excluded(name, exclude) {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// matches reports whether name is "*<pattern>.shp" or "*<pattern><marker>*.shp"
// where nothing after the marker starts another "_" segment.
func matches(name, pattern string, markers []string) bool {
	base, ok := strings.CutSuffix(name, ".shp")
	if !ok {
		return false
	}
	if strings.HasSuffix(base, pattern) {
		return true
	}
	for _, m := range markers {
		i := strings.LastIndex(base, pattern+m)
		if i >= 0 && !strings.Contains(base[i+len(pattern)+len(m):], "_") {
			return true
		}
	}
	return false
}

func excluded(name string, exclude []string) bool {
	for _, s := range exclude {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
