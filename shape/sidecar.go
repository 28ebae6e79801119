package shape

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// Sidecars lists extensions of files making single shapefile.
var Sidecars = []string{".shp", ".shx", ".dbf", ".prj", ".cpg"}

// sidecar returns path of related file with requested extension.
func sidecar(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Exists reports whether main file of the shapefile is present.
func Exists(path string) bool {
	_, err := os.Stat(sidecar(path, ".shp"))
	return err == nil
}

// RemoveRelated deletes shapefile with all its sidecars. Callback is invoked
// for every file before removal, absent files are skipped.
func RemoveRelated(path string, removing func(name string)) error {
	var err error
	for _, ext := range Sidecars {
		name := sidecar(path, ext)
		if _, er := os.Stat(name); errors.Is(er, fs.ErrNotExist) {
			continue
		}
		if removing != nil {
			removing(name)
		}
		if er := os.Remove(name); er != nil {
			err = multierr.Append(err, er)
		}
	}
	return err
}
