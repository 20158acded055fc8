package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	TecplotExt    = ".plt"
	Plot3DExt     = ".X"
	BlazekGridExt = ".grd"

	// Grids converted back from PLOT3D get this suffix so the .grd the
	// PLOT3D file came from is not overwritten.
	ReverseGridSuffix = "_blazek"
)

// OutputBaseName drops the last four characters (a dot and a three letter
// extension) of an input file name. Shorter names are kept as they are.
func OutputBaseName(fileName string) string {
	if len(fileName) < 4 {
		return fileName
	}
	return fileName[:len(fileName)-4]
}

// TrimExtension drops whatever extension fileName has.
func TrimExtension(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// writeFile creates (or truncates) fileName and streams encode into it.
// Callers validate their inputs first so no file is left behind by a bad shape.
func writeFile(fileName string, encode func(w io.Writer) error) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create file %s: %w", fileName, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(file)
	if err = encode(w); err != nil {
		return
	}
	if err = w.Flush(); err != nil {
		return
	}
	log.WithField("file", fileName).Info("wrote output")
	return
}
