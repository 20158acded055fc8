package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/blazek2d/utils"
)

// Parameters obtained from the YAML input file
type ConvertParameters struct {
	Title        string   `yaml:"Title"`
	GridLabels   []string `yaml:"GridLabels"`
	WriteTecplot bool     `yaml:"WriteTecplot"`
	WritePlot3D  bool     `yaml:"WritePlot3D"`
	ExactFloats  bool     `yaml:"ExactFloats"`
	Scientific   bool     `yaml:"Scientific"` // Coordinate Tecplot output in scientific notation
	Graph        bool     `yaml:"Graph"`
}

func NewConvertParameters() *ConvertParameters {
	return &ConvertParameters{
		Title:        "contour",
		GridLabels:   []string{"x", "y"},
		WriteTecplot: true,
		WritePlot3D:  true,
	}
}

// Parse overlays the YAML document on the receiver, unset keys keep their value.
func (cp *ConvertParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, cp); err != nil {
		return
	}
	if len(cp.GridLabels) != 0 && len(cp.GridLabels) != 2 {
		err = fmt.Errorf("GridLabels needs 2 entries, found %d: %v", len(cp.GridLabels), cp.GridLabels)
	}
	return
}

func (cp *ConvertParameters) ReadFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	return cp.Parse(data)
}

// PlainFormat is used for the Blazek, PLOT3D and multi variable Tecplot files.
func (cp *ConvertParameters) PlainFormat() utils.FloatFormat {
	if cp.ExactFloats {
		return utils.ExactFormat
	}
	return utils.LegacyFormat
}

// ScientificFormat is used for the coordinate Tecplot files.
func (cp *ConvertParameters) ScientificFormat() utils.FloatFormat {
	if cp.ExactFloats {
		return utils.ScientificFormat.Exact()
	}
	return utils.ScientificFormat
}

func (cp *ConvertParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", cp.Title)
	fmt.Fprintf(w, "%v\t\t= Grid Labels\n", cp.GridLabels)
	fmt.Fprintf(w, "[%v]\t\t= Write Tecplot\n", cp.WriteTecplot)
	fmt.Fprintf(w, "[%v]\t\t= Write PLOT3D\n", cp.WritePlot3D)
	fmt.Fprintf(w, "[%v]\t\t= Exact Floats\n", cp.ExactFloats)
	fmt.Fprintf(w, "[%v]\t\t= Scientific\n", cp.Scientific)
	fmt.Fprintf(w, "[%v]\t\t= Graph\n", cp.Graph)
}
