package convert

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/blazek2d/InputParameters"
	"github.com/notargets/blazek2d/readfiles"
	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/writefiles"
)

type Action uint8

const (
	GridToPlot3D Action = iota // Blazek .grd -> Tecplot .plt + PLOT3D .X
	Plot3DToGrid               // PLOT3D .X -> Blazek .grd
	FlowToTecplot              // Blazek .v2d -> Tecplot .plt
	Residual
	Surface
)

func (a Action) String() string {
	switch a {
	case GridToPlot3D:
		return "grid"
	case Plot3DToGrid:
		return "plot3d"
	case FlowToTecplot:
		return "flow"
	case Residual:
		return "residual"
	case Surface:
		return "surface"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Converter runs resolved actions. Progress messages go to Out, the grid
// read by the last grid conversion is kept in Grid.
type Converter struct {
	Params *InputParameters.ConvertParameters
	Out    io.Writer
	Grid   *types.Grid2D
}

func NewConverter(params *InputParameters.ConvertParameters, out io.Writer) *Converter {
	if params == nil {
		params = InputParameters.NewConvertParameters()
	}
	return &Converter{Params: params, Out: out}
}

func (c *Converter) Run(action Action, fileName string) (err error) {
	log.WithFields(log.Fields{"action": action, "file": fileName}).Debug("run")
	switch action {
	case GridToPlot3D:
		return c.ConvertGrid(fileName)
	case Plot3DToGrid:
		return c.ConvertPlot3D(fileName)
	case FlowToTecplot:
		return c.ConvertFlow(fileName)
	default:
		log.WithField("action", action).Warn("conversion not available")
	}
	return
}

// ConvertGrid writes the Blazek grid as Tecplot and PLOT3D files next to it.
func (c *Converter) ConvertGrid(fileName string) (err error) {
	var (
		grid *types.Grid2D
		base = writefiles.OutputBaseName(fileName)
		p    = c.Params
	)
	if grid, err = readfiles.ReadBlazekGrid(fileName); err != nil {
		return
	}
	c.Grid = grid
	if p.WriteTecplot {
		fmt.Fprintf(c.Out, "output tecplot format %s...\n", base)
		if p.Scientific {
			_, err = writefiles.WriteTecplotXY(base, p.Title, writefiles.VariablesList(p.GridLabels),
				p.ScientificFormat(), grid.X, grid.Y)
		} else {
			var ff *types.FlowField
			if ff, err = grid.FlowField(p.GridLabels...); err != nil {
				return
			}
			_, err = writefiles.WriteTecplot(base, p.Title, ff, p.PlainFormat())
		}
		if err != nil {
			return
		}
	}
	if p.WritePlot3D {
		fmt.Fprintf(c.Out, "output plot3d format %s...\n", base)
		if _, err = writefiles.WritePlot3D(base, grid, p.PlainFormat()); err != nil {
			return
		}
	}
	return
}

// ConvertPlot3D writes a single block PLOT3D grid as a Blazek grid named
// <base>_blazek.grd.
func (c *Converter) ConvertPlot3D(fileName string) (err error) {
	var (
		grid *types.Grid2D
		base = writefiles.TrimExtension(fileName) + writefiles.ReverseGridSuffix
	)
	if grid, err = readfiles.ReadPlot3D2D(fileName); err != nil {
		return
	}
	c.Grid = grid
	fmt.Fprintf(c.Out, "output blazek format %s...\n", base)
	_, err = writefiles.WriteBlazekGrid(base, grid, c.Params.PlainFormat())
	return
}

// ConvertFlow writes every variable of the Blazek flow field to a Tecplot file.
func (c *Converter) ConvertFlow(fileName string) (err error) {
	var (
		ff   *types.FlowField
		base = writefiles.OutputBaseName(fileName)
	)
	if ff, err = readfiles.ReadBlazekFlow(fileName); err != nil {
		return
	}
	fmt.Fprintf(c.Out, "output tecplot format %s...\n", base)
	_, err = writefiles.WriteTecplot(base, c.Params.Title, ff, c.Params.PlainFormat())
	return
}

// ConvertScalar writes the grid coordinates with one flow variable as a three
// column Tecplot file named after the flow file.
func (c *Converter) ConvertScalar(gridFile, flowFile, variable string) (err error) {
	var (
		grid *types.Grid2D
		ff   *types.FlowField
		v    types.LabeledVariable
		base = writefiles.OutputBaseName(flowFile)
		p    = c.Params
	)
	if grid, err = readfiles.ReadBlazekGrid(gridFile); err != nil {
		return
	}
	c.Grid = grid
	if ff, err = readfiles.ReadBlazekFlow(flowFile); err != nil {
		return
	}
	if v, err = ff.Variable(variable); err != nil {
		return
	}
	labels := append(append([]string{}, p.GridLabels...), v.Name)
	fmt.Fprintf(c.Out, "output tecplot format %s...\n", base)
	_, err = writefiles.WriteTecplotXY(base, p.Title, writefiles.VariablesList(labels),
		p.ScientificFormat(), grid.X, grid.Y, v.Layer)
	return
}
