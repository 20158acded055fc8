package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/blazek2d/convert"
)

// fileCommand builds a subcommand running one conversion on the -F file.
func fileCommand(use, short string, action convert.Action) (command *cobra.Command) {
	command = &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				c        *convert.Converter
				fileName string
			)
			if fileName, err = cmd.Flags().GetString("file"); err != nil {
				return
			}
			if len(fileName) == 0 {
				return fmt.Errorf("must supply an input file (-F, --file)")
			}
			if c, err = newConverter(cmd); err != nil {
				return
			}
			if err = c.Run(action, fileName); err != nil {
				return
			}
			plotGrid(c)
			return
		},
	}
	command.Flags().StringP("file", "F", "", "file to convert")
	return
}

var (
	GridCmd = fileCommand("grid",
		"Convert a Blazek grid (.grd) to Tecplot (.plt) and PLOT3D (.X)", convert.GridToPlot3D)
	FlowCmd = fileCommand("flow",
		"Convert a Blazek flow field (.v2d) to Tecplot (.plt)", convert.FlowToTecplot)
	Plot3DCmd = fileCommand("plot3d",
		"Convert a single block 2D PLOT3D grid (.X) to a Blazek grid (.grd)", convert.Plot3DToGrid)
)

func init() {
	rootCmd.AddCommand(GridCmd, FlowCmd, Plot3DCmd)
}
