package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/blazek2d/convert"
)

// ScalarCmd writes x, y and one flow variable as a three column Tecplot file
var ScalarCmd = &cobra.Command{
	Use:   "scalar",
	Short: "Combine a Blazek grid with one flow variable in a Tecplot file",
	Long: `
Writes the grid coordinates and one variable of a flow field in scientific
notation to a Tecplot file named after the flow file.

blazek2d scalar -G channel.grd -F channel.v2d -V pressure`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			c                            *convert.Converter
			gridFile, flowFile, variable string
		)
		if gridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			return
		}
		if flowFile, err = cmd.Flags().GetString("file"); err != nil {
			return
		}
		if variable, err = cmd.Flags().GetString("variable"); err != nil {
			return
		}
		if len(gridFile) == 0 || len(flowFile) == 0 || len(variable) == 0 {
			return fmt.Errorf("must supply a grid file (-G), a flow file (-F) and a variable (-V)")
		}
		if c, err = newConverter(cmd); err != nil {
			return
		}
		if err = c.ConvertScalar(gridFile, flowFile, variable); err != nil {
			return
		}
		plotGrid(c)
		return
	},
}

func init() {
	rootCmd.AddCommand(ScalarCmd)
	ScalarCmd.Flags().StringP("gridFile", "G", "", "Blazek grid file (.grd)")
	ScalarCmd.Flags().StringP("file", "F", "", "Blazek flow field file (.v2d)")
	ScalarCmd.Flags().StringP("variable", "V", "", "name of the flow variable to write")
}
