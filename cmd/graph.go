package cmd

import (
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/blazek2d/convert"
	"github.com/notargets/blazek2d/graphics"
)

// plotGrid shows the last grid converted when --graph is on. It does not return
// while the window is open.
func plotGrid(c *convert.Converter) {
	if !c.Params.Graph || c.Grid == nil {
		return
	}
	graphics.PlotGrid(c.Grid, utils2.RED)
}
