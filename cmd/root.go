/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/blazek2d/InputParameters"
	"github.com/notargets/blazek2d/convert"
	"github.com/notargets/blazek2d/writefiles"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd runs the interactive menus when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "blazek2d",
	Short: "Pre and post processing for Blazek's structured 2D Euler code",
	Long: `
Converts the files of Blazek's structured 2D Euler code for visualization.

Without a subcommand the program asks on the terminal which conversion to run:
  - Blazek grid (.grd) to Tecplot (.plt) and PLOT3D (.X)
  - PLOT3D grid (.X) to Blazek grid (.grd)
  - Blazek flow field (.v2d) to Tecplot (.plt)

blazek2d
blazek2d grid -F channel.grd`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		profiler, err = startProfile(viper.GetString("profile"))
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var c *convert.Converter
		if c, err = newConverter(cmd); err != nil {
			return
		}
		if err = c.RunInteractive(os.Stdin); err != nil {
			return
		}
		plotGrid(c)
		return
	},
}

// Execute adds all child commands to the root command and runs it. Errors are
// reported on stderr with a non zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err.Error())
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.blazek2d.yaml)")
	pf.StringP("inputParameters", "I", "", "YAML file with conversion parameters (Title, GridLabels, WriteTecplot, WritePlot3D, ExactFloats, Scientific, Graph)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.Bool("exact", false, "write shortest round trip numbers instead of 6 significant digits")
	pf.Bool("scientific", false, "write grid Tecplot files as x y columns in scientific notation")
	pf.String("title", writefiles.DefaultTitle, "Tecplot TITLE")
	pf.BoolP("graph", "g", false, "display the grid after converting it")
	pf.String("profile", "", "write a cpu or mem profile to the current directory")
	for _, key := range []string{"verbose", "exact", "scientific", "title", "graph", "profile"} {
		if err := viper.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.WithError(err).Warn("no home directory, skipping config file")
		} else {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".blazek2d")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("BLAZEK2D")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func startProfile(kind string) (p interface{ Stop() }, err error) {
	switch kind {
	case "":
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		err = fmt.Errorf("unknown profile [%s], use cpu or mem", kind)
	}
	return
}

// convertParameters starts from the viper settings, the -I file overrides them.
func convertParameters(v *viper.Viper, inputFile string) (cp *InputParameters.ConvertParameters, err error) {
	cp = InputParameters.NewConvertParameters()
	if title := v.GetString("title"); len(title) != 0 {
		cp.Title = title
	}
	cp.ExactFloats = v.GetBool("exact")
	cp.Scientific = v.GetBool("scientific")
	cp.Graph = v.GetBool("graph")
	if len(inputFile) != 0 {
		if err = cp.ReadFile(inputFile); err != nil {
			return
		}
	}
	return
}

func newConverter(cmd *cobra.Command) (c *convert.Converter, err error) {
	var (
		cp        *InputParameters.ConvertParameters
		inputFile string
	)
	if inputFile, err = cmd.Flags().GetString("inputParameters"); err != nil {
		return
	}
	if cp, err = convertParameters(viper.GetViper(), inputFile); err != nil {
		return
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		cp.Print(os.Stderr)
	}
	c = convert.NewConverter(cp, os.Stdout)
	return
}
