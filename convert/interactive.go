package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/notargets/blazek2d/types"
)

const (
	banner = `*****************************************************************************************
     Preprocessing and Postprocessing Programs for Blazek's Structured Euler Code
*****************************************************************************************
Preprocessing: 0, Postprocessing: 1, Other number: Quit
`
	preprocessMenu = `******************************Preprocessing***********************************************
To convert a Blazek ".grd" type mesh to plot3D ".x" type, press 0.
To convert a ".x" type mesh to Blazek type, press 1.
Other number: Quit
`
	postprocessMenu = `******************************Postprocessing***********************************************
Plot flow field data, press 0.
plot residual data, press 1.
plot surface data, press 2.
Other number: Quit
`
	pathPrompt = "Please enter the path of the file to be converted:"
)

// prompter reads whitespace separated tokens, a path can not contain spaces.
type prompter struct {
	scanner *bufio.Scanner
}

func newPrompter(in io.Reader) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &prompter{scanner: scanner}
}

func (p *prompter) token(what string) (token string, err error) {
	if !p.scanner.Scan() {
		err = p.scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("%w: reading %s: %v", types.ErrInputParse, what, err)
	}
	return p.scanner.Text(), nil
}

func (p *prompter) choice() (choice int, err error) {
	var token string
	if token, err = p.token("menu choice"); err != nil {
		return
	}
	if choice, err = strconv.Atoi(token); err != nil {
		err = fmt.Errorf("%w: menu choice [%s] is not a number", types.ErrInputParse, token)
	}
	return
}

// Menu outcomes that end the session without a conversion
type menuResult uint8

const (
	menuAction menuResult = iota
	menuQuit
	menuNone
)

// resolve walks the menus and returns the selected action and file.
func (c *Converter) resolve(p *prompter) (action Action, fileName string, result menuResult, err error) {
	var choice int
	fmt.Fprint(c.Out, banner)
	if choice, err = p.choice(); err != nil {
		return
	}
	switch choice {
	case 0:
		fmt.Fprint(c.Out, preprocessMenu)
		if choice, err = p.choice(); err != nil {
			return
		}
		switch choice {
		case 0:
			action = GridToPlot3D
		case 1:
			action = Plot3DToGrid
		default:
			result = menuQuit
			return
		}
	case 1:
		fmt.Fprint(c.Out, postprocessMenu)
		if choice, err = p.choice(); err != nil {
			return
		}
		switch choice {
		case 0:
			action = FlowToTecplot
		case 1:
			action = Residual
			return
		case 2:
			action = Surface
			return
		default:
			result = menuNone
			return
		}
	default:
		result = menuQuit
		return
	}
	fmt.Fprint(c.Out, pathPrompt)
	if fileName, err = p.token("file path"); err != nil {
		return
	}
	fmt.Fprint(c.Out, "\r")
	return
}

// RunInteractive asks for the conversion on in, runs it, and reports on c.Out.
// Choosing Quit is not an error.
func (c *Converter) RunInteractive(in io.Reader) (err error) {
	var (
		action   Action
		fileName string
		result   menuResult
	)
	if action, fileName, result, err = c.resolve(newPrompter(in)); err != nil {
		return
	}
	switch result {
	case menuQuit:
		fmt.Fprintln(c.Out, "Quit")
		return
	case menuAction:
		if err = c.Run(action, fileName); err != nil {
			return
		}
	}
	fmt.Fprintln(c.Out, "End!")
	return
}
