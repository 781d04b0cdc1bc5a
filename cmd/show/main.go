// show renders a JSON (or YAML) document from stdin as richly formatted
// terminal output: tables, trees, panels and bars, chosen by the shape of
// the data.
//
// Usage:
//
//	gh pr list --json ... | show
//	curl -s https://api.example.com/stats | show
//	show -parse < doc.json
//
// An envelope {"title": ..., "values": ...} routes to a specialized view
// (Album, Pull Requests, Calendar, Tasks, Hue lights); anything else goes
// through the generic renderer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dkoosis/show/internal/detect"
	"github.com/dkoosis/show/internal/record"
	"github.com/dkoosis/show/pkg/renderable"
	"github.com/dkoosis/show/pkg/value"
	"github.com/dkoosis/show/pkg/views"
)

// exitInternal signals a rendering failure, as opposed to bad input (1)
// or bad usage (2).
const exitInternal = 70

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	parseFlag := fs.Bool("parse", false, "print the parsed document as indented JSON instead of rendering")
	recordFlag := fs.Bool("record", false, "also save an SVG snapshot of the output to ./"+record.DefaultPath)
	themeFlag := fs.String("theme", "default", "Theme: default, mono")
	widthFlag := fs.Int("width", 0, "override detected terminal width")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "show: reading stdin: %v\n", err)
		return 1
	}

	alert := errorStyle(stdout)
	format := detect.Sniff(input)
	if format == detect.Empty {
		fmt.Fprintln(stderr, alert.Render("show: no data"))
		return 1
	}

	doc, err := decode(format, input)
	if err != nil {
		fmt.Fprintln(stderr, alert.Render("show: broken "+formatName(format)+": "+err.Error()))
		return 1
	}

	if *parseFlag {
		out, err := value.EncodeJSON(doc)
		if err != nil {
			fmt.Fprintf(stderr, "show: encoding document: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	theme := resolveTheme(*themeFlag, stdout)
	width := *widthFlag
	if width <= 0 {
		width = termWidth(stdout)
	}

	out, rerr := renderDoc(doc, views.Context{Width: width, Theme: theme})
	if rerr != nil {
		// dump the offending input with the failure so the data that broke
		// the renderer is preserved for debugging
		fmt.Fprintf(stderr, "show: internal rendering error\n\ninput:\n%s\n\n%v\n", input, rerr)
		return exitInternal
	}

	fmt.Fprintln(stdout, out)

	if *recordFlag {
		if err := record.WriteSVG(record.DefaultPath, out); err != nil {
			fmt.Fprintf(stderr, "show: writing %s: %v\n", record.DefaultPath, err)
			return 1
		}
	}
	return 0
}

// renderDoc runs one render pass, converting panics into errors carrying
// the stack. Formatter misses degrade silently; a panic means a real bug
// and must surface with its trace.
func renderDoc(doc value.Value, ctx views.Context) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return views.Render(doc, ctx), nil
}

func decode(format detect.Format, input []byte) (value.Value, error) {
	if format == detect.YAML {
		return value.DecodeYAML(input)
	}
	return value.DecodeJSON(input)
}

func formatName(format detect.Format) string {
	if format == detect.YAML {
		return "YAML"
	}
	return "JSON"
}

// resolveTheme picks the theme: NO_COLOR and piped stdout force mono.
func resolveTheme(name string, w io.Writer) renderable.Theme {
	if termenv.EnvNoColor() || !isTTYWriter(w) {
		return renderable.MonoTheme()
	}
	return renderable.ThemeByName(name)
}

// errorStyle returns bold red when stdout is a terminal, plain otherwise.
func errorStyle(w io.Writer) lipgloss.Style {
	if isTTYWriter(w) && !termenv.EnvNoColor() {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	}
	return lipgloss.NewStyle()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
