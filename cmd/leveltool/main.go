// leveltool inspects and converts stickfight level files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/Faultbox/stickfight/internal/level"
)

var errUsage = errors.New("bad usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	err := run(os.Args[1], os.Args[2:], os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		printUsage(os.Stderr)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(args, out)
	case "walls", "ls":
		return cmdWalls(args, out)
	case "convert":
		return cmdConvert(args, out)
	case "default":
		return cmdDefault(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `leveltool - stickfight level utility

Usage:
  leveltool <command> [options]

Commands:
  info <level>                  Show name, wall count, bounds and spawn
  walls <level>                 List every wall
  convert [-o out.yaml] <level> Convert a level (.yaml or .tmx) to YAML
  default [-o out.yaml]         Write the built-in arena as YAML

Examples:
  leveltool info levels/courtyard.tmx
  leveltool convert -o courtyard.yaml levels/courtyard.tmx`)
}

func load(path string) (*level.Level, error) {
	return level.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func cmdInfo(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	lvl, err := load(args[0])
	if err != nil {
		return err
	}

	lo, hi := lvl.Bounds()
	fmt.Fprintf(out, "Level:   %s\n", lvl.Name)
	fmt.Fprintf(out, "Walls:   %d\n", len(lvl.Boxes))
	fmt.Fprintf(out, "Bounds:  (%g, %g, %g) - (%g, %g, %g)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	if lvl.Spawn != nil {
		fmt.Fprintf(out, "Spawn:   (%g, %g, %g)\n", lvl.Spawn.X, lvl.Spawn.Y, lvl.Spawn.Z)
	} else {
		fmt.Fprintln(out, "Spawn:   default")
	}
	return nil
}

func cmdWalls(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	lvl, err := load(args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPOSITION\tSCALE")
	for i, b := range lvl.Boxes {
		fmt.Fprintf(tw, "%d\t%s\t(%g, %g, %g)\t(%g, %g, %g)\n", i, b.Name,
			b.Position.X, b.Position.Y, b.Position.Z,
			b.Scale.X, b.Scale.Y, b.Scale.Z)
	}
	return tw.Flush()
}

func cmdConvert(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	lvl, err := load(fs.Arg(0))
	if err != nil {
		return err
	}
	return writeLevel(lvl, *output, out)
}

func cmdDefault(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("default", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return writeLevel(level.Default(), *output, out)
}

func writeLevel(lvl *level.Level, path string, out io.Writer) error {
	if path == "" {
		return level.WriteYAML(out, lvl)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := level.WriteYAML(f, lvl); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d walls to %s\n", len(lvl.Boxes), path)
	return nil
}
