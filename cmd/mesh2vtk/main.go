// Command mesh2vtk converts a mesh tally into a visual toolkit export,
// filtering which energy and time groups to keep.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/meshtools/mesh2vtk/internal/config"
	"github.com/meshtools/mesh2vtk/mesh"
	"github.com/meshtools/mesh2vtk/target"
	"github.com/meshtools/mesh2vtk/vtk"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI application. Flags come before the positional
// arguments; filter flags are repeated or comma-separated.
func newApp() *cli.App {
	var verbosity int

	return &cli.App{
		Name:      "mesh2vtk",
		Usage:     "Convert mesh tallies to visual toolkit formats",
		ArgsUsage: "<file> <id>",
		Description: `Reads a single mesh tally from a snapshot file and prepares its
conversion to a visual toolkit format.

Examples:
  mesh2vtk -o my_output run.json 104
  mesh2vtk --total run.json 104
  mesh2vtk -e 0 -e 2 -e 6 -t 1,total run.json 104
  mesh2vtk --absolute -e 1.0 -e 20.0 -t 1e12,total run.json 104`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "total",
				Usage: "Only extract 'Total' energy/time groups",
			},
			&cli.BoolFlag{
				Name:  "no-error",
				Usage: "Exclude error mesh from output files",
			},
			&cli.Float64Flag{
				Name:    "scale",
				Aliases: []string{"s"},
				Usage:   "Multiply all results by a constant",
			},
			&cli.StringSliceFlag{
				Name:    "energy",
				Aliases: []string{"e"},
				Usage:   "Filter energy group(s) by index, or by MeV with --absolute",
			},
			&cli.StringSliceFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "Filter time group(s) by index, or by shakes with --absolute",
			},
			&cli.BoolFlag{
				Name:    "absolute",
				Aliases: []string{"a"},
				Usage:   "Interpret filter values as MeV/shakes",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Name of output file (excl. extension)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "VTK output format: xml, legacy-ascii, legacy-binary",
			},
			&cli.IntFlag{
				Name:  "resolution",
				Usage: "Cylindrical mesh angular resolution (>= 1)",
			},
			&cli.StringFlag{
				Name:  "endian",
				Usage: "Byte ordering: big-endian, little-endian",
			},
			&cli.StringFlag{
				Name:  "compressor",
				Usage: "Compression method for xml: lzma, lz4, zlib, none",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with default conversion options",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Count:   &verbosity,
				Usage:   "Verbose logging (-v, -vv)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress all log output (overrules --verbose)",
			},
		},
		Action: func(c *cli.Context) error {
			setupLogging(c.Bool("quiet"), verbosity)
			return run(c)
		},
	}
}

// setupLogging configures the global logger from the verbosity flags.
func setupLogging(quiet bool, verbosity int) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case quiet:
		logrus.SetOutput(io.Discard)
	case verbosity == 0:
		logrus.SetLevel(logrus.InfoLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func run(c *cli.Context) error {
	// Flag parsing stops at the first positional, so anything beyond
	// <file> <id> is a misplaced flag rather than input to ignore.
	if c.NArg() != 2 {
		return fmt.Errorf("expected exactly <file> <id> arguments, got %d (flags go before the positionals)", c.NArg())
	}
	file := c.Args().Get(0)
	id, err := strconv.ParseUint(c.Args().Get(1), 10, 32)
	if err != nil {
		return fmt.Errorf("tally id %q: %w", c.Args().Get(1), err)
	}

	defaults, err := loadDefaults(c)
	if err != nil {
		return err
	}

	logrus.Infof("Reading %s", file)
	m, err := mesh.Load(file, uint32(id))
	if err != nil {
		return err
	}
	logrus.Debugf("Mesh summary: %s", m)

	energy, time := target.Resolve(m, target.Spec{
		Energy:     c.StringSlice("energy"),
		Time:       c.StringSlice("time"),
		TotalsOnly: c.Bool("total"),
		Absolute:   c.Bool("absolute"),
	})
	logFallback(energy.Fallback)
	logFallback(time.Fallback)
	logrus.Tracef("energy idx %v", energy.Indices)
	logrus.Tracef("time idx %v", time.Indices)

	cfg, format, err := assemble(c, defaults, energy, time)
	if err != nil {
		return err
	}

	logrus.Info("Converting mesh to VTK object")
	out, err := vtk.NewPlanConverter(cfg).Convert(m)
	if err != nil {
		return err
	}

	base := c.String("output")
	if base == "" {
		base = defaults.Output
	}
	path := vtk.OutputPath(base, m.TallyID(), m.Geometry(), format)

	fmt.Fprintf(c.App.Writer, "%s: %d energy groups, %d time groups, %d voxels, %d data arrays\n",
		path, len(out.EnergyGroups), len(out.TimeGroups), out.Voxels, out.Arrays)
	return nil
}

// loadDefaults returns the defaults file values when --config is given,
// the built-in defaults otherwise.
func loadDefaults(c *cli.Context) (*config.Defaults, error) {
	if !c.IsSet("config") {
		return config.New(), nil
	}
	return config.Load(c.String("config"))
}

// assemble builds the conversion configuration from flags, falling back
// to the defaults file for anything not given on the command line.
func assemble(c *cli.Context, defaults *config.Defaults, energy, time target.Resolution) (vtk.Config, vtk.Format, error) {
	format, err := vtk.ParseFormat(stringOr(c, "format", defaults.Format))
	if err != nil {
		return vtk.Config{}, 0, err
	}
	endian, err := vtk.ParseByteOrder(stringOr(c, "endian", defaults.Endian))
	if err != nil {
		return vtk.Config{}, 0, err
	}
	compressor, err := vtk.ParseCompressor(stringOr(c, "compressor", defaults.Compressor))
	if err != nil {
		return vtk.Config{}, 0, err
	}

	opts := []vtk.Option{
		vtk.WithByteOrder(endian),
		vtk.WithCompressor(compressor),
	}
	if c.Bool("no-error") {
		opts = append(opts, vtk.WithoutErrors())
	}
	if resolution := intOr(c, "resolution", defaults.Resolution); resolution > 1 {
		opts = append(opts, vtk.WithResolution(resolution))
	}
	if scale := floatOr(c, "scale", defaults.Scale); scale != 1 {
		opts = append(opts, vtk.WithScale(scale))
	}

	return vtk.NewConfig(energy.Indices, time.Indices, opts...), format, nil
}

// logFallback surfaces a resolver fallback as operator warnings.
func logFallback(fb *target.Fallback) {
	if fb == nil {
		return
	}
	logrus.Warnf("Unable to resolve %s filter %v", fb.Axis, fb.Tokens)
	logrus.Warn("  - falling back to all groups")
}

func stringOr(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

func intOr(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return fallback
}

func floatOr(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) {
		return c.Float64(name)
	}
	return fallback
}
