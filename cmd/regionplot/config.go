package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// Config represents the command configuration.
type Config struct {
	Vertices []r2.Point
	Probes   []r2.Point

	Rotate    float64
	Translate r2.Point
	Tolerance float64

	Output string

	LoggingLevel string
}

// Read config from command-line.
// It calls os.Exit if the config is incorrect.
func Read() Config {
	config := Config{}
	var vertices, probes, translate string

	flag.StringVar(&vertices, "vertices", "0,0 1,0 1,1 0,1", "polygon vertices, counter-clockwise, as \"x,y x,y ...\"")
	flag.StringVar(&probes, "probe", "", "points to classify, as \"x,y x,y ...\"")
	flag.Float64Var(&config.Rotate, "rotate", 0, "rotation around the origin, in degrees")
	flag.StringVar(&translate, "translate", "0,0", "translation applied after the rotation, as \"dx,dy\"")
	flag.Float64Var(&config.Tolerance, "tolerance", partitioning.DefaultTolerance, "geometric tolerance")
	flag.StringVar(&config.Output, "output", "", "plot file (png, svg, pdf), no plot when empty")
	flag.StringVar(&config.LoggingLevel, "logging-level", "info", "logging level, one of: "+availableLoggingLevelsString)
	flag.Parse()

	config.LoggingLevel = strings.ToLower(config.LoggingLevel)

	invalidConfig := false
	var err error
	if config.Vertices, err = parsePoints(vertices); err != nil || len(config.Vertices) < 3 {
		fmt.Fprintf(os.Stderr, "Invalid vertices: \"%s\"\n", vertices)
		invalidConfig = true
	}
	if config.Probes, err = parsePoints(probes); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid probe: \"%s\"\n", probes)
		invalidConfig = true
	}
	if config.Translate, err = parsePoint(translate); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid translate: \"%s\"\n", translate)
		invalidConfig = true
	}
	if config.Tolerance < 0 {
		fmt.Fprintf(os.Stderr, "Invalid tolerance: %g\n", config.Tolerance)
		invalidConfig = true
	}
	if !validateLoggingLevel(config.LoggingLevel) {
		fmt.Fprintf(os.Stderr, "Invalid loggingLevel: \"%s\"\n", config.LoggingLevel)
		invalidConfig = true
	}

	if invalidConfig {
		fmt.Fprintf(os.Stderr, "\n")
		flag.Usage()
		os.Exit(1)
	}

	return config
}

func parsePoints(s string) ([]r2.Point, error) {
	var points []r2.Point
	for _, field := range strings.Fields(s) {
		p, err := parsePoint(field)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}

func parsePoint(s string) (r2.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Point{}, fmt.Errorf("missing comma in %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Point{}, err
	}

	return r2.Point{X: x, Y: y}, nil
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
