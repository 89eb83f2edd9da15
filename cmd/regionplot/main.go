// Command regionplot builds a polygon region, optionally moves it, reports
// its measures and plots its boundary.
package main

import (
	"math"
	"os"

	"github.com/golang/geo/r2"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/bspgeom/euclidean2d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

func main() {
	config := Read()
	initLogger(config)
	log.Debugf("Config: %#v", config)

	region, err := euclidean2d.NewPolygon(config.Tolerance, config.Vertices...)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	if config.Rotate != 0 || config.Translate != (r2.Point{}) {
		t := euclidean2d.NewRotation(r2.Point{}, config.Rotate*math.Pi/180).
			Then(euclidean2d.NewTranslation(config.Translate.X, config.Translate.Y))
		if region, err = region.Transform(t); err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
	}

	segments := region.BoundarySegments()
	log.WithFields(log.Fields{
		"area":       region.Size(),
		"barycenter": region.Barycenter(),
		"perimeter":  region.BoundarySize(),
		"segments":   len(segments),
	}).Info("region built")

	for _, p := range config.Probes {
		log.WithField("point", p).Infof("location: %v", region.CheckPoint(p))
	}

	if config.Output == "" {
		return
	}
	if err := plotBoundary(segments, region.CheckPoint, config); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Infof("plot written to %s", config.Output)
}

func initLogger(config Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(config.LoggingLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(level)
	partitioning.SetLogger(log.StandardLogger())
}

func plotBoundary(segments []euclidean2d.Segment, check func(r2.Point) partitioning.Location, config Config) error {
	p := plot.New()
	p.Title.Text = "region boundary"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, s := range segments {
		line, err := plotter.NewLine(plotter.XYs{{X: s.Start.X, Y: s.Start.Y}, {X: s.End.X, Y: s.End.Y}})
		if err != nil {
			return err
		}
		p.Add(line)
	}

	if len(config.Probes) > 0 {
		inside := lo.Filter(config.Probes, func(pt r2.Point, _ int) bool {
			return check(pt) != partitioning.Outside
		})
		xys := lo.Map(inside, func(pt r2.Point, _ int) plotter.XY { return plotter.XY{X: pt.X, Y: pt.Y} })
		if len(xys) > 0 {
			scatter, err := plotter.NewScatter(plotter.XYs(xys))
			if err != nil {
				return err
			}
			p.Add(scatter)
		}
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, config.Output)
}
