// Command seaway answers projection and straight-line water-path queries
// against a configured world.
//
//	seaway -config configs/seaway.yaml -from -69.95,40.02 -to -69.82,40.15
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/orcasim/seaway/config"
	"github.com/orcasim/seaway/geodesy"
	"github.com/orcasim/seaway/linetrace"
	"github.com/orcasim/seaway/logging"
	"github.com/orcasim/seaway/navigator"
)

var (
	configFlag  = flag.String("config", "", "path to the world config (default: seaway.yaml in . or ./configs)")
	fromFlag    = flag.String("from", "", "first point as lon,lat")
	toFlag      = flag.String("to", "", "second point as lon,lat")
	metricsFlag = flag.Bool("metrics", false, "print query metrics in Prometheus text format on exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal("load config", err)
	}
	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fatal("logging", err)
	}

	extent, err := cfg.Extent()
	if err != nil {
		fatal("world extent", err)
	}
	mask, err := cfg.Mask()
	if err != nil {
		fatal("world mask", err)
	}

	reg := prometheus.NewRegistry()
	nav, err := navigator.New(extent, mask, navigator.WithRegisterer(reg), navigator.WithLogger(logger))
	if err != nil {
		fatal("navigator", err)
	}
	slog.Info("world ready",
		"columns", extent.Columns(), "rows", extent.Rows(),
		"km_per_cell", extent.KmPerCell,
		"water_cells", mask.WaterCount(), "water_bodies", len(mask.WaterBodies()))

	if *fromFlag != "" {
		if err := query(nav, *fromFlag, *toFlag); err != nil {
			fatal("query", err)
		}
	}

	if *metricsFlag {
		if err := dumpMetrics(reg); err != nil {
			fatal("metrics", err)
		}
	}
}

// fatal logs err through the default slog logger and exits with status 1.
func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

// query prints the cell of from and, when to is set, the distance and the
// straight water path between the two points.
func query(nav *navigator.Navigator, from, to string) error {
	a, err := parsePoint(from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	cell, err := nav.CellFor(a.Lon, a.Lat)
	if err != nil {
		fmt.Printf("%s: %v\n", a, err)
		return nil
	}
	fmt.Printf("%s: cell %s water=%t\n", a, cell, nav.Mask().IsWater(cell.X, cell.Y))
	if to == "" {
		return nil
	}

	b, err := parsePoint(to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}
	fmt.Printf("distance: %.3f km\n", nav.DistanceKm(a.Lon, a.Lat, b.Lon, b.Lat))

	path, err := nav.TraceGeo(a, b)
	var be *linetrace.BlockedError
	switch {
	case errors.As(err, &be):
		fmt.Printf("no water path: %s at %s\n", be.Reason, be.Cell)
	case errors.Is(err, geodesy.ErrOutOfBounds):
		fmt.Printf("no water path: %v\n", err)
	case err != nil:
		return err
	default:
		fmt.Printf("water path: %d cells %v\n", len(path), path)
	}
	return nil
}

// parsePoint reads "lon,lat".
func parsePoint(s string) (geodesy.GeoPoint, error) {
	lonStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return geodesy.GeoPoint{}, fmt.Errorf("want lon,lat, got %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geodesy.GeoPoint{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geodesy.GeoPoint{}, fmt.Errorf("latitude: %w", err)
	}
	return geodesy.GeoPoint{Lon: lon, Lat: lat}, nil
}

func dumpMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
