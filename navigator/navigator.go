package navigator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/orcasim/seaway/geodesy"
	"github.com/orcasim/seaway/linetrace"
	"github.com/orcasim/seaway/watermask"
)

// Sentinel errors for navigator construction.
var (
	// ErrNilExtent indicates New was called without an extent.
	ErrNilExtent = errors.New("navigator: extent is nil")
	// ErrNilMask indicates New was called without a mask.
	ErrNilMask = errors.New("navigator: mask is nil")
	// ErrMaskTooSmall indicates the mask does not cover every cell of the extent.
	ErrMaskTooSmall = errors.New("navigator: mask smaller than extent")
)

type options struct {
	reg    prometheus.Registerer
	logger *slog.Logger
}

// Option configures a Navigator.
type Option func(*options)

// WithRegisterer registers the navigator's metrics on reg instead of a
// private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// WithLogger sends debug diagnostics of failed queries to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Navigator answers projection and water-path queries for one world.
type Navigator struct {
	extent  *geodesy.GridExtent
	mask    *watermask.Mask
	logger  *slog.Logger
	metrics *metrics
}

// New binds extent and mask. The mask must cover extent.Columns() ×
// extent.Rows() cells; cells beyond the mask are land.
func New(extent *geodesy.GridExtent, mask *watermask.Mask, opts ...Option) (*Navigator, error) {
	if extent == nil {
		return nil, ErrNilExtent
	}
	if mask == nil {
		return nil, ErrNilMask
	}
	if mask.Width() < extent.Columns() || mask.Height() < extent.Rows() {
		return nil, fmt.Errorf("%w: mask %d×%d, extent %d×%d",
			ErrMaskTooSmall, mask.Width(), mask.Height(), extent.Columns(), extent.Rows())
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reg == nil {
		o.reg = prometheus.NewRegistry()
	}
	return &Navigator{
		extent:  extent,
		mask:    mask,
		logger:  o.logger,
		metrics: newMetrics(o.reg),
	}, nil
}

// Extent returns the bound grid extent.
func (n *Navigator) Extent() *geodesy.GridExtent { return n.extent }

// Mask returns the bound water mask.
func (n *Navigator) Mask() *watermask.Mask { return n.mask }

// Project maps (lon, lat) onto grid coordinates.
func (n *Navigator) Project(lon, lat float64) (geodesy.GridCoord, error) {
	p := geodesy.GeoPoint{Lon: lon, Lat: lat}
	c, err := n.extent.Project(p)
	n.metrics.project(err)
	if err != nil {
		n.debug("projection failed", "point", p, "err", err)
	}
	return c, err
}

// CellFor returns the cell containing (lon, lat).
func (n *Navigator) CellFor(lon, lat float64) (linetrace.Cell, error) {
	c, err := n.Project(lon, lat)
	if err != nil {
		return linetrace.Cell{}, err
	}
	x, y := c.Cell()
	return linetrace.Cell{X: x, Y: y}, nil
}

// Trace returns the cells crossed by the segment (x1,y1)→(x2,y2) in grid
// coordinates, or an error wrapping linetrace.ErrNoPath.
func (n *Navigator) Trace(x1, y1, x2, y2 float64) (linetrace.Path, error) {
	path, err := linetrace.Trace(x1, y1, x2, y2, n.mask.IsWater, n.traceOptions()...)
	n.metrics.trace(len(path), err)
	return path, err
}

// OnWater reports whether Trace would succeed. Endpoints in different water
// bodies are rejected without walking the segment.
func (n *Navigator) OnWater(x1, y1, x2, y2 float64) bool {
	sx, sy := geodesy.GridCoord{X: x1, Y: y1}.Cell()
	ex, ey := geodesy.GridCoord{X: x2, Y: y2}.Cell()
	ok := n.mask.SameBody(sx, sy, ex, ey) &&
		linetrace.OnWater(x1, y1, x2, y2, n.mask.IsWater, n.traceOptions()...)
	if ok {
		n.metrics.trace(0, nil)
	} else {
		n.metrics.trace(0, linetrace.ErrNoPath)
	}
	return ok
}

// TraceGeo projects both points and traces the segment between them.
// Projection errors are returned before any tracing.
func (n *Navigator) TraceGeo(from, to geodesy.GeoPoint) (linetrace.Path, error) {
	a, err := n.Project(from.Lon, from.Lat)
	if err != nil {
		return nil, fmt.Errorf("from %s: %w", from, err)
	}
	b, err := n.Project(to.Lon, to.Lat)
	if err != nil {
		return nil, fmt.Errorf("to %s: %w", to, err)
	}
	return n.Trace(a.X, a.Y, b.X, b.Y)
}

// DistanceKm returns the flat-Earth distance between two positions.
func (n *Navigator) DistanceKm(lon1, lat1, lon2, lat2 float64) float64 {
	return geodesy.DistanceKm(geodesy.GeoPoint{Lon: lon1, Lat: lat1}, geodesy.GeoPoint{Lon: lon2, Lat: lat2})
}

func (n *Navigator) traceOptions() []linetrace.Option {
	if n.logger == nil {
		return nil
	}
	return []linetrace.Option{linetrace.WithLogger(n.logger)}
}

func (n *Navigator) debug(msg string, args ...any) {
	if n.logger != nil {
		n.logger.Debug(msg, args...)
	}
}
