package vtk

import (
	"github.com/sirupsen/logrus"
)

// Config is the fully-resolved parameter bundle handed to a Converter.
// It is built once by NewConfig and never mutated afterwards.
type Config struct {
	IncludeErrors bool
	ByteOrder     ByteOrder
	Compressor    Compressor
	Resolution    int
	Scale         float64
	EnergyGroups  []int
	TimeGroups    []int
}

// Option configures conversion parameters.
type Option func(*assembler)

type assembler struct {
	cfg    Config
	logger logrus.FieldLogger
}

// NewConfig composes the resolved group index sets with the remaining
// visualization options. Defaults: errors included, big endian, LZMA
// compression, resolution 1, scale 1. Non-default resolution, error
// exclusion and scaling are logged for operator visibility; applying the
// scale factor is the converter's job.
func NewConfig(energyGroups, timeGroups []int, opts ...Option) Config {
	a := &assembler{
		cfg: Config{
			IncludeErrors: true,
			ByteOrder:     BigEndian,
			Compressor:    LZMA,
			Resolution:    1,
			Scale:         1,
		},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.cfg.EnergyGroups = append([]int(nil), energyGroups...)
	a.cfg.TimeGroups = append([]int(nil), timeGroups...)

	if a.cfg.Resolution > 1 {
		a.logger.Infof("Resolution set to %d", a.cfg.Resolution)
	}
	if !a.cfg.IncludeErrors {
		a.logger.Info("Excluding error mesh from output")
	}
	if a.cfg.Scale != 1 {
		a.logger.Infof("Scale factor %.5e recorded for converter", a.cfg.Scale)
	}
	return a.cfg
}

// WithoutErrors excludes the error mesh from the output to reduce size.
func WithoutErrors() Option {
	return func(a *assembler) {
		a.cfg.IncludeErrors = false
	}
}

// WithByteOrder sets the byte ordering of binary output sections.
func WithByteOrder(o ByteOrder) Option {
	return func(a *assembler) {
		a.cfg.ByteOrder = o
	}
}

// WithCompressor sets the compression method for XML output.
func WithCompressor(c Compressor) Option {
	return func(a *assembler) {
		a.cfg.Compressor = c
	}
}

// WithResolution sets the angular resolution for cylindrical meshes.
// Values below 1 are ignored.
func WithResolution(n int) Option {
	return func(a *assembler) {
		if n >= 1 {
			a.cfg.Resolution = n
		}
	}
}

// WithScale sets a uniform scale factor applied to every result.
func WithScale(f float64) Option {
	return func(a *assembler) {
		a.cfg.Scale = f
	}
}

// WithLogger routes the assembler's informational notices to the given
// logger instead of the standard one.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *assembler) {
		a.logger = l
	}
}
