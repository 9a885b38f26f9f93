package fieldviz

import "errors"

var (
	ErrExtentSize            = errors.New("extent must contain four values")
	ErrExtentLonOrder        = errors.New("maximum longitude must be more than minimum")
	ErrExtentLatOrder        = errors.New("maximum latitude must be more than minimum")
	ErrNonPositiveDelta      = errors.New("delta must be more than 0")
	ErrUnknownMethod         = errors.New("unsupported grid method")
	ErrSampleMismatch        = errors.New("lon, lat and values must have equal length")
	ErrNoSamples             = errors.New("input samples are empty")
	ErrSpectrumRange         = errors.New("spectrum slice out of range")
	ErrProjectionUnavailable = errors.New("map projection unavailable")
	ErrCoastlineOpen         = errors.New("coastline shp open err")
	ErrInvalidSampleTable    = errors.New("invalid sample table")
	ErrInvalidNetCDF         = errors.New("invalid netcdf file")
)
