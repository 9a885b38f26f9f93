package fieldviz

import "gonum.org/v1/plot/vg"

const (
	MethodNearest GridMethod = "nearest"
	MethodMean    GridMethod = "mean"

	UNIVERSAL_SRID = 4326 // 经纬度坐标系
	MAP_SRID       = 8857 // WGS 84 / Equal Earth Greenwich

	SHP_DRIVER_NAME = "ESRI Shapefile"

	DELTA_DIVISOR  = 200 // 自动网格间距 = 最大跨度 / DELTA_DIVISOR
	CONTOUR_LEVELS = 10
	PALETTE_COLORS = 255

	FIG_DPI    = 200
	FIG_WIDTH  = 8 * vg.Inch
	FIG_HEIGHT = 6 * vg.Inch
	BAR_HEIGHT = 0.8 * vg.Inch

	FILE_EXT_PDF = ".pdf"
	FILE_EXT_PNG = ".png"

	LAYER_TITLE_TEMPLATE    = "Radius %d km"
	SPECTRUM_TITLE          = "Spherical Harmonic Power Spectrum"
	SPECTRUM_TITLE_TEMPLATE = SPECTRUM_TITLE + "\nfor %s field"
	SPECTRUM_BAR_LABEL      = "ln(Power)"
	SPECTRUM_X_LABEL        = "L"
	SPECTRUM_Y_LABEL        = "Depth (km)"

	POWERS_PDF_TEMPLATE = "powers_%s" + FILE_EXT_PDF
	TMP_LAYER_PNG       = "layer_%s" + FILE_EXT_PNG

	ErrBadSampleRowTemplate = `sample table %s row %d is malformed`
	ErrMissingVarTemplate   = `netcdf variable [%s] is missing or not numeric`
)

// 全球范围
func WorldExtent() Extent {
	return Extent{-180, 180, -90, 90}
}
