package fieldviz

import (
	"fmt"
	"math"

	"github.com/wgdzlh/fieldviz/log"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

const boundarySamples = 64 // 每条范围边投影采样点数

// 由散点构建网格并绘制Equal Earth投影地图，标题为层半径（km），
// 附水平色标，可选叠加海岸线。地图投影不可用时记录诊断并返回保留的错误。
func (g *VizToolbox) LayerGrid(lon, lat []float64, radius float64, values []float64, opt *LayerGridOptions) (fig *Figure, err error) {
	if opt == nil {
		opt = DefaultLayerGridOptions()
	}
	if e := g.ensureProjection(); e != nil {
		log.Error(g.logTag+"layer grid requires map projection", zap.Error(e))
		err = fmt.Errorf("%w: %w", ErrProjectionUnavailable, e)
		return
	}
	grid, err := BuildGrid(lon, lat, values, opt.Span, opt.Delta, opt.Method)
	if err != nil {
		return
	}
	pg := g.projectGrid(grid)
	vMin, vMax := nanSpan(grid.Data)
	cm := moreland.SmoothBlueRed()
	cm.SetMin(vMin)
	cm.SetMax(vMax)
	p := plot.New()
	h := plotter.NewHeatMap(pg, cm.Palette(PALETTE_COLORS))
	h.Min, h.Max = vMin, vMax
	p.Add(h)
	p.Title.Text = fmt.Sprintf(LAYER_TITLE_TEMPLATE, int(radius))
	p.X.Label.Text = opt.Label
	p.HideAxes()
	if !opt.NoCoastlines {
		if err = g.addCoastlines(p, grid.Span); err != nil {
			return
		}
	}
	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Label.Text = opt.Label
	fig = &Figure{Main: p, Bar: bar}
	log.Info(g.logTag+"layer grid plotted", zap.Float64("radius", radius),
		zap.Float64("delta", grid.Delta), zap.String("method", opt.Method))
	return
}

// 投影后的规则栅格，行0对应最大y
type mapGrid struct {
	data   *mat.Dense
	x0, y0 float64 // 左下角
	dx, dy float64
}

func (m *mapGrid) Dims() (c, r int) {
	r, c = m.data.Dims()
	return c, r
}

func (m *mapGrid) X(c int) float64 { return m.x0 + (float64(c)+0.5)*m.dx }

func (m *mapGrid) Y(r int) float64 { return m.y0 + (float64(r)+0.5)*m.dy }

func (m *mapGrid) Z(c, r int) float64 {
	rows, _ := m.data.Dims()
	return m.data.At(rows-1-r, c)
}

// 将经纬度网格重采样到Equal Earth平面：先正变换范围边界求投影包络，
// 再对每个输出像元中心逆变换取最近网格点值，范围外为NaN
func (g *VizToolbox) projectGrid(lg *LayerGrid) *mapGrid {
	bx, by := spanBoundary(lg.Span, boundarySamples)
	if !g.toMap.Transform(len(bx), bx, by, make([]float64, len(bx))) {
		log.Warn(g.logTag+"span boundary transform incomplete", zap.Any("span", lg.Span))
	}
	xMin, xMax := floats.Min(bx), floats.Max(bx)
	yMin, yMax := floats.Min(by), floats.Max(by)

	nLat, nLon := lg.Data.Dims()
	dx := (xMax - xMin) / float64(nLon)
	dy := (yMax - yMin) / float64(nLat)
	n := nLat * nLon
	xs := make([]float64, n)
	ys := make([]float64, n)
	for r := 0; r < nLat; r++ {
		for c := 0; c < nLon; c++ {
			xs[r*nLon+c] = xMin + (float64(c)+0.5)*dx
			ys[r*nLon+c] = yMax - (float64(r)+0.5)*dy
		}
	}
	if !g.toLonLat.Transform(n, xs, ys, make([]float64, n)) {
		log.Warn(g.logTag+"pixel center transform incomplete", zap.Int("points", n))
	}

	minLon, minLat := lg.Span[0], lg.Span[2]
	data := mat.NewDense(nLat, nLon, nil)
	for r := 0; r < nLat; r++ {
		for c := 0; c < nLon; c++ {
			gLon, gLat := xs[r*nLon+c], ys[r*nLon+c]
			ix := int(math.Floor((gLon - minLon) / lg.Delta))
			iy := int(math.Floor((gLat - minLat) / lg.Delta))
			if ix < 0 || ix >= nLon || iy < 0 || iy >= nLat {
				data.Set(r, c, math.NaN())
				continue
			}
			data.Set(r, c, lg.Data.At(nLat-1-iy, ix))
		}
	}
	return &mapGrid{data: data, x0: xMin, y0: yMin, dx: dx, dy: dy}
}

// 范围矩形边界的采样点（顺时针一圈），用于求投影包络
func spanBoundary(span Extent, perEdge int) (xs, ys []float64) {
	minLon, maxLon, minLat, maxLat := span[0], span[1], span[2], span[3]
	dLon := (maxLon - minLon) / float64(perEdge)
	dLat := (maxLat - minLat) / float64(perEdge)
	for i := 0; i <= perEdge; i++ {
		lon := minLon + float64(i)*dLon
		lat := minLat + float64(i)*dLat
		xs = append(xs, lon, lon, minLon, maxLon)
		ys = append(ys, minLat, maxLat, lat, lat)
	}
	return
}

// 叠加海岸线：裁剪到绘制范围后投影为折线
func (g *VizToolbox) addCoastlines(p *plot.Plot, span Extent) (err error) {
	if g.coastShp == "" {
		log.Warn(g.logTag + "coastline shp not set, skip coastlines")
		return
	}
	lines, err := g.coastlines()
	if err != nil {
		return
	}
	var ln *plotter.Line
	for _, line := range lines {
		for _, seg := range clipLine(line, span) {
			xs := append([]float64(nil), seg.lons...)
			ys := append([]float64(nil), seg.lats...)
			if !g.toMap.Transform(len(xs), xs, ys, make([]float64, len(xs))) {
				log.Warn(g.logTag+"coastline transform incomplete", zap.Int("points", len(xs)))
			}
			xys := make(plotter.XYs, len(xs))
			for i := range xs {
				xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
			}
			if ln, err = plotter.NewLine(xys); err != nil {
				return
			}
			p.Add(ln)
		}
	}
	return
}

// 丢弃范围外的点并在断点处拆分折线
func clipLine(line coastLine, span Extent) (segs []coastLine) {
	var cur coastLine
	for i := range line.lons {
		lon, lat := line.lons[i], line.lats[i]
		if lon < span[0] || lon > span[1] || lat < span[2] || lat > span[3] {
			if len(cur.lons) > 1 {
				segs = append(segs, cur)
			}
			cur = coastLine{}
			continue
		}
		cur.lons = append(cur.lons, lon)
		cur.lats = append(cur.lats, lat)
	}
	if len(cur.lons) > 1 {
		segs = append(segs, cur)
	}
	return
}
