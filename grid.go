package fieldviz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// 由散点（经度、纬度、数值）构建规则经纬度网格。
// extent为nil时取全球范围；delta为0时自动取最大跨度的1/200。
// method为nearest时每个网格点取最近散点的值，为mean时取落入该格的散点均值（空格为NaN）。
// 输出北在上：第0行对应最大纬度边。
func BuildGrid(lon, lat, values []float64, extent Extent, delta float64, method GridMethod) (ret *LayerGrid, err error) {
	if len(lon) != len(lat) || len(lon) != len(values) {
		err = ErrSampleMismatch
		return
	}
	if len(lon) == 0 {
		err = ErrNoSamples
		return
	}
	if extent == nil {
		extent = WorldExtent()
	}
	if len(extent) != 4 {
		err = ErrExtentSize
		return
	}
	minLon, maxLon, minLat, maxLat := extent[0], extent[1], extent[2], extent[3]
	if maxLon <= minLon {
		err = ErrExtentLonOrder
		return
	}
	if maxLat <= minLat {
		err = ErrExtentLatOrder
		return
	}
	if delta == 0 {
		delta = math.Max(maxLon-minLon, maxLat-minLat) / DELTA_DIVISOR
	} else if delta < 0 {
		err = ErrNonPositiveDelta
		return
	}
	lons := gridLines(minLon, maxLon, delta)
	lats := gridLines(minLat, maxLat, delta)
	var data *mat.Dense
	switch method {
	case MethodNearest:
		data = nearestGrid(lon, lat, values, lons, lats)
	case MethodMean:
		data = meanGrid(lon, lat, values, minLon, minLat, delta, len(lons), len(lats))
	default:
		err = fmt.Errorf("%w: '%s'", ErrUnknownMethod, method)
		return
	}
	ret = &LayerGrid{
		Data:  data,
		Lons:  lons,
		Lats:  lats,
		Span:  extent,
		Delta: delta,
	}
	return
}

// 半开区间[min, max)内以delta为步长的网格线坐标
func gridLines(min, max, delta float64) []float64 {
	n := int(math.Ceil((max - min) / delta))
	lines := make([]float64, n)
	for i := range lines {
		lines[i] = min + float64(i)*delta
	}
	return lines
}

// 最近邻插值：每个网格点取经纬度平面欧氏距离最近的散点值（经度不回绕）
func nearestGrid(lon, lat, values []float64, lons, lats []float64) *mat.Dense {
	points := make(samplePoints, len(lon))
	for i := range lon {
		points[i] = samplePoint{lon: lon[i], lat: lat[i], val: values[i]}
	}
	tree := kdtree.New(points, false)
	nLat, nLon := len(lats), len(lons)
	data := mat.NewDense(nLat, nLon, nil)
	for r := 0; r < nLat; r++ {
		gLat := lats[nLat-1-r] // 北在上
		for c := 0; c < nLon; c++ {
			got, _ := tree.Nearest(samplePoint{lon: lons[c], lat: gLat})
			data.Set(r, c, got.(samplePoint).val)
		}
	}
	return data
}

// 分箱均值：idx = floor((coord-min)/delta)，上边界开（越界样本丢弃），空格为NaN
func meanGrid(lon, lat, values []float64, minLon, minLat, delta float64, nLon, nLat int) *mat.Dense {
	sums := make([]float64, nLat*nLon)
	cnts := make([]int, nLat*nLon)
	for i := range lon {
		ix := int(math.Floor((lon[i] - minLon) / delta))
		iy := int(math.Floor((lat[i] - minLat) / delta))
		if ix < 0 || ix >= nLon || iy < 0 || iy >= nLat {
			continue
		}
		sums[iy*nLon+ix] += values[i]
		cnts[iy*nLon+ix]++
	}
	data := mat.NewDense(nLat, nLon, nil)
	for r := 0; r < nLat; r++ {
		iy := nLat - 1 - r // 北在上
		for c := 0; c < nLon; c++ {
			if n := cnts[iy*nLon+c]; n > 0 {
				data.Set(r, c, sums[iy*nLon+c]/float64(n))
			} else {
				data.Set(r, c, math.NaN())
			}
		}
	}
	return data
}

// 忽略NaN的最小最大值
func nanSpan(m *mat.Dense) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}

type samplePoint struct {
	lon, lat, val float64
}

func (p samplePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(samplePoint)
	switch d {
	case 0:
		return p.lon - q.lon
	case 1:
		return p.lat - q.lat
	default:
		panic("illegal dimension")
	}
}

func (p samplePoint) Dims() int { return 2 }

func (p samplePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(samplePoint)
	dLon, dLat := p.lon-q.lon, p.lat-q.lat
	return dLon*dLon + dLat*dLat
}

type samplePoints []samplePoint

func (p samplePoints) Index(i int) kdtree.Comparable { return p[i] }

func (p samplePoints) Len() int { return len(p) }

func (p samplePoints) Pivot(d kdtree.Dim) int {
	return samplePlane{Dim: d, samplePoints: p}.Pivot()
}

func (p samplePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type samplePlane struct {
	kdtree.Dim
	samplePoints
}

func (p samplePlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.samplePoints[i].lon < p.samplePoints[j].lon
	case 1:
		return p.samplePoints[i].lat < p.samplePoints[j].lat
	default:
		panic("illegal dimension")
	}
}

func (p samplePlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p samplePlane) Slice(start, end int) kdtree.SortSlicer {
	p.samplePoints = p.samplePoints[start:end]
	return p
}

func (p samplePlane) Swap(i, j int) {
	p.samplePoints[i], p.samplePoints[j] = p.samplePoints[j], p.samplePoints[i]
}
