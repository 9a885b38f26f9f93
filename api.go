package fieldviz

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

// 插值方法名
type GridMethod = string

// 经纬度范围：[最小经度, 最大经度, 最小纬度, 最大纬度]，单位为度
type Extent = []float64

// 规则经纬度网格。Data行序为北在上（第0行对应最大纬度边）
type LayerGrid struct {
	Data  *mat.Dense // (纬度步数, 经度步数)
	Lons  []float64  // 网格线经度，升序
	Lats  []float64  // 网格线纬度，升序
	Span  Extent
	Delta float64
}

// 地图绘制选项
type LayerGridOptions struct {
	Delta        float64    // 网格间距（度），0则自动推算
	Span         Extent     // 绘制范围，nil则为全球
	Label        string     // 数值标签，如 "Temperature / K"
	Method       GridMethod // nearest 或 mean
	NoCoastlines bool       // 不叠加海岸线
}

// 图面句柄：主图 + 水平色标
type Figure struct {
	Main *plot.Plot
	Bar  *plot.Plot
}

// 默认地图绘制选项，与全球场景对应
func DefaultLayerGridOptions() *LayerGridOptions {
	return &LayerGridOptions{
		Span:   WorldExtent(),
		Method: MethodNearest,
	}
}
