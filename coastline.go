package fieldviz

import (
	"github.com/wgdzlh/fieldviz/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 海岸线折线，经纬度坐标
type coastLine struct {
	lons []float64
	lats []float64
}

// 解析海岸线shp（每个工具箱只解析一次，结果缓存）
func (g *VizToolbox) coastlines() (ret []coastLine, err error) {
	g.cLock.Lock()
	defer g.cLock.Unlock()
	if g.coast != nil {
		ret = g.coast
		return
	}
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(g.coastShp, 0)
	if !ok {
		log.Error(g.logTag+"open coastline shp failed", zap.String("shp", g.coastShp))
		err = ErrCoastlineOpen
		return
	}
	defer ds.Destroy()
	layer := ds.LayerByIndex(0)
	var (
		feature *gdal.Feature
		geo     gdal.Geometry
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for {
		if feature = layer.NextFeature(); feature == nil {
			break
		}
		gc = append(gc, *feature)
		geo = feature.Geometry()
		switch geo.Type() {
		case gdal.GT_LineString:
			ret = append(ret, lineCoords(geo))
		case gdal.GT_MultiLineString:
			for i, n := 0, geo.GeometryCount(); i < n; i++ {
				ret = append(ret, lineCoords(geo.Geometry(i)))
			}
		default:
			log.Warn(g.logTag+"skip non-line geom in coastline shp", zap.Uint("type", uint(geo.Type())))
		}
	}
	g.coast = ret
	log.Info(g.logTag+"coastline shp parsed", zap.String("shp", g.coastShp), zap.Int("lines", len(ret)))
	return
}

func lineCoords(geo gdal.Geometry) coastLine {
	n := geo.PointCount()
	line := coastLine{
		lons: make([]float64, n),
		lats: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		line.lons[i] = geo.X(i)
		line.lats[i] = geo.Y(i)
	}
	return line
}
