package fieldviz

import (
	"sync"

	"github.com/wgdzlh/fieldviz/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

type VizToolbox struct {
	refMap   map[int]gdal.SpatialReference
	rLock    sync.Mutex
	projOnce sync.Once
	projErr  error
	toMap    gdal.CoordinateTransform // 经纬度 -> Equal Earth
	toLonLat gdal.CoordinateTransform // Equal Earth -> 经纬度
	coastShp string
	cLock    sync.Mutex
	coast    []coastLine
	tmpDir   string
	logTag   string
}

// 由GDAL库C语言创建的内存对象，需要手动调用Destroy回收
type destroyable interface {
	Destroy()
}

// 初始化绘图工具箱，tmpDir为可选的输出目录路径（未提供的话为当前目录）
func NewVizToolbox(tmpDir ...string) *VizToolbox {
	g := &VizToolbox{
		refMap: map[int]gdal.SpatialReference{},
		logTag: "VizToolbox:",
	}
	if len(tmpDir) > 0 && tmpDir[0] != "" {
		g.tmpDir = tmpDir[0]
	}
	return g
}

// 设置海岸线shp路径（绘制海岸线叠加时需要）
func (g *VizToolbox) SetCoastlineShp(shp string) {
	g.coastShp = shp
}

// 获取srid对应的坐标系（可复用，故无需回收）
func (g *VizToolbox) getSridRef(srid int) (ref gdal.SpatialReference, err error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[srid]
	if ok {
		return
	}
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromEPSG(srid); err != nil { // 设定坐标系ID
		log.Error(g.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(err))
		ref.Destroy()
		return
	}
	// 数据轴次序固定为(经度,纬度)，避免坐标转换时次序倒置
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	g.refMap[srid] = ref
	return
}

// 惰性探测地图投影可用性。首次失败后错误被保留，后续调用原样返回
func (g *VizToolbox) ensureProjection() error {
	g.projOnce.Do(func() {
		ref, err := g.getSridRef(UNIVERSAL_SRID)
		if err != nil {
			g.projErr = err
			return
		}
		tRef, err := g.getSridRef(MAP_SRID)
		if err != nil {
			g.projErr = err
			return
		}
		g.toMap = gdal.CreateCoordinateTransform(ref, tRef)
		g.toLonLat = gdal.CreateCoordinateTransform(tRef, ref)
		log.Info(g.logTag+"map projection ready", zap.Int("srid", MAP_SRID))
	})
	return g.projErr
}
