package fieldviz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wgdzlh/fieldviz/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 将图面写入path，格式由扩展名决定（png按FIG_DPI栅格化）。
// 主图与色标按上下布局绘制在同一画布
func (f *Figure) Save(w, h vg.Length, path string) (err error) {
	var c vg.CanvasWriterTo
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case FILE_EXT_PNG:
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(FIG_DPI))}
	default:
		if c, err = draw.NewFormattedCanvas(w, h, strings.TrimPrefix(ext, ".")); err != nil {
			return
		}
	}
	dc := draw.New(c)
	f.Main.Draw(draw.Crop(dc, 0, 0, BAR_HEIGHT, 0))
	if f.Bar != nil {
		hgt := dc.Size().Y
		f.Bar.Draw(draw.Crop(dc, vg.Inch, -vg.Inch, 0, BAR_HEIGHT-hgt))
	}
	out, err := os.Create(path)
	if err != nil {
		return
	}
	defer out.Close()
	_, err = c.WriteTo(out)
	return
}

// 将地图图面保存为PNG，文件名带唯一ID防止覆盖。
// dir为空时使用工具箱tmpDir，其次当前目录
func (g *VizToolbox) SaveLayerGrid(fig *Figure, dir string) (path string, err error) {
	if dir == "" {
		if dir = g.tmpDir; dir == "" {
			dir = "."
		}
	}
	path = filepath.Join(dir, fmt.Sprintf(TMP_LAYER_PNG, uuid.NewString()))
	if err = fig.Save(FIG_WIDTH, FIG_HEIGHT, path); err != nil {
		log.Error(g.logTag+"save layer figure failed", zap.String("out", path), zap.Error(err))
		return
	}
	log.Info(g.logTag+"layer figure saved", zap.String("out", path))
	return
}
