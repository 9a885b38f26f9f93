package fieldviz

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/wgdzlh/fieldviz/log"
	"github.com/wgdzlh/fieldviz/utils"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// 绘制球谐功率谱随深度的填充等值线图。power形为(层数, lmax+1)，
// 取[lyrmin:lyrmax)层、[lmin,lmax]阶子块的自然对数（非正值传播为非有限值），
// 等值线为对数块最小最大值间的10个等分级；深度轴向下递增。
// savePlot时将图保存为 <savePath>/powers_<title>.pdf（savePath空则为当前目录）。
func (g *VizToolbox) SpectralHeterogeneity(power *mat.Dense, depths []float64, lmin, lmax, lyrmin, lyrmax int,
	title string, savePlot bool, savePath string) (fig *Figure, err error) {
	nr, nc := power.Dims()
	if lyrmin < 0 || lyrmax > nr || lyrmin >= lyrmax || lyrmax > len(depths) ||
		lmin < 0 || lmin > lmax || lmax+1 > nc {
		err = ErrSpectrumRange
		return
	}
	logged := logPowerSlice(power, lmin, lmax, lyrmin, lyrmax)
	deps := depths[lyrmin:lyrmax]

	pMin, pMax := mat.Min(logged), mat.Max(logged)
	levels := make([]float64, CONTOUR_LEVELS)
	floats.Span(levels, pMin, pMax)
	cm := moreland.Kindlmann()
	cm.SetMin(pMin)
	cm.SetMax(pMax)
	pal := cm.Palette(PALETTE_COLORS)

	sg := &spectrumGrid{logged: logged, lmin: lmin, depths: deps}
	p := plot.New()
	h := plotter.NewHeatMap(sg, pal)
	h.Min, h.Max = pMin, pMax
	p.Add(h)
	p.Add(plotter.NewContour(sg, levels, pal))
	p.X.Label.Text = SPECTRUM_X_LABEL
	p.Y.Label.Text = SPECTRUM_Y_LABEL
	p.X.Min, p.X.Max = float64(lmin-1), float64(lmax+1)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}} // 深度向下递增
	if title == "" {
		p.Title.Text = SPECTRUM_TITLE
	} else {
		p.Title.Text = fmt.Sprintf(SPECTRUM_TITLE_TEMPLATE, title)
	}

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Label.Text = SPECTRUM_BAR_LABEL
	fig = &Figure{Main: p, Bar: bar}

	if savePlot {
		if savePath == "" {
			savePath = "."
		}
		out := filepath.Join(savePath, powersFileName(title))
		if err = fig.Save(FIG_WIDTH, FIG_HEIGHT, out); err != nil {
			log.Error(g.logTag+"save spectrum figure failed", zap.String("out", out), zap.Error(err))
			return
		}
		log.Info(g.logTag+"spectrum figure saved", zap.String("out", out))
	}
	return
}

// 子块自然对数：行[lyrmin:lyrmax)，列[lmin:lmax]（含上界）
func logPowerSlice(power *mat.Dense, lmin, lmax, lyrmin, lyrmax int) *mat.Dense {
	logged := mat.NewDense(lyrmax-lyrmin, lmax+1-lmin, nil)
	logged.Apply(func(_, _ int, v float64) float64 {
		return math.Log(v)
	}, power.Slice(lyrmin, lyrmax, lmin, lmax+1))
	return logged
}

// 标题转输出文件名，标题为空时即 powers_.pdf
func powersFileName(title string) string {
	return fmt.Sprintf(POWERS_PDF_TEMPLATE, utils.PurifyForUtf8(title))
}

// 功率谱绘图栅格：x为球谐阶，y为深度
type spectrumGrid struct {
	logged *mat.Dense
	lmin   int
	depths []float64
}

func (s *spectrumGrid) Dims() (c, r int) {
	r, c = s.logged.Dims()
	return c, r
}

func (s *spectrumGrid) X(c int) float64 { return float64(s.lmin + c) }

func (s *spectrumGrid) Y(r int) float64 { return s.depths[r] }

func (s *spectrumGrid) Z(c, r int) float64 { return s.logged.At(r, c) }
