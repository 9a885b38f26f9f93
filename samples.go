package fieldviz

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/wgdzlh/fieldviz/log"
	"github.com/wgdzlh/fieldviz/utils"

	"go.uber.org/zap"
)

// 读取散点样本表：每行 lon,lat,value，#开头为注释行；GBK编码文件自动转为UTF-8
func LoadSampleTable(path string) (lon, lat, values []float64, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if !utf8.Valid(raw) {
		if raw, err = utils.GbkToUtf8(raw); err != nil {
			log.Error("trans-encoding sample table failed", zap.String("path", path), zap.Error(err))
			err = ErrInvalidSampleTable
			return
		}
	}
	rd := csv.NewReader(bytes.NewReader(raw))
	rd.Comment = '#'
	rd.TrimLeadingSpace = true
	recs, err := rd.ReadAll()
	if err != nil {
		log.Error("parse sample table failed", zap.String("path", path), zap.Error(err))
		err = ErrInvalidSampleTable
		return
	}
	name := utils.GetFilenameWithoutExt(path)
	var gLon, gLat, gVal float64
	for i, rec := range recs {
		if len(rec) != 3 {
			err = fmt.Errorf(ErrBadSampleRowTemplate, name, i+1)
			return
		}
		if gLon, err = strconv.ParseFloat(rec[0], 64); err == nil {
			if gLat, err = strconv.ParseFloat(rec[1], 64); err == nil {
				gVal, err = strconv.ParseFloat(rec[2], 64)
			}
		}
		if err != nil {
			log.Error("bad sample row", zap.String("name", name), zap.Int("row", i+1), zap.Error(err))
			err = fmt.Errorf(ErrBadSampleRowTemplate, name, i+1)
			return
		}
		lon = append(lon, gLon)
		lat = append(lat, gLat)
		values = append(values, gVal)
	}
	log.Info("sample table loaded", zap.String("name", name), zap.Int("samples", len(lon)))
	return
}
