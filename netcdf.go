package fieldviz

import (
	"fmt"

	"github.com/wgdzlh/fieldviz/log"
	"github.com/wgdzlh/fieldviz/utils"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"go.uber.org/zap"
)

// 从NetCDF文件中读取三个一维数值变量，作为散点样本（经度、纬度、数值）
func LoadNetCDFField(path, lonVar, latVar, valVar string) (lon, lat, values []float64, err error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		log.Error("open netcdf failed", zap.String("path", path), zap.Error(err))
		err = ErrInvalidNetCDF
		return
	}
	defer nc.Close()
	if lon, err = ncFloats(nc, lonVar); err != nil {
		return
	}
	if lat, err = ncFloats(nc, latVar); err != nil {
		return
	}
	if values, err = ncFloats(nc, valVar); err != nil {
		return
	}
	if len(lon) != len(lat) || len(lon) != len(values) {
		err = ErrSampleMismatch
		return
	}
	log.Info("netcdf field loaded", zap.String("name", utils.GetFilenameWithoutExt(path)),
		zap.String("var", valVar), zap.Int("samples", len(values)))
	return
}

func ncFloats(nc api.Group, name string) (ret []float64, err error) {
	v, err := nc.GetVariable(name)
	if err != nil || v == nil {
		err = fmt.Errorf(ErrMissingVarTemplate, name)
		return
	}
	switch vals := v.Values.(type) {
	case []float64:
		ret = vals
	case []float32:
		ret = make([]float64, len(vals))
		for i, f := range vals {
			ret[i] = float64(f)
		}
	case []int32:
		ret = make([]float64, len(vals))
		for i, f := range vals {
			ret[i] = float64(f)
		}
	case []int16:
		ret = make([]float64, len(vals))
		for i, f := range vals {
			ret[i] = float64(f)
		}
	default:
		err = fmt.Errorf(ErrMissingVarTemplate, name)
	}
	return
}
