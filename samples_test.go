package fieldviz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestLoadSampleTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	content := "# lon,lat,value\n10.5,-20.25,288.15\n-100,45,250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), os.ModePerm))

	lon, lat, values, err := LoadSampleTable(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, -100}, lon)
	assert.Equal(t, []float64{-20.25, 45}, lat)
	assert.Equal(t, []float64{288.15, 250}, values)
}

func TestLoadSampleTableGbk(t *testing.T) {
	// GBK编码的注释行不应影响解析
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("# 温度样本\n120.1,30.2,301\n"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "samples_gbk.csv")
	require.NoError(t, os.WriteFile(path, raw, os.ModePerm))

	lon, lat, values, err := LoadSampleTable(path)
	require.NoError(t, err)
	require.Len(t, lon, 1)
	assert.Equal(t, 120.1, lon[0])
	assert.Equal(t, 30.2, lat[0])
	assert.Equal(t, 301.0, values[0])
}

func TestLoadSampleTableBadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n4,x,6\n"), os.ModePerm))
	_, _, _, err := LoadSampleTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
