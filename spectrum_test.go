package fieldviz

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testPowerSpectrum() *mat.Dense {
	power := mat.NewDense(10, 21, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 21; j++ {
			power.Set(i, j, float64(i*21+j+1))
		}
	}
	return power
}

func testDepths() []float64 {
	depths := make([]float64, 10)
	for i := range depths {
		depths[i] = float64(i+1) * 100
	}
	return depths
}

func TestLogPowerSlice(t *testing.T) {
	logged := logPowerSlice(testPowerSpectrum(), 2, 10, 1, 5)
	r, c := logged.Dims()
	// 行[1:5)，列[2:10]（含上界）
	assert.Equal(t, 4, r)
	assert.Equal(t, 9, c)
	assert.InDelta(t, math.Log(1*21+2+1), logged.At(0, 0), 1e-12)
	assert.InDelta(t, math.Log(4*21+10+1), logged.At(3, 8), 1e-12)
}

func TestLogPowerSliceNonPositive(t *testing.T) {
	power := mat.NewDense(2, 3, []float64{1, 0, -1, 2, 3, 4})
	logged := logPowerSlice(power, 0, 2, 0, 2)
	assert.True(t, math.IsInf(logged.At(0, 1), -1))
	assert.True(t, math.IsNaN(logged.At(0, 2)))
}

func TestPowersFileName(t *testing.T) {
	assert.Equal(t, "powers_.pdf", powersFileName(""))
	assert.Equal(t, "powers_Temperature.pdf", powersFileName("Temperature"))
}

func TestSpectralHeterogeneityRange(t *testing.T) {
	g := NewVizToolbox()
	power := testPowerSpectrum()
	depths := testDepths()
	cases := []struct {
		name                       string
		lmin, lmax, lyrmin, lyrmax int
	}{
		{"lmax too big", 2, 21, 1, 5},
		{"lmin negative", -1, 10, 1, 5},
		{"lmin above lmax", 11, 10, 1, 5},
		{"lyrmax too big", 2, 10, 1, 11},
		{"empty layer range", 2, 10, 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := g.SpectralHeterogeneity(power, depths, c.lmin, c.lmax, c.lyrmin, c.lyrmax, "", false, "")
			require.ErrorIs(t, err, ErrSpectrumRange)
		})
	}
}

func TestSpectralHeterogeneity(t *testing.T) {
	g := NewVizToolbox()
	fig, err := g.SpectralHeterogeneity(testPowerSpectrum(), testDepths(), 2, 10, 1, 5, "", false, "")
	require.NoError(t, err)
	require.NotNil(t, fig.Main)
	require.NotNil(t, fig.Bar)
	assert.Equal(t, SPECTRUM_TITLE, fig.Main.Title.Text)
}

func TestSpectralHeterogeneitySave(t *testing.T) {
	g := NewVizToolbox()
	dir := t.TempDir()
	fig, err := g.SpectralHeterogeneity(testPowerSpectrum(), testDepths(), 2, 10, 1, 5, "Temperature", true, dir)
	require.NoError(t, err)
	require.NotNil(t, fig)
	st, err := os.Stat(filepath.Join(dir, "powers_Temperature.pdf"))
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}
