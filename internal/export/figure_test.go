package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvsrweb/internal/model"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestFigureStandard(t *testing.T) {
	calc := exampleCalculation()

	png, err := Figure(calc)
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngSignature))
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestFigureWithoutRejection(t *testing.T) {
	calc := exampleCalculation()
	calc.Settings.RejectionEnabled = false
	calc.Result.Rejection = nil
	calc.Result.BeforeRejection = nil

	png, err := Figure(calc)
	require.NoError(t, err)
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestFigureRotate(t *testing.T) {
	calc := exampleCalculation()
	calc.Settings.Method = model.MethodRotate
	calc.Result.Windows = nil
	calc.Result.Rejection = nil
	calc.Result.BeforeRejection = nil
	calc.Result.Azimuthal = &model.AzimuthalSurface{
		Azimuths: []float64{0, 45, 90, 135},
		Curves: [][]float64{
			{1, 2.2, 1.7, 0.8},
			{1.1, 2.5, 1.9, 0.9},
			{1.2, 2.7, 2, 1},
			{1.05, 2.3, 1.8, 0.85},
		},
		PeakFrequencies: []float64{1, 1, 1, 1},
		PeakAmplitudes:  []float64{2.2, 2.5, 2.7, 2.3},
	}

	png, err := Figure(calc)
	require.NoError(t, err)
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestFigureRotateShortSurface(t *testing.T) {
	calc := exampleCalculation()
	calc.Settings.Method = model.MethodRotate
	calc.Result.Azimuthal = &model.AzimuthalSurface{
		Azimuths: []float64{0, 45},
		Curves:   [][]float64{{1, 2.2}},
	}

	_, err := Figure(calc)
	assert.Error(t, err)
}

func TestFigureRequiresResult(t *testing.T) {
	calc := exampleCalculation()
	calc.Result = nil

	_, err := Figure(calc)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestFigureRequiresFrequencyAxis(t *testing.T) {
	calc := exampleCalculation()
	calc.Result.Frequency = nil

	_, err := Figure(calc)
	assert.ErrorContains(t, err, "frequency axis")
}

func TestFigureRejectsShortCurve(t *testing.T) {
	calc := exampleCalculation()
	calc.Result.Curve.Amplitude = calc.Result.Curve.Amplitude[:1]

	_, err := Figure(calc)
	assert.ErrorContains(t, err, "curve arrays shorter")
}
