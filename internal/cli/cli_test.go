package cli

import (
	"bytes"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/widefix"
	"github.com/avdva/widefix/constgen"
	"github.com/avdva/widefix/fractal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	tests := []struct {
		args []string
		line string
	}{
		{[]string{"calc", "add", "3", "5.3"}, "value:   8.3\n"},
		{[]string{"calc", "sub", "--", "3", "-5.5"}, "value:   8.5\n"},
		{[]string{"calc", "mul", "1.5", "4"}, "value:   6\n"},
		{[]string{"calc", "abs", "--", "-2"}, "value:   2\n"},
		{[]string{"calc", "floor", "--", "-2.5"}, "value:   -3\n"},
		{[]string{"calc", "rem", "7", "2"}, "value:   1\n"},
		{[]string{"calc", "--base", "16", "add", "ff", "1"}, "value:   256\n"},
		// iterative operations may be off in the last bits.
		{[]string{"calc", "div", "1", "4"}, "float64: 0.25\n"},
		{[]string{"calc", "inv", "8"}, "float64: 0.125\n"},
		{[]string{"calc", "sqrt", "16"}, "float64: 4\n"},
	}
	for _, test := range tests {
		out, err := run(t, test.args...)
		require.NoError(t, err, "%v", test.args)
		assert.Contains(t, out, test.line, "%v", test.args)
	}

	out, err := run(t, "calc", "add", "0.5", "0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "float64: 0.75\n")
	assert.Contains(t, out, "words:   [")
}

func TestCalcErrors(t *testing.T) {
	_, err := run(t, "calc", "div", "1", "0")
	assert.ErrorIs(t, err, widefix.ErrDivisionByZero)

	_, err = run(t, "calc", "sqrt", "--", "-1")
	assert.ErrorIs(t, err, widefix.ErrNegativeSqrt)

	_, err = run(t, "calc", "pow", "2", "3")
	assert.ErrorContains(t, err, `unknown operation "pow"`)

	_, err = run(t, "calc", "neg", "2", "3")
	assert.ErrorContains(t, err, "neg takes 1 operand(s), got 2")

	_, err = run(t, "calc", "add", "1", "x")
	var perr *widefix.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestConstsStdout(t *testing.T) {
	out, err := run(t, "consts", "--const", "FIX_QUARTER = 0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "DO NOT EDIT")
	assert.Contains(t, out, "const uint FIX_SIXTY_FOUR[")
	assert.Contains(t, out, "// FIX_QUARTER = 0.25\n")
}

func TestConstsFiles(t *testing.T) {
	dir := t.TempDir()
	glsl := filepath.Join(dir, "consts.glsl")
	goFile := filepath.Join(dir, "consts.go")
	out, err := run(t, "consts",
		"--glsl", glsl,
		"--go", goFile,
		"--package", "deepzoom",
		"--const", "FIX_TWO_PI=6.283185307179586476925286766559",
		"--const", "FIX_MASK=ff",
		"--base", "16",
	)
	require.Error(t, err, "6.28... is not an integer in base 16")
	assert.Empty(t, out)

	_, err = run(t, "consts",
		"--glsl", glsl,
		"--go", goFile,
		"--package", "deepzoom",
		"--const", "FIX_TWO_PI=6.283185307179586476925286766559",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(glsl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const uint FIX_TWO_PI[")
	assert.Contains(t, string(data), constgen.Literal(widefix.MustFromString("6.283185307179586476925286766559")))

	data, err = os.ReadFile(goFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package deepzoom")
	assert.Contains(t, string(data), "FIX_TWO_PI")
}

func TestConstsErrors(t *testing.T) {
	_, err := run(t, "consts", "--const", "FIX_BAD")
	assert.ErrorContains(t, err, "want NAME=VALUE")

	_, err = run(t, "consts", "--const", "1BAD=1")
	assert.ErrorIs(t, err, constgen.ErrInvalidName)

	_, err = run(t, "consts", "--const", "FIX_SIXTY_FOUR=64")
	assert.ErrorIs(t, err, constgen.ErrDuplicateName)
}

func TestConstsConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "widefix.yaml")
	glsl := filepath.Join(dir, "out.glsl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output:
  glsl: `+glsl+`
constants:
  - name: FIX_THIRD
    value: "0.333333333333333333333333333333"
  - name: FIX_BYTE
    value: "ff"
    base: 16
`), 0644))

	out, err := run(t, "--config", cfgPath, "consts")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(glsl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// FIX_BYTE = 255\n")
	assert.Contains(t, string(data), "const uint FIX_THIRD[")
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "fractal.png")
	pcPath := filepath.Join(dir, "push.bin")
	_, err := run(t, "render",
		"--width", "8",
		"--height", "6",
		"--iters", "20",
		"--scale", "0.5",
		"--zoom", "2",
		"--julia",
		"--workers", "2",
		"-o", imgPath,
		"--push-constants", pcPath,
	)
	require.NoError(t, err)

	f, err := os.Open(imgPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	data, err := os.ReadFile(pcPath)
	require.NoError(t, err)
	var pc fractal.PushConstants
	require.NoError(t, pc.UnmarshalBinary(data))
	assert.EqualValues(t, 20, pc.MaxIters)
	assert.EqualValues(t, 1, pc.IsJulia)
	assert.InDelta(t, 0.25, pc.Scale.Float64(), 1e-15)
	assert.Equal(t, widefix.MustFromString("-0.5"), pc.TranslationX)
	assert.InDelta(t, -0.4, pc.C[0], 1e-6)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "f.png")
	_, err := run(t, "render", "--width", "0", "-o", out)
	assert.ErrorContains(t, err, "invalid image size")

	_, err = run(t, "render", "--scale", "-1", "-o", out)
	assert.ErrorContains(t, err, "scale must be positive")

	_, err = run(t, "render", "--width", "4", "--height", "4", "--zoom", "0", "-o", out)
	assert.ErrorIs(t, err, fractal.ErrBadZoom)

	_, err = run(t, "render", "--center-x", "abc", "-o", out)
	var perr *widefix.ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "render")
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "widefix version "+Version+"\n")
	assert.Contains(t, out, "Go version: go")
}

func TestLogToStderr(t *testing.T) {
	f := flag.Lookup("logtostderr")
	require.NotNil(t, f)
	old, oldDef := f.Value.String(), f.DefValue
	defer func() {
		f.DefValue = oldDef
		require.NoError(t, f.Value.Set(old))
	}()

	require.NoError(t, logToStderr())
	assert.Equal(t, "true", f.Value.String())
	assert.Equal(t, "true", f.DefValue)
}
