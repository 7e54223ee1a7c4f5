package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPixelsFlips(t *testing.T) {
	// Bottom row red, top row blue, as OpenGL returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)

	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 1)
	assert.Equal(t, uint8(255), top.B)
	assert.Equal(t, uint8(255), bottom.R)
}

func TestFromPixelsRejectsBadInput(t *testing.T) {
	_, err := FromPixels(make([]byte, 12), 2, 2)
	assert.Error(t, err)

	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "tetsuo")
	c.now = func() time.Time { return time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC) }

	path, err := c.SavePixels(make([]byte, 4*3*4), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tetsuo_2026-10-15_12-30-00.000.png"), path)

	for _, p := range []string{path, filepath.Join(dir, LatestName)} {
		f, err := os.Open(p)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	}
}

func TestFilename(t *testing.T) {
	c := New("", "frame")
	name := c.Filename()
	assert.True(t, strings.HasPrefix(name, "frame_"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}
