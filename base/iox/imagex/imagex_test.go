// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetRGBA(x, y, c)
		}
	}
	return im
}

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "tif": TIFF, ".bmp": BMP, "gif": GIF} {
		f, err := ExtToFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, f)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	im := solid(4, 3, color.RGBA{200, 10, 10, 255})
	for _, ext := range []string{"png", "tiff", "bmp"} {
		fn := filepath.Join(t.TempDir(), "im."+ext)
		require.NoError(t, Save(im, fn))
		got, f, err := Open(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, ext, f.String()[:len(ext)])
		assert.Equal(t, im.Bounds(), got.Bounds())
		r, g, b, _ := got.At(1, 1).RGBA()
		assert.Equal(t, []uint32{200, 10, 10}, []uint32{r >> 8, g >> 8, b >> 8})
	}
}

func TestGrayscale(t *testing.T) {
	g := Grayscale(solid(2, 2, color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, uint8(255), g.GrayAt(0, 0).Y)
	g = Grayscale(solid(2, 2, color.RGBA{0, 0, 0, 255}))
	assert.Equal(t, uint8(0), g.GrayAt(1, 1).Y)
	g = Grayscale(solid(2, 2, color.RGBA{200, 10, 10, 255}))
	assert.InDelta(t, 67, int(g.GrayAt(0, 1).Y), 1)
}

func TestThumbnail(t *testing.T) {
	im := solid(400, 200, color.RGBA{0, 0, 255, 255})
	th := Thumbnail(im, 100, 100)
	assert.Equal(t, 100, th.Bounds().Dx())
	assert.Equal(t, 50, th.Bounds().Dy())
	assert.Same(t, im, Thumbnail(im, 400, 400))
}

func TestAssert(t *testing.T) {
	name := "assert_self_test"
	fn := filepath.Join("testdata", name+".png")
	defer func() {
		os.Remove(fn)
		os.Remove(filepath.Join("testdata", name+".fail.png"))
		os.Remove(filepath.Join("testdata", name+".diff.png"))
		os.Remove("testdata")
	}()

	im := solid(8, 8, color.RGBA{10, 120, 30, 255})
	r := &recorder{}
	Assert(r, im, name)
	require.Len(t, r.errs, 1)
	assert.Contains(t, r.errs[0], "JOURNALFIG_UPDATE_TESTDATA")
	assert.NoFileExists(t, fn)

	r = &recorder{}
	UpdateTestImages = true
	Assert(r, im, name)
	UpdateTestImages = false
	require.Empty(t, r.errs)
	require.FileExists(t, fn)

	Assert(r, solid(8, 8, color.RGBA{15, 125, 35, 255}), name)
	assert.Empty(t, r.errs)

	Assert(r, solid(8, 8, color.RGBA{200, 120, 30, 255}), name)
	assert.Len(t, r.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", name+".fail.png"))
	assert.FileExists(t, filepath.Join("testdata", name+".diff.png"))
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{0, 20, 10, 255}, 10))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{10, 10, 21, 255}, 10))
}
