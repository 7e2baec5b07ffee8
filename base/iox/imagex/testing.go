// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them.
// It is set if the environment variable "JOURNALFIG_UPDATE_TESTDATA"
// is "true". It should only be set when a rendering change is intended.
var UpdateTestImages = os.Getenv("JOURNALFIG_UPDATE_TESTDATA") == "true"

// Tolerance is the largest per-channel difference of pixels
// considered equal by [Assert]. Font rasterization differs slightly
// between platforms.
var Tolerance uint8 = 10

// CompareColors returns true if no channel of the colors differs by more than tol.
func CompareColors(cc, ic color.RGBA, tol uint8) bool {
	near := func(a, b uint8) bool {
		if a > b {
			return a-b <= tol
		}
		return b-a <= tol
	}
	return near(cc.R, ic.R) && near(cc.G, ic.G) && near(cc.B, ic.B) && near(cc.A, ic.A)
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	d := blend.Difference(a, b)
	for i := 3; i < len(d.Pix); i += 4 {
		d.Pix[i] = 255
	}
	return d
}

// Assert asserts that the given image is equivalent
// to the image stored at the given filename in the testdata directory,
// with ".png" added to the filename if there is no extension
// (eg: "demo" becomes "testdata/demo.png").
// If it is not, it fails the test with an error, but continues its
// execution, saving the image as ".fail" and the difference as ".diff".
// A missing image is an error unless [UpdateTestImages] is set, in
// which case the image is created.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	err := os.MkdirAll(filepath.Dir(filename), 0750)
	if err != nil {
		t.Errorf("error making testdata directory: %v", err)
	}

	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		err := Save(img, filename)
		if err != nil {
			t.Errorf("AssertImage: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}

	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("AssertImage: error opening saved image: %v", err)
			return
		}
		t.Errorf("AssertImage: no saved image %s; set JOURNALFIG_UPDATE_TESTDATA=true to create it", filename)
		return
	}

	failed := false
	ibounds := img.Bounds()
	fbounds := fimg.Bounds()
	if ibounds.Size() != fbounds.Size() {
		t.Errorf("AssertImage: expected size %v for image for %s, but got size %v; see %s", fbounds.Size(), filename, ibounds.Size(), failFilename)
		failed = true
	} else {
		ci, cf := clone.AsRGBA(img), clone.AsRGBA(fimg)
		b := ci.Bounds()
	outer:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				cc, ic := ci.RGBAAt(x, y), cf.RGBAAt(x, y)
				if !CompareColors(cc, ic, Tolerance) {
					t.Errorf("AssertImage: image for %s is not the same as expected; see %s; expected color %v at (%d, %d), but got %v", filename, failFilename, ic, x, y, cc)
					failed = true
					break outer
				}
			}
		}
	}

	if failed {
		err := Save(img, failFilename)
		if err != nil {
			t.Errorf("AssertImage: error saving fail image: %v", err)
		}
		if ibounds.Size() == fbounds.Size() {
			err = Save(DiffImage(img, fimg), diffFilename)
			if err != nil {
				t.Errorf("AssertImage: error saving diff image: %v", err)
			}
		}
		return
	}
	os.RemoveAll(failFilename)
	os.RemoveAll(diffFilename)
}
