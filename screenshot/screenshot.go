// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.


package screenshot

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopher2a03/curated"
)

// FileExists is returned by Save() if the file already exists.
const FileExists = "screenshot: file already exists (%s)"

// Scale returns a copy of the image scaled by the integer amount. A scale of
// less than one is treated as one.
func Scale(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save the image as a PNG file, scaled by the integer amount. An existing
// file will not be overwritten.
func Save(filename string, img image.Image, scale int) (rerr error) {
	if img == nil {
		return curated.Errorf("screenshot: %v", "no image to save")
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(FileExists, filename)
		}
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	if err := png.Encode(f, Scale(img, scale)); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
