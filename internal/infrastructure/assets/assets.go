// Package assets loads animation frame sets and UI art from a filesystem.
//
// Loading is best-effort: a missing directory or an undecodable image
// degrades to a magenta placeholder with a logged warning instead of an
// error. Views keep rendering with obviously-wrong art rather than crash.
package assets

import (
	"image"
	"image/color"
	"io/fs"
	"log"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	_ "image/jpeg"
	_ "image/png"
)

// PlaceholderSize is the square side of the fallback image in pixels.
const PlaceholderSize = 32

var placeholderColor = color.RGBA{255, 0, 255, 255}

// Animation is an ordered frame set with a fixed per-frame duration.
type Animation struct {
	Frames    []*ebiten.Image
	FrameTime float64
}

// FrameAt returns the frame for the given index, wrapping around.
func (a *Animation) FrameAt(idx int) *ebiten.Image {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[idx%len(a.Frames)]
}

// Library loads assets from an fs.FS rooted at the asset directory.
type Library struct {
	fsys fs.FS
}

// NewLibrary creates a library over the given filesystem.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Animation loads every image file in dir, sorted by name, scaled by the
// given factor. On any failure it returns a single-frame placeholder.
func (l *Library) Animation(dir string, scale, frameTime float64) *Animation {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		log.Printf("assets: animation directory %q unreadable, using placeholder: %v", dir, err)
		return placeholderAnimation(frameTime)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := l.decode(path.Join(dir, name))
		if err != nil {
			log.Printf("assets: skipping frame %q: %v", path.Join(dir, name), err)
			continue
		}
		frames = append(frames, scaled(img, scale))
	}

	if len(frames) == 0 {
		log.Printf("assets: no frames loaded from %q, using placeholder", dir)
		return placeholderAnimation(frameTime)
	}

	return &Animation{Frames: frames, FrameTime: frameTime}
}

// Image loads a single image. Returns nil with a logged warning on
// failure; callers fall back to flat-color rendering.
func (l *Library) Image(name string) *ebiten.Image {
	img, err := l.decode(name)
	if err != nil {
		log.Printf("assets: image %q unavailable: %v", name, err)
		return nil
	}
	return img
}

func (l *Library) decode(name string) (*ebiten.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func scaled(img *ebiten.Image, scale float64) *ebiten.Image {
	if scale == 1.0 || scale <= 0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := ebiten.NewImage(w, h)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	dst.DrawImage(img, opts)
	return dst
}

// Placeholder returns the magenta fallback square.
func Placeholder() *ebiten.Image {
	img := ebiten.NewImage(PlaceholderSize, PlaceholderSize)
	img.Fill(placeholderColor)
	return img
}

func placeholderAnimation(frameTime float64) *Animation {
	return &Animation{
		Frames:    []*ebiten.Image{Placeholder()},
		FrameTime: frameTime,
	}
}
