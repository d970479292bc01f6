package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

// Show opens a desktop window that displays img and blocks until the window
// is closed. Escape and Q close it too.
func Show(title string, img image.Image) error {
	b := img.Bounds()

	w := &window{src: img}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	log.Debugf("Showing %dx%d window", b.Dx(), b.Dy())
	return ebiten.RunGame(w)
}

type window struct {
	src image.Image
	img *ebiten.Image
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at the plot's size; ebiten scales it to
// the window.
func (w *window) Layout(_, _ int) (int, int) {
	b := w.src.Bounds()
	return b.Dx(), b.Dy()
}
