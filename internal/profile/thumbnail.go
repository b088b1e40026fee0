package profile

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel with the foreground and the bottom pixel
// with the background, giving two image rows per terminal row.
const halfBlock = "▀"

// Thumbnail renders img into w columns by h rows of half-block cells. The
// image is center-cropped to the target aspect ratio before sampling.
func Thumbnail(img image.Image, w, h int) []string {
	if img == nil {
		return Placeholder(w, h)
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	crop := cropToAspect(img.Bounds(), w, h*2)
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			top := sample(img, crop, x, y*2, w, h*2)
			bottom := sample(img, crop, x, y*2+1, w, h*2)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render(halfBlock))
		}
		rows[y] = b.String()
	}
	return rows
}

// Placeholder draws a person silhouette in a circle, sized to w by h.
func Placeholder(w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}

	cx, cy := float64(w-1)/2, float64(h-1)/2
	rx, ry := float64(w)/2, float64(h)/2
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			// Normalized coordinates, -1..1 across the circle
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			switch {
			case nx*nx+ny*ny > 1:
				b.WriteByte(' ')
			case nx*nx+(ny+0.35)*(ny+0.35) < 0.09:
				b.WriteString("█") // Head
			case ny > 0.25 && nx*nx < 0.3*(ny+0.2):
				b.WriteString("█") // Shoulders
			default:
				b.WriteString("░")
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// cropToAspect returns the centered sub-rectangle of r with aspect w:h.
func cropToAspect(r image.Rectangle, w, h int) image.Rectangle {
	rw, rh := r.Dx(), r.Dy()
	if rw*h > rh*w {
		cw := rh * w / h
		x0 := r.Min.X + (rw-cw)/2
		return image.Rect(x0, r.Min.Y, x0+cw, r.Max.Y)
	}
	ch := rw * h / w
	y0 := r.Min.Y + (rh-ch)/2
	return image.Rect(r.Min.X, y0, r.Max.X, y0+ch)
}

// sample picks the nearest source pixel for target cell (x, y) of a w by h grid.
func sample(img image.Image, r image.Rectangle, x, y, w, h int) color.Color {
	if r.Empty() {
		return color.Black
	}
	sx := r.Min.X + x*r.Dx()/w
	sy := r.Min.Y + y*r.Dy()/h
	return img.At(sx, sy)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
