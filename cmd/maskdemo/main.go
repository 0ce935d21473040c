// Command maskdemo renders every brush mask generator onto a contact sheet.
//
// The first row shows each generator through the default applicator, the
// second row the absolute difference between the scalar and vector paths
// scaled by -diffgain.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/brushmask"
	"github.com/gogpu/brushmask/curve"
)

const labelHeight = 16

func main() {
	var (
		size     = flag.Int("size", 96, "cell size in pixels")
		zoom     = flag.Int("zoom", 2, "nearest-neighbor upscale factor")
		angle    = flag.Float64("angle", 0, "dab rotation in degrees")
		ratio    = flag.Float64("ratio", 0.7, "shape height / width")
		softness = flag.Float64("softness", 1, "generator softness")
		spikes   = flag.Int("spikes", 2, "number of spikes")
		levels   = flag.String("levels", "0;1;1;0;1", "preview tone curve: inBlack;inWhite;gamma;outBlack;outWhite")
		diffGain = flag.Int("diffgain", 32, "scale applied to the scalar/vector difference row")
		preset   = flag.String("preset", "", "optional XML file with a MaskGenerator element, rendered as an extra cell")
		workers  = flag.Int("workers", 0, "goroutines for the first row (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "log applicator selection")
		output   = flag.String("o", "masks.png", "output file")
	)
	flag.Parse()

	if *verbose {
		brushmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	tone, err := curve.ParseLevels(*levels)
	if err != nil {
		log.Fatalf("Bad -levels: %v", err)
	}

	gens := generators(float64(*size)*0.8, *ratio, *spikes)
	if *preset != "" {
		g, err := loadPreset(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		gens = append(gens, g)
	}
	for _, g := range gens {
		g.SetSoftness(*softness)
	}

	face, err := labelFace()
	if err != nil {
		log.Fatalf("Failed to load label font: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	cell := *size * *zoom
	sheet := brushmask.NewPixmap(cell*len(gens), 2*(cell+labelHeight))
	sheet.Clear(color.NRGBA{24, 24, 28, 255})

	rad := *angle * math.Pi / 180
	for i, g := range gens {
		dab, err := renderParallel(g, *size, rad, *workers)
		if err != nil {
			log.Fatalf("Render %s: %v", label(g), err)
		}
		scalar := render(g, *size, rad, brushmask.ImplGeneric)
		vector := render(g, *size, rad, brushmask.ImplAVX2)
		diff, worst := difference(scalar, vector, *diffGain)
		log.Printf("%-14s max scalar/vector difference %d", label(g), worst)

		x := i * cell
		place(sheet, toned(dab, tone), image.Pt(x, 0), cell)
		drawLabel(sheet, face, label(g), x+4, cell+labelHeight-4)
		place(sheet, diff.ToImage(), image.Pt(x, cell+labelHeight), cell)
		drawLabel(sheet, face, "diff", x+4, 2*(cell+labelHeight)-4)
	}

	if err := sheet.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Contact sheet saved to %s (%dx%d)\n", *output, sheet.Bounds().Dx(), sheet.Bounds().Dy())
}

func generators(diameter, ratio float64, spikes int) []brushmask.Generator {
	wavy := curve.MustParse("0,1;0.3,0.45;0.55,0.8;1,0;")
	return []brushmask.Generator{
		brushmask.NewCircle(diameter, ratio, 0.6, 0.6, spikes, true),
		brushmask.NewRectangle(diameter, ratio, 0.6, 0.6, spikes, true),
		brushmask.NewGaussCircle(diameter, ratio, 0.6, 0.6, spikes, true),
		brushmask.NewGaussRectangle(diameter, ratio, 0.6, 0.6, spikes, true),
		brushmask.NewCurveCircle(diameter, ratio, 0.6, 0.6, spikes, wavy, true),
		brushmask.NewCurveRectangle(diameter, ratio, 0.6, 0.6, spikes, wavy, true),
	}
}

func loadPreset(path string) (brushmask.Generator, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return brushmask.UnmarshalGenerator(data)
}

func label(g brushmask.Generator) string {
	return g.Kind().String() + " " + g.Shape().String()
}

// newCoverage returns a mask whose bytes end up holding raw coverage.
func newCoverage(size int) *brushmask.Mask {
	m := brushmask.NewMask(size, size)
	m.Fill(255)
	return m
}

func render(g brushmask.Generator, size int, angle float64, impl brushmask.Implementation) *brushmask.Mask {
	m := newCoverage(size)
	c := float64(size) / 2
	app := brushmask.NewApplicator(g, brushmask.WithImplementation(impl), brushmask.WithSeed(1))
	app.InitializeData(brushmask.NewMaskProcessingData(m, nil, 0, 1, c, c, angle))
	app.Process(m.Bounds())
	return m
}

func renderParallel(g brushmask.Generator, size int, angle float64, workers int) (*brushmask.Mask, error) {
	m := newCoverage(size)
	c := float64(size) / 2
	data := brushmask.NewMaskProcessingData(m, nil, 0, 1, c, c, angle)
	err := brushmask.ProcessParallel(context.Background(), g, data, m.Bounds(), workers)
	return m, err
}

func difference(a, b *brushmask.Mask, gain int) (*brushmask.Mask, int) {
	diff := brushmask.NewMask(a.Width(), a.Height())
	worst := 0
	for y := range a.Height() {
		for x := range a.Width() {
			d := int(a.At(x, y)) - int(b.At(x, y))
			if d < 0 {
				d = -d
			}
			worst = max(worst, d)
			diff.Set(x, y, uint8(min(d*gain, 255))) // #nosec G115 -- clamped to 255
		}
	}
	return diff, worst
}

// toned maps coverage through the levels curve into a gray image.
func toned(m *brushmask.Mask, l *curve.Levels) *image.Gray {
	lut := l.Uint16Transfer(256)
	img := m.ToImage()
	for i, v := range img.Pix {
		img.Pix[i] = uint8(lut[v] >> 8) // #nosec G115 -- high byte
	}
	return img
}

func place(dst draw.Image, src image.Image, at image.Point, cell int) {
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(cell, cell))}
	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
}

func labelFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    11,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawLabel(dst draw.Image, face font.Face, text string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{220, 220, 220, 255}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
