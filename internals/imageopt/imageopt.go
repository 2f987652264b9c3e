// Package imageopt re-encodes site photos as quality-capped JPEGs with WebP siblings.
package imageopt

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

type Options struct {
	InputDir  string
	OutputDir string
	Quality   int // JPEG and WebP quality, 1..100
	MaxWidth  int // 0 = keep size
	MaxHeight int
	TargetKB  int // >0: search WebP quality down until the file fits
}

func (o *Options) normalize() error {
	if o.InputDir == "" {
		return fmt.Errorf("input dir is required")
	}
	if o.OutputDir == "" {
		o.OutputDir = filepath.Join(o.InputDir, "optimized")
	}
	if o.Quality <= 0 {
		o.Quality = 80
	}
	if o.Quality > 100 {
		o.Quality = 100
	}
	return nil
}

// Result describes one processed source image. Sizes are in bytes.
type Result struct {
	Name         string
	OriginalSize int64
	JPEGSize     int64
	WebPSize     int64
}

func (r Result) JPEGSavings() float64 { return savings(r.OriginalSize, r.JPEGSize) }
func (r Result) WebPSavings() float64 { return savings(r.OriginalSize, r.WebPSize) }

func savings(orig, now int64) float64 {
	if orig <= 0 {
		return 0
	}
	return float64(orig-now) / float64(orig) * 100
}

// MB formats a byte count the way the optimizer logs it.
func MB(n int64) string {
	return fmt.Sprintf("%.2fMB", float64(n)/1024/1024)
}

// OptimizeDir processes every .jpg/.jpeg directly inside InputDir.
func OptimizeDir(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.InputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.OutputDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.Printf("[INFO] processing %s...", name)
		res, err := OptimizeFile(filepath.Join(opts.InputDir, name), opts)
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
		log.Printf("  Original: %s", MB(res.OriginalSize))
		log.Printf("  Optimized JPEG: %s (%.1f%% smaller)", MB(res.JPEGSize), res.JPEGSavings())
		log.Printf("  WebP: %s (%.1f%% smaller)", MB(res.WebPSize), res.WebPSavings())
		results = append(results, res)
	}
	return results, nil
}

// OptimizeFile writes <OutputDir>/<name> and <OutputDir>/<stem>.webp for src.
func OptimizeFile(src string, opts Options) (Result, error) {
	if err := opts.normalize(); err != nil {
		return Result{}, err
	}
	name := filepath.Base(src)
	res := Result{Name: name}

	fi, err := os.Stat(src)
	if err != nil {
		return res, err
	}
	res.OriginalSize = fi.Size()

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return res, fmt.Errorf("decode: %w", err)
	}
	img = Downscale(img, opts.MaxWidth, opts.MaxHeight)

	jpegPath := filepath.Join(opts.OutputDir, name)
	if err := imaging.Save(img, jpegPath, imaging.JPEGQuality(opts.Quality)); err != nil {
		return res, fmt.Errorf("save jpeg: %w", err)
	}
	if fi, err := os.Stat(jpegPath); err == nil {
		res.JPEGSize = fi.Size()
	}

	data, err := EncodeWebP(img, float32(opts.Quality), opts.TargetKB)
	if err != nil {
		return res, fmt.Errorf("encode webp: %w", err)
	}
	webpPath := filepath.Join(opts.OutputDir, strings.TrimSuffix(name, filepath.Ext(name))+".webp")
	if err := os.WriteFile(webpPath, data, 0o644); err != nil {
		return res, fmt.Errorf("write webp: %w", err)
	}
	res.WebPSize = int64(len(data))
	return res, nil
}

// Downscale shrinks src to fit maxW x maxH keeping aspect; zero limits are ignored.
func Downscale(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(int(math.Round(float64(w)*scale)), 1)
	nh := max(int(math.Round(float64(h)*scale)), 1)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// EncodeWebP encodes at quality; with targetKB > 0 it binary-searches quality
// (never above the given one) for the largest output within the target.
func EncodeWebP(img image.Image, quality float32, targetKB int) ([]byte, error) {
	encode := func(q float32) ([]byte, error) {
		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := encode(quality)
	if err != nil || targetKB <= 0 || len(data) <= targetKB*1024 {
		return data, err
	}

	target := targetKB * 1024
	low, high := float32(10), quality
	best := []byte(nil)
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		out, err := encode(q)
		if err != nil {
			return nil, err
		}
		if len(out) <= target {
			best = out
			low = q
		} else {
			high = q
		}
	}
	if best == nil {
		return encode(low)
	}
	return best, nil
}
