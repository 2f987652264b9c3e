// Re-encodes carousel photos as JPEG + WebP for the church website.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bethesda_backend/internals/imageopt"
)

func main() {
	var (
		in        = flag.String("in", "web/assets/images/homepage", "Directory with source .jpg files")
		out       = flag.String("out", "", "Output directory (default <in>/optimized)")
		quality   = flag.Int("quality", 80, "JPEG/WebP quality (1-100)")
		maxWidth  = flag.Int("max-width", 0, "Downscale wider images to this width (0 = keep)")
		maxHeight = flag.Int("max-height", 0, "Downscale taller images to this height (0 = keep)")
		targetKB  = flag.Int("target-kb", 0, "Lower WebP quality until files fit this size (0 = off)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Optimizing carousel images...")
	results, err := imageopt.OptimizeDir(ctx, imageopt.Options{
		InputDir:  *in,
		OutputDir: *out,
		Quality:   *quality,
		MaxWidth:  *maxWidth,
		MaxHeight: *maxHeight,
		TargetKB:  *targetKB,
	})
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("Image optimization complete! %d file(s) processed.", len(results))
}
