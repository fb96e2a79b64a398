package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sachaMorin/apriltag/internal/config"
	"github.com/sachaMorin/apriltag/internal/detect"
	"github.com/sachaMorin/apriltag/internal/geom"
	"github.com/sachaMorin/apriltag/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// quadResult is the wire form of one detected quad.
type quadResult struct {
	Corners      [4]geom.Point `json:"corners"`
	ObsPerimeter float64       `json:"observed_perimeter"`
	Code         uint64        `json:"code"`
	Decoded      bool          `json:"decoded"`
}

// output is the top-level JSON document written to stdout.
type output struct {
	ImageWidth   int          `json:"image_width"`
	ImageHeight  int          `json:"image_height"`
	SegmentCount int          `json:"segment_count"`
	Quads        []quadResult `json:"quads"`
	Count        int          `json:"count"`
}

func main() {
	var (
		imagePath    = flag.String("image", "", "input image (required)")
		segmentsPath = flag.String("segments", "", "segment-graph JSON from the upstream extractor (required)")
		configPath   = flag.String("config", "apriltag.yaml", "detector configuration YAML")
		overlayPath  = flag.String("overlay", "", "write an annotated copy of the input image to this path")
		showVersion  = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("apriltag %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Results go to stdout; everything else to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *imagePath == "" || *segmentsPath == "" {
		fmt.Fprintln(os.Stderr, "apriltag - detect and decode fiducial tags from a segment graph")
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*imagePath, *segmentsPath, *configPath, *overlayPath); err != nil {
		log.Fatalf("apriltag: %v", err)
	}
}

func run(imagePath, segmentsPath, configPath, overlayPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	img, err := imaging.Open(imagePath)
	if err != nil {
		return err
	}
	fimg := imaging.FromImage(img, cfg.Preprocess.BlurSigma)

	f, err := os.Open(segmentsPath)
	if err != nil {
		return fmt.Errorf("failed to open segment graph: %w", err)
	}
	segments, err := detect.LoadSegments(f)
	f.Close()
	if err != nil {
		return err
	}

	if os.Getenv("APRILTAG_LOG_LEVEL") == "debug" {
		log.Printf("apriltag v%s: %d segments from %s", Version, len(segments), segmentsPath)
	}

	opts := detect.Options{
		MinEdgeLength:  cfg.Detection.MinEdgeLength,
		MaxAspectRatio: cfg.Detection.MaxAspectRatio,
	}
	quads, err := detect.SearchAll(context.Background(), segments, cfg.Detection.NumWorkers, opts)
	if err != nil {
		return err
	}

	out := output{
		ImageWidth:   fimg.Width(),
		ImageHeight:  fimg.Height(),
		SegmentCount: len(segments),
		Quads:        make([]quadResult, 0, len(quads)),
	}
	for _, q := range quads {
		code, ok := q.ToTagCode(fimg, cfg.Tag.DimensionBits, cfg.Tag.BlackBorder)
		out.Quads = append(out.Quads, quadResult{
			Corners:      q.Corners,
			ObsPerimeter: q.ObsPerimeter,
			Code:         uint64(code),
			Decoded:      ok,
		})
	}
	out.Count = len(out.Quads)

	if overlayPath != "" {
		outlines := make([][4]geom.Point, len(quads))
		for i, q := range quads {
			outlines[i] = q.Corners
		}
		if err := imaging.Save(imaging.DrawDetections(img, outlines), overlayPath); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
