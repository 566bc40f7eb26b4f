package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"blocks/internal/config"
	"blocks/internal/export"
	"blocks/internal/game"
	"blocks/internal/world"

	"github.com/dustin/go-humanize"
	"github.com/xlab/closer"
)

func main() {
	defer closer.Close()

	cfg := config.Default()
	configPath := flag.String("config", "", "YAML settings file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise backend: opensimplex or perlin")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to simulate")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "extraction workers, 0 = one per CPU")
	speed := flag.Float64("speed", float64(cfg.Speed), "viewpoint speed in blocks per second")
	heading := flag.Float64("heading", float64(cfg.Heading), "viewpoint heading in degrees, 0 = +x")
	instancesPath := flag.String("instances", "", "write the final instance buffer (zstd) to this file")
	heightmapPath := flag.String("heightmap", "", "write a BMP heightmap of the final window to this file")
	flag.Parse()

	cfg.Speed = float32(*speed)
	cfg.Heading = float32(*heading)

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			closer.Fatalln(err)
		}
		config.Merge(&cfg, fromFile, explicit)
	}
	cfg.Noise = strings.ToLower(cfg.Noise)
	if err := cfg.Validate(); err != nil {
		closer.Fatalln(fmt.Errorf("invalid settings: %w", err))
	}

	w, err := world.New(cfg)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(w.Close)
	log.Printf("World seed %d (%s), window radius %d, %d workers", cfg.Seed, cfg.Noise, cfg.WindowRadius, w.Workers())

	session, err := game.NewSession(w, cfg)
	if err != nil {
		closer.Fatalln(err)
	}
	stats, err := game.NewApp(session, cfg.FPSLimit).Run(cfg.Frames)
	if err != nil {
		closer.Fatalln(err)
	}
	p := session.Position()
	log.Printf("Ran %d frames in %v: %d refreshes (%d slow), %d chunks cached, viewpoint (%.1f, %.1f), %s instances",
		stats.Frames, stats.Elapsed, stats.Refreshes, stats.Slow, w.ChunkCount(), p.X(), p.Y(),
		humanize.Comma(int64(len(session.Instances()))))

	if *instancesPath != "" {
		size, err := writeFile(*instancesPath, func(out io.Writer) error {
			return export.WriteInstances(out, session.Instances())
		})
		if err != nil {
			closer.Fatalln(err)
		}
		log.Printf("Wrote %s instances to %s (%s)", humanize.Comma(int64(len(session.Instances()))), *instancesPath, humanize.Bytes(uint64(size)))
	}

	if *heightmapPath != "" {
		window := w.Window()
		ox, oz := window[0].Origin()
		side := (2*cfg.WindowRadius + 1) * world.ChunkSize
		size, err := writeFile(*heightmapPath, func(out io.Writer) error {
			return export.WriteHeightmap(out, w, ox, oz, side, side)
		})
		if err != nil {
			closer.Fatalln(err)
		}
		log.Printf("Wrote %dx%d heightmap to %s (%s)", side, side, *heightmapPath, humanize.Bytes(uint64(size)))
	}
}

// writeFile creates path, fills it with write and returns the file size.
func writeFile(path string, write func(io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := write(f); err != nil {
		f.Close()
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, err
	}
	return info.Size(), f.Close()
}
