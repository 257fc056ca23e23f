package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/justinchang1124/helices/internal/preview"
	"github.com/justinchang1124/helices/internal/scene"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func loadScene(cmd *cli.Command) (*scene.Document, *scene.Result, *zap.Logger, error) {
	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return nil, nil, nil, err
	}
	path := cmd.String("scene")
	if path == "" {
		return nil, nil, nil, fmt.Errorf("no scene file given (use --scene)")
	}
	doc, err := scene.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := scene.NewBuilder(log).Build(doc)
	if err != nil {
		return nil, nil, nil, err
	}
	return doc, res, log, nil
}

func runBuild(_ context.Context, cmd *cli.Command) error {
	doc, res, log, err := loadScene(cmd)
	if err != nil {
		return err
	}

	outDir := cmd.String("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := scene.WriteManifest(manifestPath, res.Tree, res.Roots); err != nil {
		return err
	}
	log.Info("manifest written", zap.String("path", manifestPath))

	if cmd.Bool("preview") {
		img := preview.Render(res.Tree, res.Roots, preview.Options{
			Size:        int(cmd.Int("size")),
			Supersample: int(cmd.Int("supersample")),
		})
		previewPath := filepath.Join(outDir, doc.Name+".webp")
		if doc.Name == "" {
			previewPath = filepath.Join(outDir, "preview.webp")
		}
		if err := preview.WriteWebP(previewPath, img); err != nil {
			return err
		}
		log.Info("preview written", zap.String("path", previewPath))
	}
	return nil
}

func runCoil(_ context.Context, cmd *cli.Command) error {
	_, res, log, err := loadScene(cmd)
	if err != nil {
		return err
	}

	name := cmd.String("helix")
	st, ok := res.Helices[name]
	if !ok {
		return fmt.Errorf("scene has no helix %q", name)
	}

	track, err := scene.RecordCoil(res.Tree, name, st,
		cmd.Float64("amount"), int(cmd.Int("steps")), int(cmd.Int("frames-per-step")))
	if err != nil {
		return err
	}

	outPath := cmd.String("out")
	if err := scene.WriteCoilTrack(outPath, track); err != nil {
		return err
	}
	log.Info("coil track written",
		zap.String("helix", name),
		zap.Int("keys", len(track.Keys)),
		zap.String("path", outPath))
	return nil
}

func main() {
	app := &cli.Command{
		Name:            "helixgen",
		Usage:           "generate nucleic-acid helix and molecule transform hierarchies",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scene", Aliases: []string{"s"}, Usage: "scene description `FILE` (YAML)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Build the scene and write the world-transform manifest",
				Action: runBuild,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "output `DIR`"},
					&cli.BoolFlag{Name: "preview", Usage: "also write a schematic WebP snapshot"},
					&cli.IntFlag{Name: "size", Value: 512, Usage: "preview edge in `PIXELS`"},
					&cli.IntFlag{Name: "supersample", Value: 2, Usage: "preview supersampling `FACTOR`"},
				},
			},
			{
				Name:   "coil",
				Usage:  "Sample a coil/uncoil trajectory for one helix as keyframes",
				Action: runCoil,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "helix", Usage: "helix `NAME` from the scene", Required: true},
					&cli.Float64Flag{Name: "amount", Value: -1, Usage: "coil amount (-1 fully unwinds)"},
					&cli.IntFlag{Name: "steps", Value: 5, Usage: "sampling steps up and back down"},
					&cli.IntFlag{Name: "frames-per-step", Value: 30, Usage: "host frames between samples"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "coil.json", Usage: "output `FILE`"},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
