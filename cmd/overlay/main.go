package main

import (
	"flag"
	"fmt"
	"os"

	"overlaybot/compiler"
	"overlaybot/config"
	"overlaybot/fonts"
	"overlaybot/types"
	"overlaybot/video"
)

func main() {
	configPath := flag.String("config", "", "Overlay config (.json, .yaml or .yml)")
	input := flag.String("in", "", "Input video; overrides the config")
	output := flag.String("out", "", "Output video; overrides the config")
	printOnly := flag.Bool("print", false, "Print the filter chain without rendering")
	width := flag.Int("width", 0, "Frame width for -print (probed from -in when 0)")
	height := flag.Int("height", 0, "Frame height for -print (probed from -in when 0)")
	fontsDir := flag.String("fonts", "", "Fonts directory; overrides FONTS_DIR")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("-config is required"))
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if *fontsDir != "" {
		cfg.FontsDir = *fontsDir
	}

	req, err := config.LoadRenderRequest(*configPath)
	if err != nil {
		exit(err)
	}
	if *input != "" {
		req.Input = *input
	}
	if *output != "" {
		req.Output = *output
	}

	registry, err := fonts.NewRegistry(cfg.FontsDir)
	if err != nil {
		exit(err)
	}
	prober := video.NewProber()
	comp := compiler.New(prober, registry, video.NewRenderer(), compiler.Options{DefaultFont: cfg.DefaultFont})

	if *printOnly {
		dims := types.Dimensions{Width: *width, Height: *height}
		if dims.Width <= 0 || dims.Height <= 0 {
			if req.Input == "" {
				exit(fmt.Errorf("-print needs -width/-height or an input video"))
			}
			if dims, err = prober.Dimensions(req.Input); err != nil {
				exit(err)
			}
		}
		res, err := comp.Compile(dims.Width, dims.Height, req.Overlays)
		if err != nil {
			exit(err)
		}
		fmt.Println(renderReport(req, res))
		fmt.Println(res.Filter)
		return
	}

	if req.Input == "" || req.Output == "" {
		exit(fmt.Errorf("rendering needs both an input and an output (-in / -out)"))
	}
	res, err := comp.Render(req)
	if err != nil {
		exit(err)
	}
	fmt.Println(renderReport(req, res))
	fmt.Println(statusStyle.Render("✅ Rendered " + req.Output))
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, renderError(err))
	os.Exit(1)
}
