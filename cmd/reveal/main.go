// Command reveal generates image reveal coverings and exports them.
//
//	reveal generate --kind triangles -n 20 --width 800 --height 600 -o covering.svg
//	reveal triangulate < points.txt
//	reveal settings --config settings.yaml
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/reveal"
	"github.com/osuushi/reveal/config"
	"github.com/osuushi/reveal/cover"
	"github.com/osuushi/reveal/delaunay"
	"github.com/osuushi/reveal/geom"
	"github.com/osuushi/reveal/render"
)

var (
	app     = kingpin.New("reveal", "Coverings for an image reveal game.")
	noColor = app.Flag("no-color", "Disable coloured output.").Bool()
	verbose = app.Flag("verbose", "Print debug detail.").Short('v').Bool()

	generateCmd = app.Command("generate", "Generate a covering and write it out.")
	configPath  = app.Flag("config", "Settings file (YAML). Flags override it.").Short('c').ExistingFile()
	kindFlag    = generateCmd.Flag("kind", "Covering kind: rectangles or triangles.").Short('k').String()
	countFlag   = generateCmd.Flag("count", "Approximate number of shapes.").Short('n').PlaceHolder("N").String()
	widthFlag   = generateCmd.Flag("width", "Canvas width.").PlaceHolder("W").String()
	heightFlag  = generateCmd.Flag("height", "Canvas height.").PlaceHolder("H").String()
	seedFlag    = generateCmd.Flag("seed", "Random seed. 0 picks one from the clock.").PlaceHolder("SEED").String()
	shuffleFlag = generateCmd.Flag("shuffle", "Randomize the reveal order (true or false).").PlaceHolder("BOOL").String()
	formatFlag  = generateCmd.Flag("format", "Output format: png, svg, pdf, json or yaml. Defaults to the output extension, else json.").Short('f').String()
	outputFlag  = generateCmd.Flag("output", "Output file. Defaults to stdout.").Short('o').String()
	scaleFlag   = generateCmd.Flag("scale", "Pixels per canvas unit for png output.").Default("1").Float64()
	revealFlag  = generateCmd.Flag("reveal", "Leave the first N shapes out of png, svg and pdf output.").Default("0").Int()
	previewFlag = generateCmd.Flag("preview", "Show png output inline in the terminal.").Bool()

	triangulateCmd = app.Command("triangulate", `Triangulate points read from stdin, one "x y" per line, and print index triples.`)

	settingsCmd = app.Command("settings", "Print the effective settings as YAML.")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("reveal: ")

	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case generateCmd.FullCommand():
		err = generate()
	case triangulateCmd.FullCommand():
		err = triangulate(os.Stdin, os.Stdout)
	case settingsCmd.FullCommand():
		err = printSettings(os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func colors() aurora.Aurora {
	return aurora.NewAurora(!*noColor)
}

func loadSettings() (config.Settings, error) {
	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			return settings, err
		}
	}
	return applyFlags(settings)
}

// Flags are strings so that an unset flag never clobbers the settings file.
func applyFlags(s config.Settings) (config.Settings, error) {
	var err error
	if *kindFlag != "" {
		s.CoveringType = *kindFlag
	}
	if *countFlag != "" {
		if s.CoveringCount, err = strconv.Atoi(*countFlag); err != nil {
			return s, errors.Wrap(err, "--count")
		}
	}
	if *widthFlag != "" {
		if s.CanvasWidth, err = strconv.ParseFloat(*widthFlag, 64); err != nil {
			return s, errors.Wrap(err, "--width")
		}
	}
	if *heightFlag != "" {
		if s.CanvasHeight, err = strconv.ParseFloat(*heightFlag, 64); err != nil {
			return s, errors.Wrap(err, "--height")
		}
	}
	if *seedFlag != "" {
		if s.Seed, err = strconv.ParseInt(*seedFlag, 10, 64); err != nil {
			return s, errors.Wrap(err, "--seed")
		}
	}
	if *shuffleFlag != "" {
		if s.Shuffle, err = strconv.ParseBool(*shuffleFlag); err != nil {
			return s, errors.Wrap(err, "--shuffle")
		}
	}
	return s, nil
}

func outputFormat() (render.Format, error) {
	if *formatFlag != "" {
		return render.ParseFormat(*formatFlag)
	}
	if ext := filepath.Ext(*outputFlag); ext != "" {
		return render.ParseFormat(ext)
	}
	return render.JSON, nil
}

func generate() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	req, err := settings.Request()
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	polygons, err := reveal.LoadCovering(req, reveal.NewSource(seed), settings.Shuffle)
	if err != nil {
		return err
	}

	opts := render.Options{
		Width:  req.Width,
		Height: req.Height,
		Scale:  *scaleFlag,
		Reveal: *revealFlag,
	}
	if err := writeOutput(*outputFlag, format, polygons, opts); err != nil {
		return err
	}

	stats := cover.Summarize(polygons)
	au := colors()
	log.Printf("%s %d %s on %vx%v, seed %d, area %.2f (min %.2f, max %.2f)",
		au.Green("generated"), au.Bold(stats.Count), req.Kind, req.Width, req.Height,
		seed, stats.TotalArea, stats.MinArea, stats.MaxArea)

	if *previewFlag && format == render.PNG && *outputFlag != "" {
		render.Preview(*outputFlag, os.Stdout)
	}
	return nil
}

// Writes to the file at path, or to stdout when path is empty.
func writeOutput(path string, format render.Format, polygons []geom.Polygon, opts render.Options) error {
	if path == "" {
		return render.Write(os.Stdout, format, polygons, opts)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	return writeAndClose(f, format, polygons, opts)
}

// A close error counts as a failed write.
func writeAndClose(wc io.WriteCloser, format render.Format, polygons []geom.Polygon, opts render.Options) error {
	if err := render.Write(wc, format, polygons, opts); err != nil {
		wc.Close()
		return err
	}
	return errors.Wrap(wc.Close(), "closing output")
}

func triangulate(in io.Reader, out io.Writer) error {
	points, err := readPoints(in)
	if err != nil {
		return err
	}
	tr, err := delaunay.New(points)
	if err != nil {
		return err
	}
	au := colors()
	log.Printf("read %d points, %s", len(points), au.Cyan(fmt.Sprintf("%d triangles", len(tr.Triples))))
	for _, t := range tr.Triangles() {
		if *verbose {
			log.Println(t)
		}
		fmt.Fprintf(out, "%d %d %d\n", t.Indices[0], t.Indices[1], t.Indices[2])
	}
	return nil
}

func printSettings(out io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return settings.Save(out)
}
