package main

import (
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Rajdeep2820/quadtree"
)

// This program measures range-query cost against a naive scan over a
// range of population sizes and renders the comparison as an
// interactive HTML chart and a static PNG.

type box struct {
	rect quadtree.Rect
}

func (b *box) Bounds() quadtree.Rect { return b.rect }

type sample struct {
	size   int
	treeUs float64
	loopUs float64
}

func generate(rng *rand.Rand, count int, world quadtree.Rect) []*box {
	boxes := make([]*box, count)
	for i := range boxes {
		boxes[i] = &box{rect: quadtree.Rect{
			X:      world.X + rng.Float64()*(world.Width-10),
			Y:      world.Y + rng.Float64()*(world.Height-10),
			Width:  2 + rng.Float64()*8,
			Height: 2 + rng.Float64()*8,
		}}
	}
	return boxes
}

func measure(size int, world quadtree.Rect, capacity, queryCount int) sample {
	rng := rand.New(rand.NewSource(1313131313))
	boxes := generate(rng, size, world)

	tree := quadtree.New(world, capacity)
	for _, b := range boxes {
		tree.Insert(b)
	}

	ranges := make([]quadtree.Rect, queryCount)
	for i := range ranges {
		ranges[i] = quadtree.Rect{
			X:      world.X + rng.Float64()*(world.Width-500),
			Y:      world.Y + rng.Float64()*(world.Height-500),
			Width:  500,
			Height: 500,
		}
	}

	start := time.Now()
	candidates := 0
	for _, r := range ranges {
		candidates += len(tree.Query(r))
	}
	treeUs := float64(time.Since(start).Microseconds()) / float64(len(ranges))

	start = time.Now()
	scanned := 0
	for _, r := range ranges {
		for _, b := range boxes {
			if r.Intersects(b.rect) {
				scanned++
			}
		}
	}
	loopUs := float64(time.Since(start).Microseconds()) / float64(len(ranges))

	if candidates != scanned {
		log.Warnln("tree and naive scan disagree:", candidates, "vs", scanned)
	}

	fmt.Printf("%8d objects: tree %8.1f µs/query, naive scan %8.1f µs/query (%d candidates/query)\n",
		size, treeUs, loopUs, candidates/len(ranges))

	return sample{size: size, treeUs: treeUs, loopUs: loopUs}
}

func renderHTML(samples []sample, path string) error {
	xAxis := make([]string, len(samples))
	treeSeries := make([]opts.LineData, len(samples))
	loopSeries := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xAxis[i] = strconv.Itoa(s.size)
		treeSeries[i] = opts.LineData{Value: s.treeUs}
		loopSeries[i] = opts.LineData{Value: s.loopUs}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Quadtree Range Query", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Range query cost", Subtitle: "quadtree vs naive scan, microseconds per query"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "objects"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs/query"}),
	)
	line.SetXAxis(xAxis).
		AddSeries("quadtree", treeSeries).
		AddSeries("naive scan", loopSeries)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

func renderPNG(samples []sample, path string) error {
	p := plot.New()
	p.Title.Text = "Range query cost"
	p.X.Label.Text = "objects"
	p.Y.Label.Text = "µs/query"

	treePts := make(plotter.XYs, len(samples))
	loopPts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		treePts[i] = plotter.XY{X: float64(s.size), Y: s.treeUs}
		loopPts[i] = plotter.XY{X: float64(s.size), Y: s.loopUs}
	}

	treeLine, err := plotter.NewLine(treePts)
	if err != nil {
		return err
	}
	treeLine.Color = color.RGBA{G: 128, A: 255}
	treeLine.Width = vg.Points(1)
	p.Add(treeLine)
	p.Legend.Add("quadtree", treeLine)

	loopLine, err := plotter.NewLine(loopPts)
	if err != nil {
		return err
	}
	loopLine.Color = color.RGBA{R: 255, A: 255}
	loopLine.Width = vg.Points(1)
	p.Add(loopLine)
	p.Legend.Add("naive scan", loopLine)

	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

func main() {
	sizes := flag.String("sizes", "1000,10000,100000", "comma-separated object counts to measure")
	queryCount := flag.Int("queries", 200, "number of query rectangles per size")
	worldSize := flag.Float64("world", 10_000, "width and height of the square world")
	capacity := flag.Int("capacity", 8, "node capacity of the tree")
	htmlPath := flag.String("html", "benchmark.html", "output path for the interactive chart")
	pngPath := flag.String("png", "benchmark.png", "output path for the static chart")
	flag.Parse()

	if *queryCount < 1 {
		log.Fatalln("queries must be at least 1")
	}

	world := quadtree.Rect{Width: *worldSize, Height: *worldSize}

	var samples []sample
	for _, field := range strings.Split(*sizes, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			log.Fatalln("bad size:", field)
		}
		samples = append(samples, measure(size, world, *capacity, *queryCount))
	}

	if err := renderHTML(samples, *htmlPath); err != nil {
		log.Fatalln("render html:", err)
	}
	if err := renderPNG(samples, *pngPath); err != nil {
		log.Fatalln("render png:", err)
	}
	fmt.Println("Wrote", *htmlPath, "and", *pngPath)
}
