package main

import (
	"fmt"
	"os"

	"royalty-viz/internal/features/report"
	"royalty-viz/internal/royalty"

	"github.com/spf13/pflag"
)

// go run etc/tools/preview_chart.go --chart top_artists
// in etc/charts/top_artists.png
func main() {
	chart := pflag.String("chart", "executive_dashboard", "artifact file name to render")
	dir := pflag.String("dir", "etc/charts", "output directory")
	dpi := pflag.Float64("dpi", 100, "preview resolution")
	seed := pflag.Uint64("seed", 42, "dataset seed")
	pflag.Parse()

	a, ok := report.Lookup(*chart)
	if !ok {
		fmt.Printf("Unknown chart %q\n", *chart)
		os.Exit(1)
	}

	fmt.Printf("Generating %s...\n", a.File)

	r, err := report.NewRenderer(*dir, *dpi, "")
	if err != nil {
		fmt.Printf("Error loading fonts: %v\n", err)
		os.Exit(1)
	}
	path, err := r.Render(royalty.Generate(*seed, royalty.DefaultRecords), a)
	if err != nil {
		fmt.Printf("Error generating chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chart generated successfully: %s\n", path)
	fmt.Println("Open the file to see the result!")
}
