// Command polyline is a developer tool for inspecting polyline
// encode/decode round trips from the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	polylineffi "github.com/flatroute/polyline-ffi"
)

func main() {
	var (
		decodeArg   = flag.String("decode", "", "Polyline text to decode")
		encodeArg   = flag.String("encode", "", "Coordinate pairs to encode (\"x1,y1 x2,y2 ...\")")
		precision   = flag.Uint("precision", 5, "Precision: 5 for Google, 6 for OSRM/Valhalla polylines")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			polylineffi.SetLogger(l)
			defer l.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(uint32(*precision)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *decodeArg == "" && *encodeArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: polyline -decode <text> [-precision 5|6]")
		fmt.Fprintln(os.Stderr, "       polyline -encode \"x1,y1 x2,y2 ...\" [-precision 5|6]")
		fmt.Fprintln(os.Stderr, "       polyline -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*decodeArg, *encodeArg, uint32(*precision)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(decodeArg, encodeArg string, precision uint32) error {
	// Keep output plain when piped.
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	if decodeArg != "" {
		coords, err := polylineffi.DecodeCoords(decodeArg, precision)
		if err != nil {
			return err
		}
		if styled {
			fmt.Println(resultStyle.Render(fmt.Sprintf("%d coordinate pair(s)", len(coords))))
		}
		for _, c := range coords {
			fmt.Printf("%v,%v\n", c[0], c[1])
		}
	}

	if encodeArg != "" {
		coords, err := parseCoords(encodeArg)
		if err != nil {
			return err
		}
		s, err := polylineffi.EncodeCoords(coords, precision)
		if err != nil {
			return err
		}
		if styled {
			fmt.Println(resultStyle.Render(s))
		} else {
			fmt.Println(s)
		}
	}

	return nil
}

// parseCoords parses whitespace-separated "x,y" pairs.
func parseCoords(s string) ([][]float64, error) {
	fields := strings.Fields(s)
	coords := make([][]float64, 0, len(fields))
	for _, f := range fields {
		xs, ys, found := strings.Cut(f, ",")
		if !found {
			return nil, fmt.Errorf("coordinate %q: expected x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", f, err)
		}
		coords = append(coords, []float64{x, y})
	}
	return coords, nil
}
