// Command polybool is a thin demonstration wrapper over the boolcore
// engine. It reads two polygons (one comma-separated x,y vertex per line,
// blank line between the two polygons) from stdin or a
// file, runs one of the engine's public operations, and prints the result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-polybool/polybool/boolcore"
	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

func main() {
	op := flag.String("op", "union", "operation: union, intersect, subtract, inner-clip, outer-clip, intersections")
	input := flag.String("in", "", "input file (default: stdin)")
	epsilon := flag.Float64("epsilon", geom.DefaultEpsilon, "oracle tolerance")
	flag.Parse()

	if err := run(*op, *input, *epsilon, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "polybool:", err)
		os.Exit(1)
	}
}

func run(op, inputPath string, epsilon float64, out io.Writer) error {
	cfg, err := geom.NewConfig(epsilon)
	if err != nil {
		return err
	}

	r := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	rings, err := readRings(r)
	if err != nil {
		return err
	}
	if len(rings) != 2 {
		return fmt.Errorf("expected exactly two polygons, got %d", len(rings))
	}

	a := buildPolygon(rings[0], cfg)
	b := buildPolygon(rings[1], cfg)

	switch op {
	case "union":
		return runFull(boolcore.Unify, a, b, out)
	case "intersect":
		return runFull(boolcore.Intersect, a, b, out)
	case "subtract":
		return runFull(boolcore.Subtract, a, b, out)
	case "inner-clip":
		edgesA, edgesB := boolcore.InnerClip(a, b)
		printEdges(out, "A", a, edgesA)
		printEdges(out, "B", b, edgesB)
		return nil
	case "outer-clip":
		edgesA := boolcore.OuterClip(a, b)
		printEdges(out, "A", a, edgesA)
		return nil
	case "intersections":
		ptsA, ptsB := boolcore.CalculateIntersections(a, b)
		printPoints(out, "A", ptsA)
		printPoints(out, "B", ptsB)
		return nil
	default:
		return fmt.Errorf("unknown op %q", op)
	}
}

func runFull(fn func(a, b *polystore.Polygon) (*polystore.Polygon, error), a, b *polystore.Polygon, out io.Writer) error {
	result, err := fn(a, b)
	if err != nil {
		return err
	}
	printPolygon(out, result)
	return nil
}

// readRings parses stdin/file input into vertex rings, one ring per polygon,
// polygons separated by a blank line.
func readRings(r io.Reader) ([][]geom.Point, error) {
	var rings [][]geom.Point
	var cur []geom.Point

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(cur) > 0 {
				rings = append(rings, cur)
				cur = nil
			}
			continue
		}
		pt, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		cur = append(cur, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cur) > 0 {
		rings = append(rings, cur)
	}
	return rings, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("malformed vertex %q", line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.NewPoint(x, y), nil
}

func buildPolygon(verts []geom.Point, cfg geom.Config) *polystore.Polygon {
	p := polystore.New(cfg)
	shapes := make([]geom.Shape, len(verts))
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		shapes[i] = geom.NewSegment(v, next)
	}
	p.AddFaceFromShapes(shapes)
	return p
}

func printPolygon(out io.Writer, p *polystore.Polygon) {
	for _, face := range p.Faces() {
		if p.IsEmpty(face) {
			continue
		}
		fmt.Fprintf(out, "face %d:\n", face)
		for _, id := range p.EdgesOf(face) {
			pt := p.Edge(id).Shape.Start()
			fmt.Fprintf(out, "%g,%g\n", pt.X(), pt.Y())
		}
		fmt.Fprintln(out)
	}
}

func printEdges(out io.Writer, label string, p *polystore.Polygon, ids []polystore.EdgeID) {
	fmt.Fprintf(out, "%s:\n", label)
	for _, id := range ids {
		s, e := p.Edge(id).Shape.Start(), p.Edge(id).Shape.End()
		fmt.Fprintf(out, "%g,%g -> %g,%g\n", s.X(), s.Y(), e.X(), e.Y())
	}
	fmt.Fprintln(out)
}

func printPoints(out io.Writer, label string, pts []geom.Point) {
	fmt.Fprintf(out, "%s:\n", label)
	for _, pt := range pts {
		fmt.Fprintf(out, "%g,%g\n", pt.X(), pt.Y())
	}
	fmt.Fprintln(out)
}
