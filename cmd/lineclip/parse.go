package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// parsePair parses "x0,y0,x1,y1" into two points
func parsePair(value string) (geometry.Point, geometry.Point, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("expected x0,y0,x1,y1, got %q", value)
	}

	var v [4]float32
	for i, part := range parts {
		f, err := parseFloat(part)
		if err != nil {
			return geometry.Point{}, geometry.Point{}, err
		}
		v[i] = f
	}
	return geometry.NewPoint(v[0], v[1]), geometry.NewPoint(v[2], v[3]), nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return float32(f), nil
}
