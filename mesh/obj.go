package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/disasterengine/canvas/math3d"
)

// ErrMalformed is returned when a Wavefront OBJ stream cannot be parsed.
var ErrMalformed = errors.New("mesh: malformed obj")

// ParseOBJ reads vertex positions and faces from a Wavefront OBJ stream.
// Polygons are fan-triangulated; texture and normal references are
// ignored; negative (relative) indices are supported.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			idx, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Indices = append(m.Indices, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read obj: %w", err)
	}
	return m, nil
}

func parseVertex(f []string) (math3d.Vec3, error) {
	if len(f) < 3 {
		return math3d.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates", ErrMalformed)
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		xyz[i] = v
	}
	return math3d.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parseFace(f []string, nverts int) ([]int, error) {
	if len(f) < 3 {
		return nil, fmt.Errorf("%w: face needs 3 vertices", ErrMalformed)
	}
	idx := make([]int, 0, len(f))
	for _, tok := range f {
		ref, _, _ := strings.Cut(tok, "/")
		n, err := strconv.Atoi(ref)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: bad vertex reference %q", ErrMalformed, tok)
		}
		if n < 0 {
			n = nverts + n
		} else {
			n--
		}
		if n < 0 || n >= nverts {
			return nil, fmt.Errorf("%w: vertex reference %q out of range", ErrMalformed, tok)
		}
		idx = append(idx, n)
	}
	return idx, nil
}
