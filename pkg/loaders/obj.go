// Package loaders reads on-disk mesh assets into renderable geometry.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ file and returns its faces as triangles
// sharing the given material. Polygons are fan-triangulated. Vertex normals
// and texture coordinates are carried through when the file supplies them.
// Malformed files fail fast, before any rendering starts.
func LoadOBJ(path string, material core.Material) ([]*geometry.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	triangles, err := ParseOBJ(f, material)
	if err != nil {
		return nil, fmt.Errorf("obj: parse %s: %w", path, err)
	}
	return triangles, nil
}

// ParseOBJ parses OBJ data from a reader
func ParseOBJ(r io.Reader, material core.Material) ([]*geometry.Triangle, error) {
	var (
		positions []core.Vec3
		normals   []core.Vec3
		uvs       []core.Vec2
		triangles []*geometry.Triangle
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord: expected at least 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: texcoord: malformed component", lineNo)
			}
			uvs = append(uvs, core.NewVec2(u, v))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with fewer than 3 vertices", lineNo)
			}

			corners := make([]faceCorner, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				corner, err := parseFaceCorner(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, corner)
			}

			// Fan triangulation around the first corner.
			for i := 1; i < len(corners)-1; i++ {
				tri := buildTriangle(positions, normals, uvs, corners[0], corners[i], corners[i+1], material)
				triangles = append(triangles, tri)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return triangles, nil
}

type faceCorner struct {
	position int
	uv       int // -1 when absent
	normal   int // -1 when absent
}

// parseFaceCorner parses one "v", "v/vt", "v//vn" or "v/vt/vn" reference,
// resolving 1-based and negative (relative) indices.
func parseFaceCorner(ref string, numPositions, numUVs, numNormals int) (faceCorner, error) {
	parts := strings.Split(ref, "/")
	corner := faceCorner{uv: -1, normal: -1}

	idx, err := resolveIndex(parts[0], numPositions)
	if err != nil {
		return corner, fmt.Errorf("face vertex %q: %w", ref, err)
	}
	corner.position = idx

	if len(parts) > 1 && parts[1] != "" {
		idx, err := resolveIndex(parts[1], numUVs)
		if err != nil {
			return corner, fmt.Errorf("face texcoord %q: %w", ref, err)
		}
		corner.uv = idx
	}

	if len(parts) > 2 && parts[2] != "" {
		idx, err := resolveIndex(parts[2], numNormals)
		if err != nil {
			return corner, fmt.Errorf("face normal %q: %w", ref, err)
		}
		corner.normal = idx
	}

	return corner, nil
}

func resolveIndex(field string, count int) (int, error) {
	raw, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("malformed index: %w", err)
	}

	idx := raw - 1
	if raw < 0 {
		idx = count + raw
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %d out of range (have %d)", raw, count)
	}
	return idx, nil
}

func buildTriangle(positions, normals []core.Vec3, uvs []core.Vec2, a, b, c faceCorner, material core.Material) *geometry.Triangle {
	vertices := [3]core.Vec3{positions[a.position], positions[b.position], positions[c.position]}

	var triNormals *[3]core.Vec3
	if a.normal >= 0 && b.normal >= 0 && c.normal >= 0 {
		triNormals = &[3]core.Vec3{normals[a.normal], normals[b.normal], normals[c.normal]}
	}

	var triUVs *[3]core.Vec2
	if a.uv >= 0 && b.uv >= 0 && c.uv >= 0 {
		triUVs = &[3]core.Vec2{uvs[a.uv], uvs[b.uv], uvs[c.uv]}
	}

	return geometry.NewSmoothTriangle(vertices, triNormals, triUVs, material)
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}

	var components [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("malformed component %q", fields[i])
		}
		components[i] = value
	}

	return core.NewVec3(components[0], components[1], components[2]), nil
}
