// Package binvox reads binvox voxel grids for trivial voxel counting: the
// occupied-voxel count times the voxel volume approximates the volume of the
// voxelized solid. Nothing beyond counting is supported.
package binvox

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Grid holds the header fields of a binvox file plus the number of occupied
// voxels. Voxel data itself is not retained.
type Grid struct {
	NX, NY, NZ int
	TX, TY, TZ float64
	Scale      float64
	Occupied   int
}

// Parse reads a binvox file from disk.
func Parse(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a binvox stream: a text header (#binvox 1, dim, translate,
// scale, data) followed by run-length encoded (value, count) byte pairs.
func Decode(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read binvox header: %w", err)
	}
	if !strings.HasPrefix(first, "#binvox") {
		return nil, fmt.Errorf("not a binvox file: header starts with %q", strings.TrimSpace(first))
	}

	grid := &Grid{Scale: 1.0}
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unexpected end of binvox header: %w", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "dim":
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed dim line: %q", strings.TrimSpace(line))
			}
			if _, err := fmt.Sscan(fields[1]+" "+fields[2]+" "+fields[3], &grid.NX, &grid.NY, &grid.NZ); err != nil {
				return nil, fmt.Errorf("malformed dim line: %w", err)
			}
		case "translate":
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed translate line: %q", strings.TrimSpace(line))
			}
			if _, err := fmt.Sscan(fields[1]+" "+fields[2]+" "+fields[3], &grid.TX, &grid.TY, &grid.TZ); err != nil {
				return nil, fmt.Errorf("malformed translate line: %w", err)
			}
		case "scale":
			if len(fields) != 2 {
				return nil, fmt.Errorf("malformed scale line: %q", strings.TrimSpace(line))
			}
			if _, err := fmt.Sscan(fields[1], &grid.Scale); err != nil {
				return nil, fmt.Errorf("malformed scale line: %w", err)
			}
		case "data":
			return decodeData(br, grid)
		default:
			return nil, fmt.Errorf("unknown binvox header line: %q", strings.TrimSpace(line))
		}
	}
}

// decodeData counts occupied voxels from the RLE byte pairs.
func decodeData(br *bufio.Reader, grid *Grid) (*Grid, error) {
	total := grid.NX * grid.NY * grid.NZ
	if total <= 0 {
		return nil, fmt.Errorf("binvox header missing dim line")
	}

	read := 0
	for read < total {
		value, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("truncated voxel data after %d of %d voxels", read, total)
		}
		count, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("truncated voxel data after %d of %d voxels", read, total)
		}
		if count == 0 {
			return nil, fmt.Errorf("zero-length voxel run after %d of %d voxels", read, total)
		}
		read += int(count)
		if value != 0 {
			grid.Occupied += int(count)
		}
	}
	if read != total {
		return nil, fmt.Errorf("voxel runs cover %d voxels, grid holds %d", read, total)
	}
	return grid, nil
}

// VoxelEdge returns the edge length of one voxel in model units. The binvox
// convention normalizes the model into a cube of edge Scale spanning the
// longest grid dimension.
func (g *Grid) VoxelEdge() float64 {
	max := g.NX
	if g.NY > max {
		max = g.NY
	}
	if g.NZ > max {
		max = g.NZ
	}
	if max == 0 {
		return 0
	}
	return g.Scale / float64(max)
}

// Volume returns the occupied volume in cubic model units.
func (g *Grid) Volume() float64 {
	edge := g.VoxelEdge()
	return float64(g.Occupied) * edge * edge * edge
}
