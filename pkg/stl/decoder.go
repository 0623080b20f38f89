package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mcanet/stlvolume/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50 // 12 normal + 3*12 vertices + 2 attribute bytes
)

// Parse reads an STL file and returns a Model.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeBytes(data)
}

// Decode reads an STL model from r, detecting the format from content.
func Decode(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return DecodeBytes(data)
}

// Format identifies the encoding of an STL byte stream.
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

// DecodeBytes decodes a complete STL byte stream. The format is decided
// once via DetectFormat.
func DecodeBytes(data []byte) (*Model, error) {
	if DetectFormat(data) == FormatASCII {
		return decodeASCII(data)
	}
	return decodeBinary(data)
}

// DetectFormat decides the encoding by an exact keyword check: if the first
// non-whitespace bytes spell the token "solid" (delimited by whitespace or
// end of input), the stream is ASCII, otherwise binary. A binary header that
// merely begins with ASCII-looking bytes such as "solidworks" is therefore
// still classified as binary; a loose prefix check would misfire on it.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("solid")) {
		return FormatBinary
	}
	if len(trimmed) == len("solid") {
		return FormatASCII
	}
	switch trimmed[len("solid")] {
	case ' ', '\t', '\r', '\n':
		return FormatASCII
	}
	return FormatBinary
}

// decodeBinary parses a binary STL stream: an 80-byte header, a little-endian
// uint32 triangle count, then count fixed-size records.
func decodeBinary(data []byte) (*Model, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, binaryError(MalformedHeader, int64(len(data)),
			"binary STL requires at least %d header bytes, have %d", binaryHeaderSize+4, len(data))
	}

	model := NewModel("")
	header := string(bytes.TrimRight(data[:binaryHeaderSize], "\x00 "))
	if header != "" {
		model.Name = header
	}

	count := binary.LittleEndian.Uint32(data[binaryHeaderSize : binaryHeaderSize+4])
	need := int64(binaryHeaderSize+4) + int64(count)*binaryTriangleSize
	if int64(len(data)) < need {
		return nil, binaryError(TruncatedData, int64(len(data)),
			"header declares %d triangles (%d bytes), input ends after %d bytes", count, need, len(data))
	}

	model.Triangles = make([]geometry.Triangle, 0, count)
	offset := binaryHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		normal := readVec32(data, offset)
		v1 := readVec32(data, offset+12)
		v2 := readVec32(data, offset+24)
		v3 := readVec32(data, offset+36)
		// 2-byte attribute count at offset+48 is skipped.
		model.AddTriangle(geometry.NewTriangle(normal, v1, v2, v3))
		offset += binaryTriangleSize
	}

	model.TrailingBytes = len(data) - offset
	return model, nil
}

// readVec32 reads three consecutive little-endian float32 values.
func readVec32(data []byte, offset int) r3.Vec {
	return r3.Vec{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[offset+4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[offset+8:]))),
	}
}

// decodeASCII parses an ASCII STL stream line by line.
func decodeASCII(data []byte) (*Model, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	model := NewModel("")

	var currentNormal r3.Vec
	var vertices []r3.Vec
	inFacet := false
	terminated := false
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if inFacet {
				return nil, asciiError(UnterminatedBlock, line, "facet opened before previous facet was closed")
			}
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, asciiError(InvalidNumericToken, line, "facet line requires 'normal' and 3 components")
			}
			n, err := parseVertex(fields[2:5])
			if err != nil {
				return nil, asciiError(InvalidNumericToken, line, "facet normal: %v", err)
			}
			currentNormal = n
			inFacet = true

		case "vertex":
			if !inFacet {
				return nil, asciiError(UnterminatedBlock, line, "vertex outside facet block")
			}
			if len(fields) < 4 {
				return nil, asciiError(InvalidNumericToken, line, "vertex requires 3 coordinates, have %d", len(fields)-1)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, asciiError(InvalidNumericToken, line, "vertex: %v", err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if !inFacet {
				return nil, asciiError(UnterminatedBlock, line, "endfacet without facet")
			}
			if len(vertices) != 3 {
				return nil, asciiError(UnterminatedBlock, line, "facet closed with %d vertices, want 3", len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
			inFacet = false

		case "endsolid":
			if inFacet {
				return nil, asciiError(UnterminatedBlock, line, "endsolid inside open facet block")
			}
			terminated = true

		case "outer", "endloop":
			// Loop markers carry no data.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	if inFacet {
		return nil, asciiError(UnterminatedBlock, line, "facet block not closed before end of input")
	}
	if !terminated {
		return nil, asciiError(UnterminatedBlock, line, "missing endsolid")
	}

	return model, nil
}

// parseVertex parses exactly three float fields.
func parseVertex(fields []string) (r3.Vec, error) {
	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("%q is not a number", f)
		}
		coords[i] = v
	}
	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
