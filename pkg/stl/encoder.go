package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// binaryRecord mirrors the fixed 50-byte triangle record of a binary STL
// file: normal, three vertices, attribute byte count.
type binaryRecord struct {
	N, V1, V2, V3 [3]float32
	Attr          uint16
}

// EncodeBinary writes the model in binary STL format.
func EncodeBinary(w io.Writer, m *Model) error {
	var header [binaryHeaderSize]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("error writing triangle count: %w", err)
	}

	for i, t := range m.Triangles {
		rec := binaryRecord{
			N:  vec32(t.Normal.X, t.Normal.Y, t.Normal.Z),
			V1: vec32(t.V1.X, t.V1.Y, t.V1.Z),
			V2: vec32(t.V2.X, t.V2.Y, t.V2.Z),
			V3: vec32(t.V3.X, t.V3.Y, t.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("error writing triangle %d: %w", i, err)
		}
	}
	return nil
}

func vec32(x, y, z float64) [3]float32 {
	return [3]float32{float32(x), float32(y), float32(z)}
}

// EncodeASCII writes the model in ASCII STL format.
func EncodeASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	name := m.Name
	if name == "" {
		name = "model"
	}
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		n := t.Normal
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		fmt.Fprintf(bw, "      vertex %g %g %g\n", t.V1.X, t.V1.Y, t.V1.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", t.V2.X, t.V2.Y, t.V2.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", t.V3.X, t.V3.Y, t.V3.Z)
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing ASCII STL: %w", err)
	}
	return nil
}
