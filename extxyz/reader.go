// SPDX-License-Identifier: MIT

package extxyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/occuprob/partition"
)

// Frame is one structure of an Extended XYZ file.
type Frame struct {
	Symbols   []string
	Positions [][3]float64

	// Info holds every comment-line key, lower-cased, as parsed.
	Info map[string]any

	// Isomer is the decoded physical record; Moments are computed from
	// Symbols and Positions unless the header provides them.
	Isomer partition.Isomer
}

// lineReader counts lines for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.line++

	return r.sc.Text(), true
}

// Read parses every frame of r.
// Errors: ErrEmpty, ErrMalformed, ErrMissingKey, ErrUnknownElement, each
// wrapped with the frame index and line number; I/O errors unchanged.
func Read(r io.Reader) ([]Frame, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	lr.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var frames []Frame
	for {
		countLine, ok := lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(countLine) == "" {
			continue
		}
		f, err := readFrame(lr, countLine)
		if err != nil {
			return nil, frameErrorf(len(frames), lr.line, err)
		}
		frames = append(frames, f)
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrEmpty
	}

	return frames, nil
}

func readFrame(lr *lineReader, countLine string) (Frame, error) {
	var f Frame
	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || n <= 0 {
		return f, fmt.Errorf("%w: atom count %q", ErrMalformed, strings.TrimSpace(countLine))
	}
	comment, ok := lr.next()
	if !ok {
		return f, fmt.Errorf("%w: missing comment line", ErrMalformed)
	}
	if f.Info, err = parseInfo(comment); err != nil {
		return f, err
	}

	f.Symbols = make([]string, n)
	f.Positions = make([][3]float64, n)
	for a := 0; a < n; a++ {
		line, ok := lr.next()
		if !ok {
			return f, fmt.Errorf("%w: expected %d atoms, got %d", ErrMalformed, n, a)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return f, fmt.Errorf("%w: atom line %q", ErrMalformed, line)
		}
		f.Symbols[a] = canonicalSymbol(fields[0])
		for d := 0; d < 3; d++ {
			if f.Positions[a][d], err = strconv.ParseFloat(fields[1+d], 64); err != nil {
				return f, fmt.Errorf("%w: coordinate %q", ErrMalformed, fields[1+d])
			}
		}
	}

	f.Isomer, err = toIsomer(f)

	return f, err
}

// toIsomer applies the header rules of the package documentation.
func toIsomer(f Frame) (partition.Isomer, error) {
	var iso partition.Isomer
	h, err := decodeHeader(f.Info)
	if err != nil {
		return iso, err
	}
	if h.Energy == nil {
		return iso, fmt.Errorf("%w: energy", ErrMissingKey)
	}
	if _, ok := f.Info["frequencies"]; !ok && len(f.Symbols) > 1 {
		return iso, fmt.Errorf("%w: frequencies", ErrMissingKey)
	}

	iso = partition.Isomer{
		Energy:       *h.Energy,
		Multiplicity: h.Multiplicity,
		Frequencies:  h.Frequencies,
		Symmetry:     h.Symmetry,
	}
	switch len(h.Moments) {
	case 0:
		if iso.Moments, err = PrincipalMoments(f.Symbols, f.Positions); err != nil {
			return iso, err
		}
	case 3:
		copy(iso.Moments[:], h.Moments)
	default:
		return iso, fmt.Errorf("%w: moments needs 3 values, got %d", ErrMalformed, len(h.Moments))
	}

	return iso, nil
}

// Decode reads r and returns the isomers in file order.
func Decode(r io.Reader) (partition.Set, error) {
	frames, err := Read(r)
	if err != nil {
		return nil, err
	}
	set := make(partition.Set, len(frames))
	for i, f := range frames {
		set[i] = f.Isomer
	}

	return set, nil
}

// Load opens path and decodes it.
func Load(path string) (partition.Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	set, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}
