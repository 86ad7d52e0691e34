package beam

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// csvHeader is the fixed column header of beam files, prefixed as a
// comment line.
const csvHeader = "# x[m], xp[1], y[m], yp[1], dZ[m], Ek[eV]"

// WriteCSV writes the bunch as delimited text: the comment header, then
// one line per particle with the six coordinates as %25.18e cells joined
// by ", ". The fixed-width cells carry full float64 precision, so the
// format round-trips exactly.
func (b *Bunch) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, csvHeader)

	n := b.N()
	for i := 0; i < n; i++ {
		for row := 0; row < coordRows; row++ {
			if row > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "%25.18e", b.data.At(row, i))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadCSV parses delimited particle text as written by WriteCSV: comment
// lines start with '#', records hold exactly six comma-separated values.
// At least one particle record is required.
func ReadCSV(r io.Reader) (*Bunch, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = coordRows

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %s", ErrBadRecord, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	data := mat.NewDense(coordRows, len(records), nil)
	for i, rec := range records {
		for row, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadCSV: record %d column %d: %w: %s",
					i, row, ErrBadRecord, err)
			}
			data.Set(row, i, v)
		}
	}
	return &Bunch{data: data}, nil
}

// Save writes the bunch to a beam file. The name must end in .csv or .CSV.
func (b *Bunch) Save(path string) error {
	if err := checkSuffix(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := b.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("Save: %w", err)
	}
	return f.Close()
}

// Load reads a beam file written by Save. The name must end in .csv or
// .CSV.
func Load(path string) (*Bunch, error) {
	if err := checkSuffix(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// checkSuffix enforces the beam-file naming convention.
func checkSuffix(path string) error {
	if !strings.HasSuffix(path, ".csv") && !strings.HasSuffix(path, ".CSV") {
		return ErrFileSuffix
	}
	return nil
}
