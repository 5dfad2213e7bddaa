package sample

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads whitespace-separated observations from path ("-" = stdin).
// Blank lines and '#' comment lines are skipped.
func Load(path string) ([]float64, error) {
	if path == "-" {
		return Read(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Read parses observations from r; name labels errors.
func Read(r io.Reader, name string) ([]float64, error) {
	var obs []float64
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad observation %q", name, ln, f)
			}
			obs = append(obs, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("%s: no observations found", name)
	}
	return obs, nil
}
