// SPDX-License-Identifier: MIT

package dist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits one "key value" line per entry in key order.
func Write(w io.Writer, d *Distribution) error {
	bw := bufio.NewWriter(w)
	var err error
	d.Each(func(k Key, v float64) {
		if err == nil {
			_, err = fmt.Fprintf(bw, "%s %s\n", k, strconv.FormatFloat(v, 'g', -1, 64))
		}
	})
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return bw.Flush()
}

// WriteFile writes d to path in the Write format, truncating any existing file.
func WriteFile(path string, d *Distribution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err := Write(f, d); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Print writes a human-readable table, keys right-aligned to width.
func Print(w io.Writer, d *Distribution, width int) error {
	var err error
	d.Each(func(k Key, v float64) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%*s: %s\n", width, k, strconv.FormatFloat(v, 'g', -1, 64))
		}
	})
	return err
}
