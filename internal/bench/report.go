// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// TextWriter prints results as an aligned table.
type TextWriter struct {
	tw *tabwriter.Writer
}

// NewTextWriter writes the table header to w.
func NewTextWriter(w io.Writer) *TextWriter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Benchmark\tIterations\tTime/op\tItems/s\tGFLOPS\tGB/s\t")
	return &TextWriter{tw: tw}
}

// Write adds one row.
func (t *TextWriter) Write(r Result) {
	fmt.Fprintf(t.tw, "%s\t%d\t%s\t%s\t%.2f\t%.2f\t\n",
		r.Name, r.Iterations, formatNs(r.RealTime), formatRate(r.ItemsPerSecond),
		r.FLOPsPerSecond/1e9, r.BytesPerSecond/1e9)
}

// Flush writes the buffered rows.
func (t *TextWriter) Flush() error {
	return t.tw.Flush()
}

func formatNs(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.3f s", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.3f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.3f us", ns/1e3)
	default:
		return fmt.Sprintf("%.1f ns", ns)
	}
}

func formatRate(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fG", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fk", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
