package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/unixdj/huffpal"
	"github.com/unixdj/huffpal/palette"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// report prints the statistics of r for a width x height image.
func report(w io.Writer, r *huffpal.Result, width, height int) error {
	s := r.Stats()
	p := printer
	p.Fprintf(w, "Size:              %dx%d\n", width, height)
	p.Fprintf(w, "Pixels:            %d\n", s.Pixels)
	p.Fprintf(w, "Colours:           %d\n", r.Freq.Len())
	p.Fprintf(w, "Tree depth:        %d\n", r.Tree.Depth())
	p.Fprintf(w, "Original size:     %d bits\n", s.OriginalBits)
	p.Fprintf(w, "Compressed size:   %d bits\n", s.CompressedBits)
	p.Fprintf(w, "Saved:             %d bits\n", s.SavedBits())
	p.Fprintf(w, "Mean code length:  %.3f bits\n", s.MeanCodeLen())
	ratio, err := s.Ratio()
	if err != nil {
		_, err = fmt.Fprintln(w, "Compression ratio: undefined")
		return err
	}
	_, err = p.Fprintf(w, "Compression ratio: %.4f (%.2f%% saved)\n",
		ratio, ratio*100)
	return err
}

// codeTable prints the colours of r by descending frequency with their
// codes.
func codeTable(w io.Writer, r *huffpal.Result) error {
	keys := r.Freq.Keys()
	slices.SortStableFunc(keys, func(a, b palette.Key) int {
		fa, fb := r.Freq.Count(a), r.Freq.Count(b)
		switch {
		case fa > fb:
			return -1
		case fa < fb:
			return 1
		}
		return 0
	})
	header := []string{"Colour", "Count", "Share", "Bits", "Code"}
	total := float64(r.Freq.Total())
	rows := make([][]string, len(keys))
	for i, k := range keys {
		c, n := r.Codes[k], r.Freq.Count(k)
		rows[i] = []string{
			k.String(),
			strconv.FormatUint(n, 10),
			fmt.Sprintf("%.1f%%", float64(n)/total*100),
			strconv.Itoa(c.Len()),
			string(c),
		}
	}

	fmt.Fprintln(w)
	if g.format == tsvFormat {
		for _, row := range append([][]string{header}, rows...) {
			_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
			if err != nil {
				return err
			}
		}
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})
	t.AppendBulk(rows)
	t.Render()
	return nil
}

// lookup prints the code of colour k in r.
func lookup(w io.Writer, r *huffpal.Result, k palette.Key) error {
	c, ok := r.Codes[k]
	if !ok {
		_, err := fmt.Fprintf(w, "Code of %v:   none, not in image\n", k)
		return err
	}
	_, err := fmt.Fprintf(w, "Code of %v:   %s\n", k, c)
	return err
}
