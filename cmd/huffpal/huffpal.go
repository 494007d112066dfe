package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/huffpal"
	"github.com/unixdj/huffpal/palette"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	out    io.Writer    // report output
	fn     string       // bitstream output file
	format int          // table format
	height int          // downscale height, 0 to keep size
	key    *palette.Key // colour to look up, or nil
	codes  bool         // print code table
	tree   bool         // print tree
}{
	out: os.Stdout,
}

const (
	tableFormat = iota // tablewriter
	tsvFormat          // tab separated values
)

var formats = []string{"table", "tsv"}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Huffman palette code calculator\nUsage: ",
		cl.Program(), " ", cl.UsageLine(), " image ...", `
Count the colours of each image, build a Huffman code for the palette
and print the size of the image coded with it, compared to 24 bits per
pixel.  Alpha is ignored.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`huffpal version 0.3.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.codes, 'c', "print colour frequencies and codes")
	getopt.Flag(&g.tree, 't', "print the Huffman tree")
	fno := getopt.Flag(&g.fn, 'o', `write the coded pixels of the `+
		`image to file, or "-" for standard output, as raw bits, `+
		`most significant first; only one image may be given`, "file")
	height := getopt.Unsigned('s', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 31, Min: 0, Max: 1 << 16},
		`scale image to the given height before counting, `+
			`keeping the aspect ratio; 0 keeps the size`, "height")
	key := getopt.String('k', "", `print the code of the colour, `+
		`given as #RRGGBB`, "colour")
	ff := getopt.Enum('f', formats, "", `table format, one of: `+
		strings.Join(formats, ", ")+`; if standard output is a TTY, `+
		`default is table, otherwise tsv`, "format")

	getopt.Parse()
	g.height = int(*height)
	if *key != "" {
		k, err := palette.ParseKey(*key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
		}
		g.key = &k
	}
	if *ff == "" {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "table"
		} else {
			*ff = "tsv"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
	if getopt.NArgs() == 0 {
		fmt.Fprintln(os.Stderr, "no image given")
		usage()
	}
	if fno.Seen() && getopt.NArgs() > 1 {
		fmt.Fprintln(os.Stderr, "-o takes a single image")
		usage()
	}
	if g.fn == "-" {
		// the report goes to standard error
		g.out = os.Stderr
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	args := getopt.Args()
	for i, fn := range args {
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(g.out)
			}
			fmt.Fprintf(g.out, "==> %s <==\n", fn)
		}
		if err := process(fn); err != nil {
			log.Fatalln(err)
		}
	}
}

// load opens the image in fn, applying EXIF orientation, and scales it
// to g.height if set.
func load(fn string) (image.Image, error) {
	img, err := imaging.Open(fn, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if g.height > 0 && img.Bounds().Dy() != g.height {
		img = imaging.Resize(img, 0, g.height, imaging.Lanczos)
	}
	return img, nil
}

func process(fn string) error {
	img, err := load(fn)
	if err != nil {
		return err
	}
	src := palette.ImageSource(img)
	r, err := huffpal.Compress(src)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	w, h := src.Size()
	if err := report(g.out, r, w, h); err != nil {
		return err
	}
	if g.key != nil {
		if err := lookup(g.out, r, *g.key); err != nil {
			return err
		}
	}
	if g.codes {
		if err := codeTable(g.out, r); err != nil {
			return err
		}
	}
	if g.tree {
		fmt.Fprintln(g.out)
		if err := r.Tree.Format(g.out); err != nil {
			return err
		}
	}
	if g.fn != "" {
		return write(r, src)
	}
	return nil
}

// write writes the coded pixels of src to g.fn.
func write(r *huffpal.Result, src palette.Source) error {
	f := os.Stdout
	if g.fn != "-" {
		var err error
		f, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666)
		if err != nil {
			return err
		}
	}
	n, err := r.Encode(f, src)
	if err != nil {
		if f != os.Stdout {
			f.Close()
		}
		return err
	}
	if want := r.Stats().CompressedBits; n != want {
		panic(fmt.Sprintf("huffpal: internal error: wrote %d bits, want %d",
			n, want))
	}
	if f != os.Stdout {
		return f.Close()
	}
	return nil
}
