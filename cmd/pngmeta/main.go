// Command pngmeta prints the metadata of one or more PNG files.
//
// Usage:
//
//	pngmeta [-v] [-crc] [-latin1] <file.png>...
//	pngmeta -version
//
// Output is decorated when stdout is a terminal and tab-separated otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/blakeanedved/ril"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log decoding steps to stderr")
		crc     = flag.Bool("crc", false, "verify chunk CRCs")
		latin1  = flag.Bool("latin1", false, "decode tEXt as ISO 8859-1")
		version = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: pngmeta [flags] <file.png>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("pngmeta", ril.GetVersionInfo())
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var opts []ril.Option
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, ril.WithLogger(logger))
	}
	if *crc {
		opts = append(opts, ril.WithCRCValidation())
	}
	if *latin1 {
		opts = append(opts, ril.WithLatin1Text())
	}

	paths := flag.Args()
	images, err := ril.OpenMany(context.Background(), paths, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pngmeta: %v\n", err)
		os.Exit(1)
	}

	show := printPlain
	if term.IsTerminal(int(os.Stdout.Fd())) {
		show = printDecorated
	}
	for i, img := range images {
		show(os.Stdout, paths[i], img)
	}
}

func printDecorated(w io.Writer, path string, img *ril.ImageDescriptor) {
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintln(w, strings.Repeat("─", len(path)))
	fmt.Fprintf(w, "Dimensions:  %dx%d\n", img.Width, img.Height)
	fmt.Fprintf(w, "Bit Depth:   %d\n", img.BitDepth)
	fmt.Fprintf(w, "Color Type:  %s\n", img.ColorType)
	if img.InterlaceMethod != 0 {
		fmt.Fprintln(w, "Interlaced:  yes")
	}
	if img.Gamma != nil {
		fmt.Fprintf(w, "Gamma:       %g\n", *img.Gamma)
	}
	if img.LastModified != nil {
		fmt.Fprintf(w, "Modified:    %s\n", *img.LastModified)
	}
	fmt.Fprintf(w, "Chunks:      %s\n", strings.Join(img.ChunkTypes, " "))

	if img.HasText() {
		fmt.Fprintln(w, "\nText:")
		for _, key := range slices.Sorted(maps.Keys(img.Text)) {
			fmt.Fprintf(w, "  %-16s %s\n", key+":", img.Text[key])
		}
	}
	fmt.Fprintln(w)
}

func printPlain(w io.Writer, path string, img *ril.ImageDescriptor) {
	fmt.Fprintf(w, "%s\twidth\t%d\n", path, img.Width)
	fmt.Fprintf(w, "%s\theight\t%d\n", path, img.Height)
	fmt.Fprintf(w, "%s\tbit_depth\t%d\n", path, img.BitDepth)
	fmt.Fprintf(w, "%s\tcolor_type\t%s\n", path, img.ColorType)
	if img.Gamma != nil {
		fmt.Fprintf(w, "%s\tgamma\t%g\n", path, *img.Gamma)
	}
	if img.LastModified != nil {
		fmt.Fprintf(w, "%s\tlast_modified\t%s\n", path, *img.LastModified)
	}
	for _, key := range slices.Sorted(maps.Keys(img.Text)) {
		fmt.Fprintf(w, "%s\ttext:%s\t%q\n", path, key, img.Text[key])
	}
}
