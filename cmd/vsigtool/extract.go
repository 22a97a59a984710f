/*
DESCRIPTION
  extract.go implements the "extract" subcommand: reads a sequence of
  fixed-size raw 8-bit luminance frames from a file, computes a
  StreamContext, and exports it to the binary or XML container format.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vsig/signature"
	"github.com/ausocean/vsig/signature/codec"
)

func runExtract(log logging.Logger, args []string) error {
	fs := newFlagSet("extract")
	in := fs.String("in", "", "path to a raw sequence of 8-bit luminance frames")
	out := fs.String("out", "", "output container path")
	w := fs.Int("w", 0, "frame width in pixels")
	h := fs.Int("h", 0, "frame height in pixels")
	fps := fs.Int("fps", 30, "frames per second of the input sequence")
	format := fs.String("format", "binary", "output container format: binary or xml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *out == "" || *w <= 0 || *h <= 0 {
		return errors.New("extract: -in, -out, -w and -h are required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return errors.Wrap(err, "extract: could not open input")
	}
	defer f.Close()

	sc := signature.NewStreamContext(*w, *h, signature.Rational{Num: 1, Den: *fps})

	frameSize := *w * *h
	buf := make([]byte, frameSize)
	r := bufio.NewReader(f)
	var pts int64
	var frames int
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "extract: short read on input frame")
		}
		signature.Compute(sc, *w, *h, *w, buf, pts)
		pts++
		frames++
	}
	log.Info("extracted signature", "frames", frames, "coarse", len(sc.Coarse))

	if frames > 0 {
		confidences := make([]float64, len(sc.Fine))
		for i := range sc.Fine {
			confidences[i] = float64(sc.Fine[i].Confidence)
		}
		mean, std := stat.MeanStdDev(confidences, nil)
		log.Info("frame confidence", "mean", mean, "stddev", std)
	}

	switch *format {
	case "binary":
		return codec.ExportBinary(sc, *out)
	case "xml":
		return codec.ExportXML(sc, *out)
	default:
		return errors.Errorf("extract: unknown format %q", *format)
	}
}
