/*
DESCRIPTION
  compare.go implements the "compare" subcommand: imports two previously
  exported containers (format sniffed from the file extension) and runs
  the three-stage matcher, printing the classification and, for partial
  or whole matches, the winning candidate's parameters.

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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vsig/signature"
	"github.com/ausocean/vsig/signature/codec"
	"github.com/ausocean/vsig/signature/match"
)

func runCompare(log logging.Logger, args []string) error {
	fs := newFlagSet("compare")
	pathA := fs.String("a", "", "first container file")
	pathB := fs.String("b", "", "second container file")
	mode := fs.String("mode", "full", "matching mode: full or fast")
	thD := fs.Int("th_d", signature.DefaultThD, "per-word Jaccard distance threshold")
	thDC := fs.Int("th_dc", signature.DefaultThDC, "composite Jaccard distance threshold")
	thXH := fs.Int("th_xh", signature.DefaultThXH, "per-frame L1 distance threshold")
	thDI := fs.Int("th_di", signature.DefaultThDI, "minimum matching length")
	thIT := fs.Float64("th_it", signature.DefaultThIT, "minimum good-frame ratio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pathA == "" || *pathB == "" {
		return errors.New("compare: -a and -b are required")
	}

	a, err := importContainer(*pathA)
	if err != nil {
		return err
	}
	b, err := importContainer(*pathB)
	if err != nil {
		return err
	}

	var matchMode signature.MatchMode
	switch *mode {
	case "full":
		matchMode = signature.ModeFull
	case "fast":
		matchMode = signature.ModeFast
	default:
		return errors.Errorf("compare: unknown mode %q", *mode)
	}

	th := match.Thresholds{ThD: *thD, ThDC: *thDC, ThXH: *thXH, ThDI: *thDI, ThIT: *thIT}
	ctx := match.NewContext(th, log)

	info, res := match.Match(ctx, matchMode, a, b)
	switch res {
	case match.ResultNone:
		fmt.Println("none")
	case match.ResultPartial:
		fmt.Printf("partial framerateratio=%.4f offset=%d frames=%d meandist=%.4f\n",
			info.FramerateRatio, info.Offset, info.MatchFrames, info.MeanDistance)
	case match.ResultWhole:
		fmt.Printf("whole framerateratio=%.4f offset=%d frames=%d meandist=%.4f\n",
			info.FramerateRatio, info.Offset, info.MatchFrames, info.MeanDistance)
	}
	return nil
}

// importContainer sniffs the container format from path's extension and
// imports it.
func importContainer(path string) (*signature.StreamContext, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return codec.ImportXML(path)
	}
	return codec.ImportBinary(path)
}
