/*
DESCRIPTION
  vsigtool is a command line front-end over the signature packages: it
  extracts MPEG-7 video signatures from a sequence of raw 8-bit luminance
  frames, exports them to the binary or XML container format, and
  compares two previously exported containers.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements vsigtool, a command line front-end for
// extracting and comparing MPEG-7 video signatures.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"
)

// Logging related constants, in the manner of cmd/looper's log setup.
const (
	logPath      = "vsigtool.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(log, os.Args[2:])
	case "compare":
		err = runCompare(log, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("vsigtool failed", "error", err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  vsigtool extract -in <raw-gray-frames> -w <width> -h <height> -fps <n> -out <file> [-format binary|xml]
  vsigtool compare -a <container-a> -b <container-b> [-mode full|fast] [-th_d n] [-th_dc n] [-th_xh n] [-th_di n] [-th_it f]`)
}

// newFlagSet returns a fresh flag set for one subcommand; subcommands share
// no flag state and each parses its own flag set from args, matching the
// cmd/rv style of one flag.FlagSet per invocation rather than
// package-global flags.
func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}
