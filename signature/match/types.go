/*
DESCRIPTION
  types.go declares the shared matching data model: the thresholds used
  across the coarse filter, Hough voting and sequence evaluation stages,
  and the MatchingInfo result type.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package match implements the three-stage signature lookup: a coarse
// Jaccard filter over CoarseSignature pairs, Hough voting over candidate
// fine-signature pairs in (framerate, offset) space, and a bidirectional
// sequence evaluation that scores and accepts the best candidate.
package match

import (
	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vsig/signature"
)

// Thresholds groups the configurable distance and acceptance thresholds
// used by the matcher (spec.md §3 "Matching context").
type Thresholds struct {
	ThD  int     // Per-word Jaccard distance threshold.
	ThDC int     // Composite Jaccard distance threshold.
	ThXH int     // Per-frame L1 threshold.
	ThDI int     // Minimum matching length.
	ThIT float64 // Minimum good-frame ratio.
}

// DefaultThresholds mirrors the live extractor's defaults (signature.Config
// equivalents).
func DefaultThresholds() Thresholds {
	return Thresholds{
		ThD:  signature.DefaultThD,
		ThDC: signature.DefaultThDC,
		ThXH: signature.DefaultThXH,
		ThDI: signature.DefaultThDI,
		ThIT: signature.DefaultThIT,
	}
}

// MatchingInfo describes a candidate or final match between two streams.
type MatchingInfo struct {
	FramerateRatio float64
	Offset         int
	Score          int
	MeanDistance   float64
	MatchFrames    int
	FirstSeed      uint32 // Fine signature index (stream A) of the seed.
	SecondSeed     uint32 // Fine signature index (stream B) of the seed.
	Whole          bool
}

// Result classifies the outcome of a buffer-level comparison.
type Result int

const (
	ResultNone Result = iota
	ResultPartial
	ResultWhole
)

// Context bundles the state needed across a matching session: the
// distance LUT (built once, read-only thereafter) and the logger used to
// report progress, mirroring request_frame's av_log calls in the
// retrieved vf_signature.c.
type Context struct {
	LUT        *signature.L1LUT
	Thresholds Thresholds
	Logger     logging.Logger
}

// NewContext returns a matching Context with a freshly built LUT and the
// given thresholds. If log is nil, a discarding logger is installed.
func NewContext(th Thresholds, log logging.Logger) *Context {
	if log == nil {
		log = discardLogger{}
	}
	return &Context{LUT: signature.NewL1LUT(), Thresholds: th, Logger: log}
}

type discardLogger struct{}

func (discardLogger) Log(int8, string, ...interface{}) {}
func (discardLogger) SetLevel(int8)                    {}
func (discardLogger) Debug(string, ...interface{})     {}
func (discardLogger) Info(string, ...interface{})      {}
func (discardLogger) Warning(string, ...interface{})   {}
func (discardLogger) Error(string, ...interface{})     {}
func (discardLogger) Fatal(string, ...interface{})     {}
