/*
DESCRIPTION
  doc.go provides package level documentation for the signature package.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package signature computes and represents MPEG-7 video signatures: a
// compact, per-frame perceptual fingerprint of a luminance video stream.
//
// A StreamContext accumulates FineSignatures (one per frame) and
// CoarseSignatures (one opened every 45 frames, each spanning up to 90
// frames, so consecutive windows overlap by 50%) as frames are
// fed through Compute. The sub-package signature/codec serialises a
// StreamContext to and from the MPEG-7 binary and XML containers, and
// signature/match compares two StreamContexts to find the best matching
// interval between them.
package signature
