/*
DESCRIPTION
  compare_test.go tests container format sniffing by extension.

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
	"path/filepath"
	"testing"

	"github.com/ausocean/vsig/signature"
	"github.com/ausocean/vsig/signature/codec"
)

func TestImportContainerSniffsExtension(t *testing.T) {
	sc := signature.NewStreamContext(64, 64, signature.Rational{Num: 1, Den: 30})
	pix := make([]byte, 64*64)
	for i := 0; i < 50; i++ {
		signature.Compute(sc, 64, 64, 64, pix, int64(i))
	}

	dir := t.TempDir()
	binPath := filepath.Join(dir, "sig.bin")
	xmlPath := filepath.Join(dir, "sig.xml")
	if err := codec.ExportBinary(sc, binPath); err != nil {
		t.Fatalf("ExportBinary: %v", err)
	}
	if err := codec.ExportXML(sc, xmlPath); err != nil {
		t.Fatalf("ExportXML: %v", err)
	}

	got, err := importContainer(binPath)
	if err != nil {
		t.Fatalf("importContainer(%q): %v", binPath, err)
	}
	if len(got.Fine) != len(sc.Fine) {
		t.Errorf("importContainer(%q): got %d fine signatures, want %d", binPath, len(got.Fine), len(sc.Fine))
	}

	got, err = importContainer(xmlPath)
	if err != nil {
		t.Fatalf("importContainer(%q): %v", xmlPath, err)
	}
	if len(got.Fine) != len(sc.Fine) {
		t.Errorf("importContainer(%q): got %d fine signatures, want %d", xmlPath, len(got.Fine), len(sc.Fine))
	}
}
