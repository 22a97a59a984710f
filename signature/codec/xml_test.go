/*
DESCRIPTION
  xml_test.go round-trips the MPEG-7-style XML container against a small
  synthetic stream.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codec

import "testing"

func TestXMLRoundTripFineSignatures(t *testing.T) {
	sc := buildTestStream(40)
	buf := EncodeXML(sc)

	got, err := DecodeXML(buf)
	if err != nil {
		t.Fatalf("DecodeXML: unexpected error: %v", err)
	}
	if got.Width != sc.Width || got.Height != sc.Height {
		t.Errorf("dimensions: got %dx%d, want %dx%d", got.Width, got.Height, sc.Width, sc.Height)
	}
	if len(got.Fine) != len(sc.Fine) {
		t.Fatalf("len(Fine): got %d, want %d", len(got.Fine), len(sc.Fine))
	}
	for i := range sc.Fine {
		want, have := sc.Fine[i], got.Fine[i]
		if have.PTS != want.PTS {
			t.Errorf("Fine[%d].PTS: got %d, want %d", i, have.PTS, want.PTS)
		}
		if have.Confidence != want.Confidence {
			t.Errorf("Fine[%d].Confidence: got %d, want %d", i, have.Confidence, want.Confidence)
		}
		if have.Words != want.Words {
			t.Errorf("Fine[%d].Words: got %v, want %v", i, have.Words, want.Words)
		}
		if have.Bytes != want.Bytes {
			t.Errorf("Fine[%d].Bytes: got %v, want %v", i, have.Bytes, want.Bytes)
		}
	}
}

func TestXMLRoundTripCoarseSignatures(t *testing.T) {
	sc := buildTestStream(100)
	buf := EncodeXML(sc)

	got, err := DecodeXML(buf)
	if err != nil {
		t.Fatalf("DecodeXML: unexpected error: %v", err)
	}
	if len(got.Coarse) != len(sc.Coarse) {
		t.Fatalf("len(Coarse): got %d, want %d", len(got.Coarse), len(sc.Coarse))
	}
	for i := range sc.Coarse {
		want, have := &sc.Coarse[i], &got.Coarse[i]
		if have.FirstIndex != want.FirstIndex || have.LastIndex != want.LastIndex {
			t.Errorf("Coarse[%d] index range: got [%d,%d], want [%d,%d]",
				i, have.FirstIndex, have.LastIndex, want.FirstIndex, want.LastIndex)
		}
		if have.WordBags() != want.WordBags() {
			t.Errorf("Coarse[%d].WordBags: got %v, want %v", i, have.WordBags(), want.WordBags())
		}
	}
}

func TestDecodeXMLRejectsGarbage(t *testing.T) {
	if _, err := DecodeXML([]byte("not xml at all")); err == nil {
		t.Error("DecodeXML on garbage input: got nil error, want an error")
	}
}
