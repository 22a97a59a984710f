/*
DESCRIPTION
  xml.go implements the MPEG-7-style XML container (C6). Export is
  hand-written with fmt.Fprintf in the same spirit as the binary writer,
  since the element layout (bit-per-token BagOfWords, space-separated
  ternary FrameSignature) is closer to a fixed record format than to
  general-purpose XML marshalling. Decode uses encoding/xml: no
  third-party XML library appears anywhere in the reference stack, so the
  standard decoder is the right tool (see DESIGN.md).

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

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/vsig/signature"
)

// EncodeXML serialises sc as the MPEG-7-style XML container described in
// spec.md §6.
func EncodeXML(sc *signature.StreamContext) []byte {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(w, `<Mpeg7 xmlns="urn:mpeg:mpeg7:schema:2001">`)
	fmt.Fprintln(w, `<DescriptionUnit xsi:type="DescriptorCollectionType">`)
	fmt.Fprintln(w, `<VideoSignatureType>`)
	fmt.Fprintf(w, "<VideoSignatureRegion width=\"%d\" height=\"%d\">\n", sc.Width, sc.Height)

	for i := range sc.Coarse {
		cs := &sc.Coarse[i]
		fmt.Fprintf(w, "<VSVideoSegment firstIndex=\"%d\" lastIndex=\"%d\" firstPTS=\"%d\" lastPTS=\"%d\">\n",
			cs.FirstIndex, cs.LastIndex, cs.FirstPTS, cs.LastPTS)
		bags := cs.WordBags()
		for _, bag := range bags {
			fmt.Fprint(w, "<BagOfWords>")
			for i := 0; i < 243; i++ {
				bit := 0
				if bag[i/8]&(1<<uint(7-i%8)) != 0 {
					bit = 1
				}
				if i > 0 {
					fmt.Fprint(w, "  ")
				}
				fmt.Fprint(w, bit)
			}
			fmt.Fprintln(w, "</BagOfWords>")
		}
		fmt.Fprintln(w, "</VSVideoSegment>")
	}

	for i := range sc.Fine {
		fs := &sc.Fine[i]
		fmt.Fprintf(w, "<VideoFrame>\n<MediaTimeOfFrame>%d</MediaTimeOfFrame>\n<FrameConfidence>%d</FrameConfidence>\n",
			fs.PTS, fs.Confidence)
		fmt.Fprint(w, "<Word>")
		for i, word := range fs.Words {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, word)
		}
		fmt.Fprintln(w, "</Word>")
		fmt.Fprint(w, "<FrameSignature>")
		for i := 0; i < 76; i++ {
			b := fs.Bytes[i]
			digits := [5]byte{}
			for k := 4; k >= 0; k-- {
				digits[k] = b % 3
				b /= 3
			}
			for k := 0; k < 5; k++ {
				if i > 0 || k > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, digits[k])
			}
		}
		fmt.Fprintln(w, "</FrameSignature>")
		fmt.Fprintln(w, "</VideoFrame>")
	}

	fmt.Fprintln(w, `</VideoSignatureRegion>`)
	fmt.Fprintln(w, `</VideoSignatureType>`)
	fmt.Fprintln(w, `</DescriptionUnit>`)
	fmt.Fprintln(w, `</Mpeg7>`)

	w.Flush()
	return buf.Bytes()
}

// xmlDoc mirrors just enough of the MPEG-7 XML shape for decoding.
type xmlDoc struct {
	XMLName xml.Name `xml:"Mpeg7"`
	Unit    struct {
		Sig struct {
			Region struct {
				Width   int `xml:"width,attr"`
				Height  int `xml:"height,attr"`
				Segment []struct {
					FirstIndex uint32   `xml:"firstIndex,attr"`
					LastIndex  uint32   `xml:"lastIndex,attr"`
					FirstPTS   int64    `xml:"firstPTS,attr"`
					LastPTS    int64    `xml:"lastPTS,attr"`
					Bags       []string `xml:"BagOfWords"`
				} `xml:"VSVideoSegment"`
			} `xml:"VideoSignatureRegion"`
		} `xml:"VideoSignatureType"`
	} `xml:"DescriptionUnit"`
}

type xmlFrame struct {
	MediaTime  int64  `xml:"MediaTimeOfFrame"`
	Confidence uint8  `xml:"FrameConfidence"`
	Word       string `xml:"Word"`
	Signature  string `xml:"FrameSignature"`
}

// DecodeXML parses the XML container produced by EncodeXML into a
// StreamContext.
func DecodeXML(buf []byte) (*signature.StreamContext, error) {
	var doc xmlDoc
	if err := xml.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrap(err, "codec: invalid xml stream")
	}

	region := doc.Unit.Sig.Region
	sc := signature.NewStreamContext(region.Width, region.Height, signature.Rational{Num: 1, Den: 1})

	for _, seg := range region.Segment {
		cs := signature.CoarseSignature{
			FirstIndex: seg.FirstIndex,
			LastIndex:  seg.LastIndex,
			FirstPTS:   seg.FirstPTS,
			LastPTS:    seg.LastPTS,
		}
		var bags [5][31]byte
		for i, tokenStr := range seg.Bags {
			if i >= 5 {
				break
			}
			tokens := strings.Fields(tokenStr)
			for bit, tok := range tokens {
				if bit >= 243 {
					break
				}
				if tok == "1" {
					bags[i][bit/8] |= 1 << uint(7-bit%8)
				}
			}
		}
		cs.SetWordBags(bags)
		sc.Coarse = append(sc.Coarse, cs)
	}

	// Fine frames are decoded by re-parsing the raw document with a
	// frame-shaped struct, since xmlDoc above only captures the segment
	// shape; encoding/xml only needs the tags it's asked to look for.
	var frames struct {
		Frames []xmlFrame `xml:"DescriptionUnit>VideoSignatureType>VideoSignatureRegion>VideoFrame"`
	}
	if err := xml.Unmarshal(buf, &frames); err != nil {
		return nil, errors.Wrap(err, "codec: invalid xml stream")
	}
	for _, f := range frames.Frames {
		fs := signature.FineSignature{
			Index:      uint32(len(sc.Fine)),
			PTS:        f.MediaTime,
			Confidence: f.Confidence,
		}
		words := strings.Fields(f.Word)
		for i := 0; i < 5 && i < len(words); i++ {
			v, err := strconv.Atoi(words[i])
			if err != nil {
				return nil, errors.Wrap(err, "codec: invalid xml stream")
			}
			fs.Words[i] = uint16(v)
		}
		digits := strings.Fields(f.Signature)
		for i := 0; i < 76; i++ {
			var b int
			for k := 0; k < 5; k++ {
				idx := i*5 + k
				d := 0
				if idx < len(digits) {
					v, err := strconv.Atoi(digits[idx])
					if err != nil {
						return nil, errors.Wrap(err, "codec: invalid xml stream")
					}
					d = v
				}
				b = b*3 + d
			}
			fs.Bytes[i] = byte(b)
		}
		sc.Fine = append(sc.Fine, fs)
	}
	if len(sc.Fine) == 0 {
		return nil, errInvalidBinary
	}

	return sc, nil
}
