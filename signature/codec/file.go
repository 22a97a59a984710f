/*
DESCRIPTION
  file.go provides the ExportBinary/ExportXML/ImportBinary/ImportXML file
  convenience wrappers named in spec.md §6. No third-party file-IO library
  appears anywhere in the reference stack, so these are plain os wrappers
  around the in-memory codecs above.

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
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/vsig/signature"
)

// ExportBinary writes sc to filename in the binary container format.
func ExportBinary(sc *signature.StreamContext, filename string) error {
	if err := os.WriteFile(filename, EncodeBinary(sc), 0644); err != nil {
		return errors.Wrap(err, "codec: export binary failed")
	}
	return nil
}

// ExportXML writes sc to filename in the XML container format.
func ExportXML(sc *signature.StreamContext, filename string) error {
	if err := os.WriteFile(filename, EncodeXML(sc), 0644); err != nil {
		return errors.Wrap(err, "codec: export xml failed")
	}
	return nil
}

// ImportBinary reads and decodes a binary container file.
func ImportBinary(filename string) (*signature.StreamContext, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "codec: import binary failed")
	}
	return DecodeBinary(buf)
}

// ImportXML reads and decodes an XML container file.
func ImportXML(filename string) (*signature.StreamContext, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "codec: import xml failed")
	}
	return DecodeXML(buf)
}
