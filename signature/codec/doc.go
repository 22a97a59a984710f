/*
DESCRIPTION
  doc.go provides the package documentation for codec.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codec implements the binary and XML container formats used to
// serialize and deserialize a signature.StreamContext: the bit-exact
// binary layout of C5 and the MPEG-7-style XML layout of C6, plus file
// convenience wrappers around both.
package codec
