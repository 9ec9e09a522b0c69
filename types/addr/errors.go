// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import "fmt"

// ParseError is the error returned by ParseAddr, ParseAddrPort and
// ParsePrefix when the input matches neither address grammar or
// breaks one of their rules.
type ParseError struct {
	In  string // the text given to the parser
	Msg string // an explanation of the failure
	At  string // optionally, the unparsed tail of In where the failure was noticed
}

func (e ParseError) Error() string {
	if e.At != "" {
		return fmt.Sprintf("parse %q: %s (at %q)", e.In, e.Msg, e.At)
	}
	return fmt.Sprintf("parse %q: %s", e.In, e.Msg)
}

// InvalidLengthError is the error returned by AddrFromBytes and
// UnmarshalBinary when the byte count fits no address family.
type InvalidLengthError struct {
	Family Family // the family the bytes were declared as, if any
	Len    int    // the number of bytes actually supplied
}

func (e InvalidLengthError) Error() string {
	if !e.Family.IsValid() {
		return fmt.Sprintf("address length %d: want 4 (IPv4) or 16 (IPv6) bytes", e.Len)
	}
	return fmt.Sprintf("address length %d: %v wants %d bytes", e.Len, e.Family, e.Family.ByteLen())
}
