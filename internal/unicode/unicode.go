//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package unicode detects a leading byte-order mark and validates UTF-8
// code unit subsequences. It does not decode UTF-16 or UTF-32; those
// encodings are only ever recognized, never read (see SPEC_FULL.md §1).
package unicode

import "github.com/willabides/yamlscan/internal/yamlh"

// Byte order marks, as in WillAbides-yaml/internal/parserc/readerc.go.
const (
	bomUTF8    = "\xef\xbb\xbf"
	bomUTF16LE = "\xff\xfe"
	bomUTF16BE = "\xfe\xff"
)

// DetectBOM inspects up to the first four bytes of data and returns the
// detected encoding and the number of leading bytes to skip (0, 2, 3, or
// 4). Absent an explicit BOM, interior zero bytes are used as a heuristic
// to recognize UTF-32/UTF-16 input without consuming anything, so the
// caller can still report a useful error instead of mis-scanning it as
// UTF-8.
func DetectBOM(data []byte) (yamlh.Encoding, int) {
	if len(data) == 0 {
		// Nothing to sniff: assume UTF-8, the same result returned below
		// for a stream with no BOM at all.
		return yamlh.UTF8_ENCODING, 0
	}

	switch data[0] {
	case 0x00:
		if len(data) >= 4 {
			if data[1] == 0 && data[2] == 0xFE && data[3] == 0xFF {
				return yamlh.UTF32BE_ENCODING, 4
			}
			if data[1] == 0 && data[2] == 0 && data[3] != 0 {
				return yamlh.UTF32BE_ENCODING, 0
			}
		}
		if len(data) >= 2 && data[1] != 0 {
			return yamlh.UTF16BE_ENCODING, 0
		}
		return yamlh.UNKNOWN_ENCODING, 0
	case 0xFF:
		if len(data) >= 4 && data[1] == 0xFE && data[2] == 0 && data[3] == 0 {
			return yamlh.UTF32LE_ENCODING, 4
		}
		if len(data) >= 2 && data[1] == 0xFE {
			return yamlh.UTF16LE_ENCODING, 2
		}
		return yamlh.UNKNOWN_ENCODING, 0
	case 0xFE:
		if len(data) >= 2 && data[1] == 0xFF {
			return yamlh.UTF16BE_ENCODING, 2
		}
		return yamlh.UNKNOWN_ENCODING, 0
	case 0xEF:
		if len(data) >= 3 && data[1] == 0xBB && data[2] == 0xBF {
			return yamlh.UTF8_ENCODING, 3
		}
		return yamlh.UNKNOWN_ENCODING, 0
	}

	// Could still be UTF-32LE or UTF-16LE without a BOM.
	if len(data) >= 4 && data[1] == 0 && data[2] == 0 && data[3] == 0 {
		return yamlh.UTF32LE_ENCODING, 0
	}
	if len(data) >= 2 && data[1] == 0 {
		return yamlh.UTF16LE_ENCODING, 0
	}

	return yamlh.UTF8_ENCODING, 0
}

// DecodeRune validates a minimal well-formed UTF-8 code unit subsequence
// starting at data[0] and returns its scalar value and length in bytes.
// It rejects overlong encodings, UTF-16 surrogate halves, and code points
// above U+10FFFF, per RFC 3629. On invalid input it returns (0, 0).
func DecodeRune(data []byte) (r rune, size int) {
	if len(data) == 0 {
		return 0, 0
	}

	b0 := data[0]
	if b0&0x80 == 0 {
		return rune(b0), 1
	}

	if b0&0xE0 == 0xC0 && len(data) >= 2 && b0 >= 0xC2 && b0 <= 0xDF &&
		data[1] >= 0x80 && data[1] <= 0xBF {
		cp := rune(data[1]&0x3F) | rune(b0&0x1F)<<6
		return cp, 2
	}

	if b0&0xF0 == 0xE0 && len(data) >= 3 {
		b1 := data[1]
		valid := true
		switch {
		case b0 == 0xE0 && (b1 < 0xA0 || b1 > 0xBF):
			valid = false
		case b0 >= 0xE1 && b0 <= 0xEC && (b1 < 0x80 || b1 > 0xBF):
			valid = false
		case b0 == 0xED && (b1 < 0x80 || b1 > 0x9F):
			valid = false
		case b0 >= 0xEE && b0 <= 0xEF && (b1 < 0x80 || b1 > 0xBF):
			valid = false
		}
		if valid && data[2] >= 0x80 && data[2] <= 0xBF {
			cp := rune(data[2]&0x3F) | rune(b1&0x3F)<<6 | rune(b0&0x0F)<<12
			return cp, 3
		}
		return 0, 0
	}

	if b0&0xF8 == 0xF0 && len(data) >= 4 {
		b1 := data[1]
		valid := true
		switch {
		case b0 == 0xF0 && (b1 < 0x90 || b1 > 0xBF):
			valid = false
		case b0 >= 0xF1 && b0 <= 0xF3 && (b1 < 0x80 || b1 > 0xBF):
			valid = false
		case b0 == 0xF4 && (b1 < 0x80 || b1 > 0x8F):
			valid = false
		}
		if valid && data[2] >= 0x80 && data[2] <= 0xBF && data[3] >= 0x80 && data[3] <= 0xBF {
			cp := rune(data[3]&0x3F) | rune(data[2]&0x3F)<<6 | rune(data[1]&0x3F)<<12 | rune(b0&0x07)<<18
			return cp, 4
		}
		return 0, 0
	}

	return 0, 0
}
