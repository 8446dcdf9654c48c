// File: pkg/combine/binary.go
package combine

import "bytes"

// sniffLen is how much of a file's content is inspected by looksBinary.
const sniffLen = 512

// looksBinary checks the first few bytes of content for null bytes or a high ratio
// of non-printable characters.
func looksBinary(content []byte) bool {
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	if len(content) == 0 {
		return false // Empty files are considered text
	}

	if bytes.IndexByte(content, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range content {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// More than 30% non-printable
	return float64(nonPrintable)/float64(len(content)) > 0.3
}

// isPrintable checks if a byte is printable ASCII, common whitespace, or part of a
// multi-byte UTF-8 sequence.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
