// Package scheduleerr defines the closed set of failure kinds this core
// can return, shared by the tabular reader, the MS-Project XML reader, the
// schedule builder, and the format auto-detector so a caller can match on
// Kind regardless of which stage failed.
package scheduleerr

import "fmt"

// Kind identifies a failure mode. The set is closed: every Error this core
// returns carries one of these values.
type Kind string

// The closed set of failure kinds. See spec §7.
const (
	KindEmptyFile                     Kind = "EmptyFile"
	KindEncoding                      Kind = "Encoding"
	KindInvalidFormat                 Kind = "InvalidFormat"
	KindMissingRequiredTable          Kind = "MissingRequiredTable"
	KindFileTooLarge                  Kind = "FileTooLarge"
	KindTooManyRows                   Kind = "TooManyRows"
	KindXMLParsingFailed              Kind = "XmlParsingFailed"
	KindBinaryFormatNotFullySupported Kind = "BinaryFormatNotFullySupported"
)

// Error is a tagged failure value. Message is human-readable; the typed
// fields let callers recover structured detail without parsing Message.
type Error struct {
	Kind    Kind
	Message string

	TableName string  // set for KindMissingRequiredTable
	SizeMiB   float64 // set for KindFileTooLarge
	MaxMiB    float64 // set for KindFileTooLarge
	Count     int     // set for KindTooManyRows
	Max       int     // set for KindTooManyRows
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, scheduleerr.ErrEmptyFile) without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is comparisons against a failure kind alone.
var (
	ErrEmptyFile         = &Error{Kind: KindEmptyFile}
	ErrEncoding          = &Error{Kind: KindEncoding}
	ErrInvalidFormat     = &Error{Kind: KindInvalidFormat}
	ErrXMLParsingFailed  = &Error{Kind: KindXMLParsingFailed}
	ErrBinaryNotSupported = &Error{Kind: KindBinaryFormatNotFullySupported}
)

// NewEmptyFile reports a zero-byte input.
func NewEmptyFile() *Error {
	return &Error{Kind: KindEmptyFile, Message: "input is empty"}
}

// NewEncoding reports that neither Windows-1252 nor UTF-8 could decode the input.
func NewEncoding() *Error {
	return &Error{Kind: KindEncoding, Message: "could not decode input as Windows-1252 or UTF-8"}
}

// NewInvalidFormat reports that the bytes decoded but carry no recognizable
// XER markers.
func NewInvalidFormat(detail string) *Error {
	return &Error{Kind: KindInvalidFormat, Message: fmt.Sprintf("invalid XER format: %s", detail)}
}

// NewMissingRequiredTable reports that a table required after a full parse
// (only PROJECT, per spec) is absent.
func NewMissingRequiredTable(name string) *Error {
	return &Error{
		Kind:      KindMissingRequiredTable,
		Message:   fmt.Sprintf("missing required table %q", name),
		TableName: name,
	}
}

// NewFileTooLarge reports an input exceeding the 100 MiB ceiling.
func NewFileTooLarge(sizeMiB, maxMiB float64) *Error {
	return &Error{
		Kind:    KindFileTooLarge,
		Message: fmt.Sprintf("input size %.2f MiB exceeds maximum %.2f MiB", sizeMiB, maxMiB),
		SizeMiB: sizeMiB,
		MaxMiB:  maxMiB,
	}
}

// NewTooManyRows reports cumulative %R rows exceeding the 1,000,000 ceiling.
func NewTooManyRows(count, max int) *Error {
	return &Error{
		Kind:    KindTooManyRows,
		Message: fmt.Sprintf("row count %d exceeds maximum %d", count, max),
		Count:   count,
		Max:     max,
	}
}

// NewXMLParsingFailed reports an MS-Project XML decode failure.
func NewXMLParsingFailed(detail string) *Error {
	return &Error{Kind: KindXMLParsingFailed, Message: fmt.Sprintf("XML parsing failed: %s", detail)}
}

// NewBinaryFormatNotFullySupported reports a compound-binary MPP file with
// no scrapeable embedded XML.
func NewBinaryFormatNotFullySupported() *Error {
	return &Error{
		Kind:    KindBinaryFormatNotFullySupported,
		Message: "compound-binary MPP format is not fully supported; export as XML instead",
	}
}
