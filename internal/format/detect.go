// Package format is the front door above the core: it inspects a raw
// byte buffer, routes it to the XER reader or the MS-Project XML reader,
// and maps every failure mode from either path to the shared
// scheduleerr taxonomy.
package format

import (
	"bytes"

	"github.com/avireddy0/XERReader/internal/builder"
	"github.com/avireddy0/XERReader/internal/mspxml"
	"github.com/avireddy0/XERReader/pkg/schedule"
	"github.com/avireddy0/XERReader/pkg/scheduleerr"
	"github.com/avireddy0/XERReader/pkg/xer"
)

// compoundBinaryMagic is the OLE/Compound File Binary signature MS
// Project's legacy .mpp format carries in its first 8 bytes.
var compoundBinaryMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

const sniffWindow = 100

// Parse auto-detects data's format and returns a populated Schedule. This
// is the only entry point a host needs: it owns the EmptyFile check
// (neither the XER reader nor the XML reader are responsible for it,
// since an empty buffer never reaches a specific parser) and the MPP
// compound-binary rejection path.
func Parse(data []byte) (*schedule.Schedule, []schedule.Diagnostic, error) {
	if len(data) == 0 {
		return nil, nil, scheduleerr.NewEmptyFile()
	}

	if bytes.HasPrefix(data, compoundBinaryMagic) {
		return parseCompoundBinary(data)
	}

	window := data
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	if bytes.Contains(window, []byte("<?xml")) || bytes.Contains(window, []byte("<Project")) {
		return parseXML(data)
	}

	return parseXER(data)
}

func parseXER(data []byte) (*schedule.Schedule, []schedule.Diagnostic, error) {
	tbls, readDiags, err := xer.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	sched, buildDiags, err := builder.Build(tbls)
	if err != nil {
		return nil, nil, err
	}
	return sched, append(readDiags, buildDiags...), nil
}

func parseXML(data []byte) (*schedule.Schedule, []schedule.Diagnostic, error) {
	return mspxml.Parse(data)
}

// parseCompoundBinary attempts to scrape an embedded XML payload out of a
// legacy compound-binary MPP file before giving up; MPP itself is a
// non-goal, so the embedded-XML path is the only fallback offered.
func parseCompoundBinary(data []byte) (*schedule.Schedule, []schedule.Diagnostic, error) {
	start := bytes.Index(data, []byte("<?xml"))
	end := bytes.LastIndex(data, []byte("</Project>"))
	if start < 0 || end < 0 || end <= start {
		return nil, nil, scheduleerr.NewBinaryFormatNotFullySupported()
	}
	embedded := data[start : end+len("</Project>")]
	return parseXML(embedded)
}
