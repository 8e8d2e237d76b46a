package format

import (
	"testing"

	"github.com/avireddy0/XERReader/pkg/scheduleerr"
)

func TestParse_EmptyFile(t *testing.T) {
	_, _, err := Parse(nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	xerr, ok := err.(*scheduleerr.Error)
	if !ok || xerr.Kind != scheduleerr.KindEmptyFile {
		t.Fatalf("expected EmptyFile, got %v", err)
	}
}

func TestParse_RoutesXER(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\n%R\t1000\n%E\n"
	sched, _, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(sched.Projects))
	}
}

func TestParse_RoutesXMLOnDeclaration(t *testing.T) {
	input := `<?xml version="1.0"?><Project><Tasks></Tasks></Project>`
	_, _, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_RoutesXMLOnProjectTag(t *testing.T) {
	input := `<Project><Tasks></Tasks></Project>`
	_, _, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_CompoundBinaryWithoutEmbeddedXMLIsNotSupported(t *testing.T) {
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, []byte("junk")...)
	_, _, err := Parse(data)
	if err == nil {
		t.Fatal("expected an error")
	}
	xerr, ok := err.(*scheduleerr.Error)
	if !ok || xerr.Kind != scheduleerr.KindBinaryFormatNotFullySupported {
		t.Fatalf("expected BinaryFormatNotFullySupported, got %v", err)
	}
}

func TestParse_CompoundBinaryWithEmbeddedXMLIsScraped(t *testing.T) {
	embedded := `<?xml version="1.0"?><Project><Tasks></Tasks></Project>`
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, []byte("junk"+embedded+"trailer")...)
	_, _, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
