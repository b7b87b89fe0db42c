package labels

import (
	"bytes"
	"testing"
)

func TestGenerateRackLabelsPDF(t *testing.T) {
	pdf, err := GenerateRackLabelsPDF("A", 3, 3)
	if err != nil {
		t.Fatalf("Failed to generate label PDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("PDF should not be empty")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("Output should start with the PDF magic bytes")
	}
}

func TestGenerateRackLabelsPDFWideRack(t *testing.T) {
	// Rack F is 3x19 and needs multiple pages.
	pdf, err := GenerateRackLabelsPDF("F", 3, 19)
	if err != nil {
		t.Fatalf("Failed to generate wide rack PDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("PDF should not be empty")
	}
}
