package export

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewSummary(t *testing.T) {
	result := buildTestResult(t)
	s := NewSummary(result)

	if s.Quantity != 4 || s.TotalDays != 6 {
		t.Errorf("wrong production figures: %+v", s)
	}
	if s.PricingMode != "PERCENTAGE" {
		t.Errorf("expected mode PERCENTAGE, got %q", s.PricingMode)
	}
	// 1850 + 420.50 + 113.525 wear + 540 labor + 80 + 150 + 35.75 = 3189.775
	if s.TotalInvestment != "3189.78" {
		t.Errorf("expected total investment 3189.78, got %q", s.TotalInvestment)
	}
	if s.InvestmentPerUnit != "797.44" {
		t.Errorf("expected investment per unit 797.44, got %q", s.InvestmentPerUnit)
	}
}

func TestNewSummary_Loss(t *testing.T) {
	s := NewSummary(buildLossResult(t))
	// 1000 + 50 wear = 1050 per unit, sold at 500
	if s.ProfitPerUnit != "-550.00" {
		t.Errorf("expected profit per unit -550.00, got %q", s.ProfitPerUnit)
	}
}

func TestSummaryQR(t *testing.T) {
	png, err := summaryQR(buildTestResult(t))
	if err != nil {
		t.Fatalf("summaryQR returned error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatal("QR code is not a PNG image")
	}

	// The payload must stay small enough for a medium-recovery QR code
	data, err := json.Marshal(NewSummary(buildTestResult(t)))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) > 1000 {
		t.Errorf("summary payload unexpectedly large: %d bytes", len(data))
	}
}
