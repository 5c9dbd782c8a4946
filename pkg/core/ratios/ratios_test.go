package ratios

import (
	"math"
	"testing"

	"buffettbrain/pkg/core/snapshot"
)

func TestComputeROE(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		NetIncome:         snapshot.Float(150),
		ShareholderEquity: snapshot.Float(1000),
	}
	rs := Compute(s)

	if rs.ROE == nil {
		t.Fatal("Expected ROE, got nil")
	}
	if math.Abs(*rs.ROE-0.15) > 0.0001 {
		t.Errorf("Expected ROE 0.15, got %v", *rs.ROE)
	}
}

func TestComputeZeroEquityYieldsNil(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		NetIncome:         snapshot.Float(150),
		ShareholderEquity: snapshot.Float(0),
		TotalDebt:         snapshot.Float(500),
	}
	rs := Compute(s)

	if rs.ROE != nil {
		t.Errorf("Expected nil ROE with zero equity, got %v", *rs.ROE)
	}
	if rs.DebtToEquity != nil {
		t.Errorf("Expected nil D/E with zero equity, got %v", *rs.DebtToEquity)
	}
}

func TestComputeMissingInputsYieldNil(t *testing.T) {
	rs := Compute(&snapshot.FinancialSnapshot{})

	if rs.ROE != nil || rs.DebtToEquity != nil || rs.OperatingMargin != nil ||
		rs.CurrentRatio != nil || rs.ROCE != nil || rs.PERatio != nil ||
		rs.PBRatio != nil || rs.PEGRatio != nil {
		t.Error("Expected all derived ratios nil for an empty snapshot")
	}
}

func TestComputeDerivedBookValueAndPB(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		ShareholderEquity: snapshot.Float(1000),
		SharesOutstanding: snapshot.Float(100),
		CurrentPrice:      snapshot.Float(12),
	}
	rs := Compute(s)

	if rs.BookValuePerShare == nil {
		t.Fatal("Expected book value per share, got nil")
	}
	if math.Abs(*rs.BookValuePerShare-10) > 0.0001 {
		t.Errorf("Expected book value 10, got %v", *rs.BookValuePerShare)
	}
	if rs.PBRatio == nil {
		t.Fatal("Expected P/B, got nil")
	}
	if math.Abs(*rs.PBRatio-1.2) > 0.0001 {
		t.Errorf("Expected P/B 1.2, got %v", *rs.PBRatio)
	}
}

func TestComputeSuppliedPERatioWins(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		PERatio:      snapshot.Float(18),
		CurrentPrice: snapshot.Float(12),
		EPS:          snapshot.Float(1.5),
	}
	rs := Compute(s)

	if rs.PERatio == nil || *rs.PERatio != 18 {
		t.Errorf("Expected supplied P/E 18, got %v", rs.PERatio)
	}
}

func TestComputePEG(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		CurrentPrice:   snapshot.Float(12),
		EPS:            snapshot.Float(1.5),
		EarningsGrowth: snapshot.Float(0.12),
	}
	rs := Compute(s)

	// P/E = 8, growth 12% -> PEG = 8 / 12.
	if rs.PEGRatio == nil {
		t.Fatal("Expected PEG, got nil")
	}
	if math.Abs(*rs.PEGRatio-8.0/12.0) > 0.0001 {
		t.Errorf("Expected PEG %v, got %v", 8.0/12.0, *rs.PEGRatio)
	}
}

func TestComputePEGUndefinedForNegativeGrowth(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		CurrentPrice:   snapshot.Float(12),
		EPS:            snapshot.Float(1.5),
		EarningsGrowth: snapshot.Float(-0.05),
	}
	rs := Compute(s)

	if rs.PEGRatio != nil {
		t.Errorf("Expected nil PEG for negative growth, got %v", *rs.PEGRatio)
	}
}

func TestComputeROCE(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		OperatingIncome:   snapshot.Float(400),
		ShareholderEquity: snapshot.Float(1000),
		TotalDebt:         snapshot.Float(300),
	}
	rs := Compute(s)

	if rs.ROCE == nil {
		t.Fatal("Expected ROCE, got nil")
	}
	if math.Abs(*rs.ROCE-400.0/1300.0) > 0.0001 {
		t.Errorf("Expected ROCE %v, got %v", 400.0/1300.0, *rs.ROCE)
	}
}
