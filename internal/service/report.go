package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/metrics"
)

const (
	reportMarginLeft   = 20.0
	reportMarginTop    = 20.0
	reportMarginRight  = 20.0
	reportMarginBottom = 20.0
	reportContentWidth = 210.0 - reportMarginLeft - reportMarginRight
)

// ErrEmptyReport is returned when a report is requested without an estimate.
var ErrEmptyReport = errors.New("report requires an estimate")

// ReportGenerator renders savings estimates as PDF documents.
type ReportGenerator interface {
	GenerateSavingsReport(estimate model.SavingsEstimate, tiers []model.SavingsEstimate, generatedAt time.Time) ([]byte, error)
}

// PDFReportService implements ReportGenerator with fpdf.
type PDFReportService struct {
	title string
}

// NewPDFReportService creates a report generator whose documents carry title.
func NewPDFReportService(title string) *PDFReportService {
	if title == "" {
		title = "Dosing Down, DOGE-ing Up"
	}
	return &PDFReportService{title: title}
}

type savingsReport struct {
	pdf   *fpdf.Fpdf
	title string
}

// GenerateSavingsReport renders one estimate, the cost-tier comparison and the data notes.
func (s *PDFReportService) GenerateSavingsReport(estimate model.SavingsEstimate, tiers []model.SavingsEstimate, generatedAt time.Time) ([]byte, error) {
	if estimate.CostPerDay == 0 {
		metrics.RecordReport("invalid")
		return nil, ErrEmptyReport
	}

	r := &savingsReport{pdf: fpdf.New("P", "mm", "A4", ""), title: s.title}
	r.pdf.SetMargins(reportMarginLeft, reportMarginTop, reportMarginRight)
	r.pdf.SetAutoPageBreak(true, reportMarginBottom)
	r.pdf.SetTitle(s.title, true)
	r.pdf.SetCreationDate(generatedAt)
	r.pdf.SetModificationDate(generatedAt)
	r.pdf.SetCatalogSort(true)

	r.pdf.AddPage()
	r.addHeader(generatedAt)
	r.addHeadline(estimate)
	r.addInputs(estimate)
	if len(tiers) > 0 {
		r.addTierTable(tiers)
	}
	r.addDataNotes()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		metrics.RecordReport("error")
		return nil, fmt.Errorf("failed to render savings report: %w", err)
	}

	metrics.RecordReport("success")
	return buf.Bytes(), nil
}

func (r *savingsReport) addHeader(generatedAt time.Time) {
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(reportContentWidth, 12, r.title, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(reportContentWidth, 8, "Nursing Home Antipsychotic Savings Estimate", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(reportContentWidth, 6, "Generated: "+generatedAt.UTC().Format("2 January 2006 15:04 MST"), "", 1, "C", false, 0, "")
	r.pdf.Ln(8)
}

func (r *savingsReport) addHeadline(e model.SavingsEstimate) {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(reportContentWidth, 9, e.Label, "LTR", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "B", 30)
	if e.IsCostIncrease {
		r.pdf.SetTextColor(170, 30, 30)
	} else {
		r.pdf.SetTextColor(20, 110, 60)
	}
	r.pdf.CellFormat(reportContentWidth, 16, e.Headline, "LR", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(reportContentWidth, 9, e.Summary, "LBR", 1, "C", true, 0, "")
	r.pdf.Ln(8)
}

func (r *savingsReport) addInputs(e model.SavingsEstimate) {
	r.sectionTitle("Calculation")

	rows := [][2]string{
		{"Nursing home residents", fmt.Sprintf("%d", model.TotalResidents)},
		{"Current AP rate", model.FormatPercent(e.CurrentApRate)},
		{"Target AP rate", model.FormatPercent(e.TargetApRate)},
		{"Residents on APs today", fmt.Sprintf("%.0f", e.CurrentApResidents)},
		{"Residents on APs at target", fmt.Sprintf("%.0f", e.TargetApResidents)},
		{"Change in residents on APs", fmt.Sprintf("%.0f", e.ReducedResidents)},
		{"Drug cost per day", fmt.Sprintf("$%d", e.CostPerDay)},
		{"Annual amount (USD)", fmt.Sprintf("%.0f", e.AnnualSavingsUSD)},
	}

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, row := range rows {
		r.pdf.CellFormat(reportContentWidth*0.6, 7, row[0], "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(reportContentWidth*0.4, 7, row[1], "1", 1, "R", false, 0, "")
	}
	r.pdf.Ln(8)
}

func (r *savingsReport) addTierTable(tiers []model.SavingsEstimate) {
	r.sectionTitle(fmt.Sprintf("Cost Tiers at %s Target", model.FormatPercent(tiers[0].TargetApRate)))

	widths := []float64{reportContentWidth * 0.3, reportContentWidth * 0.3, reportContentWidth * 0.4}
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Cost per day", "Estimate", "Annual amount (USD)"} {
		r.pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFillColor(245, 247, 250)
	for i, t := range tiers {
		fill := i%2 == 1
		r.pdf.CellFormat(widths[0], 7, fmt.Sprintf("$%d", t.CostPerDay), "1", 0, "C", fill, 0, "")
		r.pdf.CellFormat(widths[1], 7, t.Headline, "1", 0, "C", fill, 0, "")
		r.pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.0f", t.AnnualSavingsUSD), "1", 1, "R", fill, 0, "")
	}
	r.pdf.Ln(8)
}

func (r *savingsReport) addDataNotes() {
	r.sectionTitle("About the Data")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, note := range model.AboutTheData {
		r.pdf.MultiCell(reportContentWidth, 6, "- "+note, "", "L", false)
	}
}

func (r *savingsReport) sectionTitle(title string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(reportContentWidth, 9, title, "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}
