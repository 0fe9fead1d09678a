package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"
)

type pdfLine struct {
	label  string
	amount decimal.Decimal
}

func buildPayslipPDF(slip PayslipResponse, year string, month MonthKey) ([]byte, error) {
	pdf := newPayslipPDF(slip, year, month)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newPayslipPDF lays out the document. Core fonts are cp1252, so every
// free-text value goes through tr; characters outside it are dropped.
func newPayslipPDF(slip PayslipResponse, year string, month MonthKey) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Payslip", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(190, 6, tr(fmt.Sprintf("%s %s", month.Title(), year)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Employee Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	info := slip.EmployeeInfo
	pairs := [][2]string{
		{"Name: " + info.Name, "Employee ID: " + info.EmployeeID},
		{"Designation: " + info.Designation, "Department: " + info.Department},
		{"Bank: " + info.BankName, "Account No: " + info.AccountNo},
		{"Location: " + info.Location, "LOP: " + info.LOP},
	}
	for _, p := range pairs {
		pdf.CellFormat(95, 7, tr(p[0]), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, tr(p[1]), "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	e, d := slip.Earnings, slip.Deductions
	earnings := []pdfLine{
		{"Basic Salary", e.BasicSalary},
		{"House Rent Allowance", e.HouseRentAllowance},
		{"Conveyance Allowance", e.ConveyanceAllowance},
		{"Medical Allowance", e.MedicalAllowance},
		{"Special Allowance", e.SpecialAllowance},
	}
	deductions := []pdfLine{
		{"EPF", d.EPF},
		{"Health Insurance", d.HealthInsurance},
		{"Professional Tax", d.ProfessionalTax},
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(60, 7, "Earnings", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Deductions", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	rows := len(earnings)
	if len(deductions) > rows {
		rows = len(deductions)
	}
	for i := 0; i < rows; i++ {
		writePDFLine(pdf, earnings, i, 0)
		writePDFLine(pdf, deductions, i, 1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 7, "Gross Salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, e.GrossSalary.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, "Total Deductions", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, d.TotalDeductions.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, "Net Pay: Rs. "+d.NetPay.StringFixed(2), "1", 1, "C", true, 0, "")

	return pdf
}

func writePDFLine(pdf *gofpdf.Fpdf, lines []pdfLine, i, ln int) {
	if i >= len(lines) {
		pdf.CellFormat(60, 6, "", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, "", "1", ln, "R", false, 0, "")
		return
	}
	pdf.CellFormat(60, 6, lines[i].label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, lines[i].amount.StringFixed(2), "1", ln, "R", false, 0, "")
}
