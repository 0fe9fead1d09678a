package payslip

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayslipPDF_EncodesNamesForCoreFont(t *testing.T) {
	slip := PayslipResponse{
		EmployeeInfo: EmployeeInfo{
			Name:       "José Müller",
			EmployeeID: "EMP001",
			Location:   "Zürich",
			LOP:        "0.0",
		},
		Earnings: Earnings{BasicSalary: decimal.NewFromInt(30000)},
	}

	pdf := newPayslipPDF(slip, "2024", Apr)
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	out := buf.Bytes()

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	// cp1252: é = 0xE9, ü = 0xFC
	assert.True(t, bytes.Contains(out, []byte("Name: Jos\xe9 M\xfcller")))
	assert.True(t, bytes.Contains(out, []byte("Location: Z\xfcrich")))
	assert.False(t, bytes.Contains(out, []byte("José")))
}
