package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// readRows opens rendered workbook bytes and returns label -> value for column A/B.
func readRows(t *testing.T, data []byte) map[string]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(WorkbookSheet)
	require.NoError(t, err)

	values := map[string]string{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if len(row) > 1 {
			values[row[0]] = row[1]
		} else {
			values[row[0]] = ""
		}
	}
	return values
}

func TestRenderWorkbook_Figures(t *testing.T) {
	data, err := RenderWorkbook(buildTestResult(t), DefaultReportOptions())
	require.NoError(t, err)

	values := readRows(t, data)
	assert.Contains(t, values, "Furniture Profitability Report")
	assert.Equal(t, "4", values["Units produced"])
	assert.Equal(t, "6", values["Total working days"])
	assert.Equal(t, "Set price by profit percentage", values["Pricing mode"])
	assert.Equal(t, "40.00%", values["Pricing parameter"])
	assert.Equal(t, "3,189.78", values["Total investment"])
	assert.Equal(t, "797.44", values["Investment per unit"])
	assert.Contains(t, values, "Powered by FurniProfit")
}

func TestRenderWorkbook_Loss(t *testing.T) {
	data, err := RenderWorkbook(buildLossResult(t), DefaultReportOptions())
	require.NoError(t, err)

	values := readRows(t, data)
	assert.Equal(t, "-550.00", values["Profit per unit"])
}

func TestRenderWorkbook_SheetName(t *testing.T) {
	data, err := RenderWorkbook(buildTestResult(t), DefaultReportOptions())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{WorkbookSheet}, f.GetSheetList())
}
