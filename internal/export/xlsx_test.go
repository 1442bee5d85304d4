package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmi.xlsx")

	require.NoError(t, WriteXLSX(path, sampleRecords()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, xlsxHeaders, rows[0])

	assert.Equal(t, "2024-01-01", rows[1][0])
	assert.Equal(t, "170", rows[1][2])
	assert.Equal(t, "65", rows[1][3])
	assert.Equal(t, "22.49", rows[1][4])
	assert.Equal(t, "Normal", rows[1][5])
	assert.Equal(t, "No", rows[1][6])

	assert.Equal(t, "72.5", rows[2][3])
	assert.Equal(t, "Overweight", rows[2][5])
	assert.Equal(t, "Yes", rows[2][6])
}

func TestWriteXLSXOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmi.xlsx")

	require.NoError(t, WriteXLSX(path, sampleRecords()))
	require.NoError(t, WriteXLSX(path, sampleRecords()[:1]))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
