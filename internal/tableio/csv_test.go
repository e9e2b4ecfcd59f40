package tableio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csomaati/expensecat/internal/table"
)

func TestReadCSV_HeaderFixesColumns(t *testing.T) {
	in := "Dátum,Összeg,Kategória\n2023-04-12,-1500,étterem\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dátum", "Összeg", "Kategória"}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, table.Text("étterem"), tbl.Rows[0].Get("Kategória"))
}

func TestReadCSV_StripsBOM(t *testing.T) {
	in := "\uFEFFDátum,Összeg\n2023-04-12,-1500\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Dátum", tbl.Columns[0], "BOM must not stick to the first column name")
}

func TestReadCSV_EmptyCellIsMissing(t *testing.T) {
	in := "a,b\n1,\n,2\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	assert.Equal(t, table.Missing{}, tbl.Rows[0].Get("b"))
	assert.Equal(t, table.Missing{}, tbl.Rows[1].Get("a"))
	assert.Equal(t, table.Text("2"), tbl.Rows[1].Get("b"))
}

func TestReadCSV_ShortRecordFillsMissing(t *testing.T) {
	in := "a,b,c\n1,2\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, table.Missing{}, tbl.Rows[0].Get("c"))
}

func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	in := "Dátum,Jegyzet,Összeg\n2023-04-12,kávé,-1500\n2023-04-13,,-20000\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteCSV(&out, tbl))
	assert.Equal(t, in, out.String())
}

func TestWriteCSV_QuotesFieldsWithCommas(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"note"},
		Rows:    []table.Row{{"note": table.Text("a, b")}},
	}

	var out bytes.Buffer
	require.NoError(t, WriteCSV(&out, tbl))
	assert.Equal(t, "note\n\"a, b\"\n", out.String())
}
