package orc

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// matrixCategories lists the primitive categories shown as both rows and
// columns of the CanConvert support table; complex categories are omitted
// since they are never convertible.
var matrixCategories = []Category{
	Boolean, Byte, Short, Int, Long, Float, Double, Decimal,
	String, Char, Varchar, Binary, Date, Timestamp,
}

// sampleType returns a representative Type value for a primitive category,
// used only to drive CanConvert for the purposes of rendering the support
// matrix. The same sample is used on both axes, so the DECIMAL, CHAR and
// VARCHAR diagonal cells show "no" although pairs of those categories with
// different parameters are convertible.
func sampleType(c Category) Type {
	switch c {
	case Decimal:
		return DecimalType(18, 2)
	case Char:
		return CharType(10)
	case Varchar:
		return VarcharType(10)
	default:
		return primitiveType{category: c}
	}
}

// PrintMatrix renders the CanConvert support table to w: rows are file
// types, columns are reader types, cells are "yes"/"no".
func PrintMatrix(w io.Writer) {
	table := tablewriter.NewWriter(w)

	header := make([]string, 0, len(matrixCategories)+1)
	header = append(header, "file \\ reader")
	for _, c := range matrixCategories {
		header = append(header, c.String())
	}
	table.SetHeader(header)

	for _, fileCategory := range matrixCategories {
		fileType := sampleType(fileCategory)
		row := make([]string, 0, len(matrixCategories)+1)
		row = append(row, fileCategory.String())
		for _, readerCategory := range matrixCategories {
			readerType := sampleType(readerCategory)
			if CanConvert(fileType, readerType) {
				row = append(row, "yes")
			} else {
				row = append(row, "no")
			}
		}
		table.Append(row)
	}

	table.Render()
}
