// Package exporter writes the two analytics result tables to disk, as
// delimited text files and as a single Excel workbook. Missing values are
// exported as empty cells.
package exporter
