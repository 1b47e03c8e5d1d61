// Package dfgrep holds the data model shared by every layer of the
// repository: column types, cell values, schemas, and rows.  The
// expression algebra, the frame capability layer, the format readers
// and writers, and the grep core all speak in these terms so that no
// layer depends on a concrete dataframe backend.
package dfgrep
