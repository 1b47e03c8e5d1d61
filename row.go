package dfgrep

// Row is one record of cells positionally aligned with a Schema.
// Rows are immutable by convention: filtering never mutates or
// reorders the cells of a row.
type Row []Value
