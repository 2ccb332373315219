package hashfuncs

import "fmt"

// Batch is a fixed number of logical rows spread across one or more
// parallel columns.
type Batch struct {
	columns []*Vector
	length  int
}

// MakeBatch constructs a batch from parallel columns, which must all
// have the same logical length.
func MakeBatch(columns ...*Vector) *Batch {
	b := &Batch{columns: columns}
	if len(columns) > 0 {
		b.length = columns[0].Len()
	}
	for _, c := range columns {
		if c.Len() != b.length {
			panic(fmt.Sprintf("cannot create batch from columns of lengths %d and %d", b.length, c.Len()))
		}
	}
	return b
}

// Len returns the number of logical rows in the batch.
func (b *Batch) Len() int { return b.length }

// NumColumns returns the number of columns in the batch.
func (b *Batch) NumColumns() int { return len(b.columns) }

// Column returns the i-th column of the batch.
func (b *Batch) Column(i int) *Vector { return b.columns[i] }
