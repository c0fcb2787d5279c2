// Package analyze turns schedule photos into table grids: it wraps the
// document-analysis service and reconstructs an ordered 2-D grid from the
// unordered block list the service returns.
package analyze

// BlockKind labels a document-analysis primitive. Anything that is not a
// table cell or a word is KindOther and ignored during reconstruction.
type BlockKind string

const (
	KindCell  BlockKind = "CELL"
	KindWord  BlockKind = "WORD"
	KindOther BlockKind = "OTHER"
)

// RelationChild is the relationship type linking a cell to the words it
// contains.
const RelationChild = "CHILD"

// Relationship points a block at an ordered list of related block IDs.
type Relationship struct {
	Type string
	IDs  []string
}

// Block is one labeled primitive from a document-analysis call. Row and
// column indices are 1-based and only meaningful for cells; a zero value
// means the service did not report one.
type Block struct {
	ID            string
	Kind          BlockKind
	RowIndex      int
	ColumnIndex   int
	Text          string
	Relationships []Relationship
}
