package analyze

import "strings"

// Grid is a row-major table of cell text. Unpopulated cells hold the empty
// string.
type Grid [][]string

// ReconstructGrid orders an unordered block list into a grid of cell text.
//
// Dimensions come from the maximum 1-based row and column index among cell
// blocks, so a table whose indices start above 1 or have gaps yields a
// larger, partially empty grid. A document without cell blocks yields an
// empty grid. Cells whose resolved address falls outside those bounds are
// dropped rather than failing the whole table.
func ReconstructGrid(blocks []Block) Grid {
	byID := make(map[string]*Block, len(blocks))
	for i := range blocks {
		if blocks[i].ID != "" {
			byID[blocks[i].ID] = &blocks[i]
		}
	}

	var cells []*Block
	maxRow, maxCol := 0, 0
	for i := range blocks {
		b := &blocks[i]
		if b.Kind != KindCell {
			continue
		}
		cells = append(cells, b)
		if b.RowIndex > maxRow {
			maxRow = b.RowIndex
		}
		if b.ColumnIndex > maxCol {
			maxCol = b.ColumnIndex
		}
	}
	if len(cells) == 0 {
		return Grid{}
	}

	grid := make(Grid, maxRow)
	for r := range grid {
		grid[r] = make([]string, maxCol)
	}

	for _, cell := range cells {
		// Unreported indices count as 1, matching the service's 1-based
		// addressing.
		row, col := cell.RowIndex, cell.ColumnIndex
		if row == 0 {
			row = 1
		}
		if col == 0 {
			col = 1
		}
		if row > maxRow || col > maxCol {
			continue
		}
		grid[row-1][col-1] = cellText(cell, byID)
	}

	return grid
}

// cellText resolves a cell's text by walking its child relationships in
// order, keeping word blocks only. Selection markers and other child kinds
// are skipped.
func cellText(cell *Block, byID map[string]*Block) string {
	var words []string
	for _, rel := range cell.Relationships {
		if rel.Type != RelationChild {
			continue
		}
		for _, id := range rel.IDs {
			child, ok := byID[id]
			if !ok || child.Kind != KindWord {
				continue
			}
			words = append(words, child.Text)
		}
	}
	return strings.Join(words, " ")
}
