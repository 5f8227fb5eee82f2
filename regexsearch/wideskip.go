package regexsearch

import "github.com/phroun/termsearch/grid"

// skipFullwidth elides the second half of a fullwidth pair (and the
// leading-spacer anomaly where a wide char that doesn't fit in the last
// column starts at column 0 of the next line instead) so the caller sees
// exactly one character per visible grapheme column. It may advance cur
// and returns the cell that should be treated as "current" afterward,
// along with the point that should be recorded for it.
//
// That point is cur.Point() after any advance in every case except one:
// a LeadingWideCharSpacer encountered moving Right. There, the spacer's
// own column is the grapheme's visible position (the real wide char is
// only stored at column 0 of the next line because it didn't fit), so the
// point stays pinned at the spacer even though cur has moved on to fetch
// the wide char's bytes and step past its trailing spacer in turn.
func skipFullwidth(g *grid.Grid, cur *grid.Cursor, cell grid.Cell, dir grid.Direction) (grid.Cell, grid.Point) {
	landing := cur.Point()

	switch dir {
	case grid.Right:
		switch {
		case cell.Flags.Has(grid.LeadingWideCharSpacer):
			if _, _, ok := cur.Next(); ok {
				cell = cur.Cell()
				cur.Next()
			}
			return cell, landing

		case cell.Flags.Has(grid.WideChar) && landing.Column != g.LastColumn():
			cur.Next()
		}

	case grid.Left:
		switch {
		case cell.Flags.Has(grid.LeadingWideCharSpacer):
			// Already the adopted cell: this column is where the wide
			// char visibly starts even though it spilled from the row
			// above, so there is nothing to step back across.

		case cell.Flags.Has(grid.WideCharSpacer):
			if _, _, ok := cur.Prev(); ok {
				cell = cur.Cell()
				peek := *cur
				if _, before, ok := peek.Prev(); ok && before.Flags.Has(grid.LeadingWideCharSpacer) {
					cur.Prev()
				}
			}
		}
	}
	return cell, cur.Point()
}
