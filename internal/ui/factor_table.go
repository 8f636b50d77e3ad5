package ui

import (
	"fmt"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FactorTable is a tview table component displaying the multiplier
// contributed by each factor category
type FactorTable struct {
	*tview.Table
}

// NewFactorTable creates a new FactorTable
func NewFactorTable() *FactorTable {
	t := &FactorTable{
		Table: tview.NewTable(),
	}

	t.SetBorder(true)
	t.SetTitle(" Factors ")
	t.SetSelectable(false, false)
	t.SetFixed(1, 0)

	t.setupColumns()

	return t
}

func (t *FactorTable) setupColumns() {
	headers := []string{"Factor", "Option", "Multiplier"}

	for i, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetExpansion(1)

		if i == 2 {
			cell = cell.SetAlign(tview.AlignRight)
		}

		t.SetCell(0, i, cell)
	}
}

// Update fills the table with the breakdown and its product
func (t *FactorTable) Update(breakdown []model.FactorContribution, product float64) {
	for i := t.GetRowCount() - 1; i > 0; i-- {
		t.RemoveRow(i)
	}

	for i, c := range breakdown {
		t.addFactorRow(i+1, c)
	}

	if len(breakdown) == 0 {
		return
	}

	row := len(breakdown) + 1
	t.SetCell(row, 0, tview.NewTableCell("Product").SetTextColor(tcell.ColorYellow))
	t.SetCell(row, 1, tview.NewTableCell(""))
	t.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf("%.3f", product)).
		SetTextColor(tcell.ColorGreen).
		SetAlign(tview.AlignRight))
}

func (t *FactorTable) addFactorRow(row int, c model.FactorContribution) {
	color := tcell.ColorWhite
	option := c.Option
	if !c.Applied {
		color = tcell.ColorGray
		option = "n/a"
	}

	t.SetCell(row, 0, tview.NewTableCell(c.Category.Label()).
		SetTextColor(color).
		SetExpansion(2))

	t.SetCell(row, 1, tview.NewTableCell(tview.Escape(option)).
		SetTextColor(color))

	t.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf("×%.2f", c.Multiplier)).
		SetTextColor(color).
		SetAlign(tview.AlignRight))
}
