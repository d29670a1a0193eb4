// Package ui renders aggregation results in a terminal table when a
// compatible terminal is available. It is a pure consumer: band selection is
// the only input, and every repaint re-queries the aggregator.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"qsltracker/aggregate"
	"qsltracker/contact"
)

// Viewer shows one band's unconfirmed entities with a totals footer and a
// band selector on the left.
type Viewer struct {
	app        *tview.Application
	bandList   *tview.List
	table      *tview.Table
	status     *tview.TextView
	records    []contact.Record
	bands      []string
	parseLine  string
	sourceFile string
	showCodes  bool
}

// Options adjusts viewer behavior.
type Options struct {
	EnableMouse bool
	ShowCodes   bool   // show the DXCC code column
	ParseLine   string // parse summary for the status bar
	SourceFile  string // shown in the title
}

// NewViewer builds the viewer over an already-parsed record sequence. bands
// are shown in the given order; the first one is selected initially.
func NewViewer(records []contact.Record, bands []string, opts Options) *Viewer {
	v := &Viewer{
		records:    records,
		bands:      bands,
		parseLine:  opts.ParseLine,
		sourceFile: opts.SourceFile,
		showCodes:  opts.ShowCodes,
	}

	v.bandList = tview.NewList().ShowSecondaryText(false)
	v.bandList.SetBorder(true).SetTitle(" Band ")
	for _, band := range bands {
		v.bandList.AddItem(band, "", 0, nil)
	}
	v.bandList.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		if index >= 0 && index < len(v.bands) {
			v.showBand(v.bands[index])
		}
	})

	v.table = tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	v.table.SetBorder(true)

	v.status = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	v.status.SetTextColor(tcell.ColorYellow)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(v.bandList, 12, 0, true).
			AddItem(v.table, 0, 1, false), 0, 1, true).
		AddItem(v.status, 1, 0, false)

	v.app = tview.NewApplication().
		SetRoot(layout, true).
		EnableMouse(opts.EnableMouse)
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTAB:
			if v.bandList.HasFocus() {
				v.app.SetFocus(v.table)
			} else {
				v.app.SetFocus(v.bandList)
			}
			return nil
		case event.Rune() == 'q', event.Key() == tcell.KeyEscape:
			v.app.Stop()
			return nil
		}
		return event
	})

	if len(bands) > 0 {
		v.showBand(bands[0])
	} else {
		v.status.SetText(" no records with a usable band — " + v.parseLine)
	}
	return v
}

// Run blocks until the user quits.
func (v *Viewer) Run() error {
	return v.app.Run()
}

func (v *Viewer) showBand(band string) {
	summary := aggregate.Summarize(v.records, band)
	v.table.Clear()
	v.table.SetTitle(fmt.Sprintf(" Unconfirmed on %s — %s ", summary.Band, v.sourceFile))

	col := 0
	header := func(text string) {
		cell := tview.NewTableCell(text).
			SetTextColor(tcell.ColorAqua).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)
		v.table.SetCell(0, col, cell)
		col++
	}
	header("Country")
	if v.showCodes {
		header("DXCC")
	}
	header("QSOs")

	for i, e := range summary.UnconfirmedEntities {
		row := i + 1
		col = 0
		v.table.SetCell(row, col, tview.NewTableCell(e.Label()))
		col++
		if v.showCodes {
			v.table.SetCell(row, col, tview.NewTableCell(e.Code))
			col++
		}
		v.table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf("%d", e.Contacts)))
	}
	v.table.ScrollToBeginning()

	v.status.SetText(fmt.Sprintf(" %d unconfirmed entities | contacts: %d  lotw: %d  card: %d | %s",
		len(summary.UnconfirmedEntities), summary.TotalContacts,
		summary.TotalLoTWConfirmed, summary.TotalCardConfirmed, v.parseLine))
}
