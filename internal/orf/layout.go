package orf

import (
	"fmt"
	"image/color"
)

const (
	PanelHeight   = 140
	panelMinWidth = 600
	panelMaxWidth = 1000
	panelInset    = 24

	axisInset  = 20
	frameGap   = 18
	labelRaise = 10
	BarWidth   = 6
)

var (
	AxisColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 64}
	LabelColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 235}
	defaultColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	frameColors  = map[int]color.NRGBA{
		1: {R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
		2: {R: 0x3d, G: 0xb2, B: 0xff, A: 0xff},
		3: {R: 0xff, G: 0x9f, B: 0x43, A: 0xff},
	}
)

// Bar is one laid-out record.
type Bar struct {
	X1, X2 float64
	Y      float64
	Color  color.NRGBA
	Label  string
	LabelX float64
	LabelY float64
}

// Layout is the track geometry for a panel of Width×Height pixels.
type Layout struct {
	Width, Height  int
	AxisX1, AxisX2 float64
	AxisY          float64
	Bars           []Bar
}

// PanelWidth fits the track panel to the space available, between 600 and
// 1000 pixels.
func PanelWidth(available int) int {
	w := available - panelInset
	if w > panelMaxWidth {
		w = panelMaxWidth
	}
	if w < panelMinWidth {
		w = panelMinWidth
	}
	return w
}

// Layout projects the records onto an axis inset 20 px from both panel
// edges; frames 1..3 sit above, on, and below the axis.
func (t Track) Layout(width, height int) Layout {
	l := Layout{
		Width:  width,
		Height: height,
		AxisX1: axisInset,
		AxisX2: float64(width - axisInset),
		AxisY:  float64(height) / 2,
	}
	if t.Length <= 0 {
		return l
	}

	span := float64(width - 2*axisInset)
	for i, r := range t.Records {
		x1 := axisInset + float64(r.Start)/float64(t.Length)*span
		y := l.AxisY + float64(r.Frame-2)*frameGap
		c, ok := frameColors[r.Frame]
		if !ok {
			c = defaultColor
		}
		l.Bars = append(l.Bars, Bar{
			X1:     x1,
			X2:     axisInset + float64(r.End)/float64(t.Length)*span,
			Y:      y,
			Color:  c,
			Label:  fmt.Sprintf("ORF%d | %d nt | F%d", i+1, r.Length, r.Frame),
			LabelX: x1,
			LabelY: y - labelRaise,
		})
	}
	return l
}
