// Package render 将牌副渲染为终端里的经典四家牌型图。
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/contract-bridge/bridge"
	"github.com/palemoky/contract-bridge/deal"
)

// Lipgloss Styles
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
)

// seatLabels 方位中文名称映射表
var seatLabels = map[bridge.Seat]string{
	bridge.North: "北",
	bridge.East:  "东",
	bridge.South: "南",
	bridge.West:  "西",
}

// vulLabels 局况中文名称映射表
var vulLabels = map[deal.Vulnerability]string{
	deal.VulNone: "双方无局",
	deal.VulNS:   "南北有局",
	deal.VulEW:   "东西有局",
	deal.VulBoth: "双方有局",
}

// SuitLine 渲染一门花色：着色的花色符号加按降序排列的点数
func SuitLine(s bridge.Suit, h bridge.Holding) string {
	style := BlackStyle
	if s.Color() == bridge.Red {
		style = RedStyle
	}

	if h.Count() == 0 {
		return style.Render(s.String()) + " —"
	}

	names := make([]string, 0, h.Count())
	for r := range h.RanksDesc() {
		names = append(names, r.String())
	}
	return style.Render(s.String()) + " " + strings.Join(names, " ")
}

// HandBlock 渲染一家的方位标签与四门花色
func HandBlock(seat bridge.Seat, h deal.Hand) string {
	lines := make([]string, 0, 5)
	lines = append(lines, LabelStyle.Render(seatLabels[seat]))
	for _, s := range bridge.Suits {
		lines = append(lines, SuitLine(s, h.Holding(s)))
	}
	return strings.Join(lines, "\n")
}

// Header 渲染副号、发牌人与局况
func Header(b deal.Board) string {
	return HeaderStyle.Render(fmt.Sprintf("第 %d 副  发牌: %s  局况: %s",
		b.Number, seatLabels[b.Dealer()], vulLabels[b.Vulnerability()]))
}

// Diagram 渲染经典的四家牌型图：北在上、南在下、西东分列两侧
func Diagram(b deal.Board) string {
	indent := lipgloss.NewStyle().MarginLeft(14)
	gap := strings.Repeat(" ", 10)

	north := indent.Render(HandBlock(bridge.North, b.Hands.North))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		HandBlock(bridge.West, b.Hands.West),
		gap,
		HandBlock(bridge.East, b.Hands.East),
	)
	south := indent.Render(HandBlock(bridge.South, b.Hands.South))

	return strings.Join([]string{Header(b), north, middle, south}, "\n")
}
