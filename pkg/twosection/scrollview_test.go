package twosection

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func linesBlock(prefix string, n int) Block {
	return BlockFunc(func(int) string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s%d", prefix, i)
		}
		return strings.Join(out, "\n")
	})
}

func rows(view string) []string {
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestScrollViewPinsBottomBlock(t *testing.T) {
	v := NewScrollView(linesBlock("top", 3), linesBlock("bot", 2))
	got := rows(v.View(20, 10))
	if len(got) != 10 {
		t.Fatalf("got %d rows, want 10", len(got))
	}
	if got[0] != "top0" || got[2] != "top2" {
		t.Errorf("top rows = %q", got[:3])
	}
	if got[3] != "" {
		t.Errorf("gap row = %q, want blank", got[3])
	}
	if got[8] != "bot0" || got[9] != "bot1" {
		t.Errorf("bottom rows = %q, want pinned bot0/bot1", got[8:])
	}
}

func TestScrollViewOverflowScrolls(t *testing.T) {
	v := NewScrollView(linesBlock("top", 12), linesBlock("bot", 2))
	got := rows(v.View(20, 10))
	if got[9] != "top9" {
		t.Errorf("last visible row = %q, want top9", got[9])
	}
	if h := v.Layout().ContentSize().H; h != 14 {
		t.Errorf("content height = %v, want 14", h)
	}

	v.ScrollTo(4)
	if v.YOffset() != 4 {
		t.Fatalf("YOffset = %d, want 4", v.YOffset())
	}
	got = rows(v.View(20, 10))
	if got[0] != "top4" || got[8] != "bot0" || got[9] != "bot1" {
		t.Errorf("scrolled rows = %q", got)
	}
}

func TestScrollViewRelayoutOnResize(t *testing.T) {
	v := NewScrollView(linesBlock("top", 3), linesBlock("bot", 2))
	v.View(20, 10)
	got := rows(v.View(20, 6))
	if got[4] != "bot0" {
		t.Errorf("after resize row 4 = %q, want bot0", got[4])
	}
	bottom, _ := v.Layout().AttributesForItem(1)
	if bottom.Frame.Y != 4 {
		t.Errorf("bottom y = %v, want 4", bottom.Frame.Y)
	}
}

func TestScrollViewRelayoutOnHeightChange(t *testing.T) {
	n := 3
	top := BlockFunc(func(int) string { return strings.TrimSuffix(strings.Repeat("t\n", n), "\n") })
	v := NewScrollView(top, linesBlock("bot", 2))
	v.View(20, 6)

	n = 5
	v.Update(nil)
	bottom, _ := v.Layout().AttributesForItem(1)
	if bottom.Frame.Y != 5 {
		t.Errorf("bottom y = %v, want 5 after the top block grew", bottom.Frame.Y)
	}
}

func TestScrollViewEmptyBlocks(t *testing.T) {
	v := NewScrollView(nil, BlockFunc(func(int) string { return "" }))
	got := rows(v.View(10, 3))
	for i, r := range got {
		if r != "" {
			t.Errorf("row %d = %q, want blank", i, r)
		}
	}
	if v.TopSectionHeight(10) != 0 || v.BottomSectionHeight(10) != 0 {
		t.Error("empty blocks should have zero height")
	}
}

func TestScrollViewSetBlocks(t *testing.T) {
	v := NewScrollView(linesBlock("a", 1), linesBlock("b", 1))
	v.View(10, 4)
	v.SetBlocks(linesBlock("c", 2), linesBlock("d", 1))
	got := rows(v.View(10, 4))
	if got[0] != "c0" || got[3] != "d0" {
		t.Errorf("rows = %q", got)
	}
}

type updatingBlock struct {
	Block
	seen   []tea.Msg
	inited bool
}

func (b *updatingBlock) Update(msg tea.Msg) tea.Cmd {
	b.seen = append(b.seen, msg)
	return nil
}

func (b *updatingBlock) Init() tea.Cmd {
	b.inited = true
	return nil
}

func TestScrollViewForwardsToBlocks(t *testing.T) {
	top := &updatingBlock{Block: linesBlock("t", 1)}
	bottom := &updatingBlock{Block: linesBlock("b", 1)}
	v := NewScrollView(top, bottom)
	v.Init()
	if !top.inited || !bottom.inited {
		t.Error("Init not forwarded")
	}
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(top.seen) != 1 || len(bottom.seen) != 1 {
		t.Errorf("seen top=%d bottom=%d, want 1 each", len(top.seen), len(bottom.seen))
	}
}

type clickBlock struct {
	Block
	clicks []int
}

func (b *clickBlock) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.MouseMsg); ok {
		b.clicks = append(b.clicks, m.Y)
	}
	return nil
}

func leftPress(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 2, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestScrollViewRoutesClickToBlock(t *testing.T) {
	top := &clickBlock{Block: linesBlock("top", 3)}
	bottom := &clickBlock{Block: linesBlock("bot", 2)}
	v := NewScrollView(top, bottom)
	v.View(20, 10)

	v.Update(leftPress(1))
	v.Update(leftPress(9))
	v.Update(leftPress(5))

	if len(top.clicks) != 1 || top.clicks[0] != 1 {
		t.Errorf("top clicks = %v, want [1]", top.clicks)
	}
	if len(bottom.clicks) != 1 || bottom.clicks[0] != 1 {
		t.Errorf("bottom clicks = %v, want [1] (pinned at row 8)", bottom.clicks)
	}
}

func TestScrollViewClickAccountsForScroll(t *testing.T) {
	top := &clickBlock{Block: linesBlock("top", 12)}
	bottom := &clickBlock{Block: linesBlock("bot", 2)}
	v := NewScrollView(top, bottom)
	v.View(20, 10)
	v.ScrollTo(4)

	v.Update(leftPress(8))
	if len(bottom.clicks) != 1 || bottom.clicks[0] != 0 {
		t.Errorf("bottom clicks = %v, want [0]", bottom.clicks)
	}
	if len(top.clicks) != 0 {
		t.Errorf("top clicks = %v, want none", top.clicks)
	}
}
