//go:build !sheetdebug

package twosection

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestUnknownItemIsLogged(t *testing.T) {
	var buf bytes.Buffer
	l := NewLayout(&heights{top: 1, bottom: 1})
	l.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	l.Prepare(Rect{W: 10, H: 10})

	for _, idx := range []int{2, -1} {
		if _, ok := l.AttributesForItem(idx); ok {
			t.Errorf("AttributesForItem(%d) reported attributes", idx)
		}
	}
	if got := strings.Count(buf.String(), "unknown item"); got != 2 {
		t.Errorf("logged %d errors, want 2: %s", got, buf.String())
	}

	attrs := Attributes{Item: Item(5), Frame: Rect{H: 3}}
	if got := l.PreferredAttributes(attrs); got != attrs {
		t.Errorf("unknown item attributes changed: %+v", got)
	}
}
