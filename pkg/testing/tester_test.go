package testing

import (
	"testing"

	"github.com/go-owo/owo/pkg/graphics"
)

func TestUITesterMountAndPump(t *testing.T) {
	tester := NewUITesterWithT(t)
	if err := tester.Mount(form()); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	ops := tester.Pump()
	if len(ops) == 0 {
		t.Fatal("no ops drawn")
	}
	var texts []any
	for _, op := range tester.Canvas().OpsNamed("drawText") {
		texts = append(texts, op.Params["text"])
	}
	if len(texts) < 2 || texts[0] != "Hello" {
		t.Errorf("drawn texts = %v", texts)
	}
	if tester.Canvas().Depth() != 0 {
		t.Errorf("unbalanced frame, depth %d", tester.Canvas().Depth())
	}
}

func TestUITesterResize(t *testing.T) {
	tester := NewUITesterWithT(t)
	if err := tester.Mount(form()); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	tester.SetSize(graphics.Size{Width: 64, Height: 48})

	if got, want := tester.Root().Bounds(), (graphics.Rect{Width: 64, Height: 48}); got != want {
		t.Errorf("root bounds = %+v, want %+v", got, want)
	}
}

func TestUITesterCleanupDismounts(t *testing.T) {
	tester := NewUITester()
	panel := form()
	if err := tester.Mount(panel); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	token := panel.Token()

	tester.Cleanup()

	if token.Alive() {
		t.Error("tree still mounted after Cleanup")
	}
	if tester.Root() != nil || tester.Focused() != nil {
		t.Error("tester kept state after Cleanup")
	}
	if len(tester.Pump()) != 0 {
		t.Error("Pump drew without a tree")
	}
}

func TestUITesterHoverShowsTooltip(t *testing.T) {
	tester := NewUITesterWithT(t)
	panel := form()
	Find(panel, ByID("title")).First().SetTooltipText("greeting")
	if err := tester.Mount(panel); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	tester.Hover(2, 2)
	tester.Pump()

	found := false
	for _, op := range tester.Canvas().OpsNamed("drawText") {
		if op.Params["text"] == "greeting" {
			found = true
		}
	}
	if !found {
		t.Error("tooltip not drawn")
	}
}
