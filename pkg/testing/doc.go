// Package testing provides fakes and recorders for testing owo components
// without a host.
//
// # Quick Start
//
// Lay out a tree, draw it into a recording canvas and assert on the ops:
//
//	func TestPanel(t *testing.T) {
//	    root := containers.VerticalFlow(layout.Fill(1), layout.Fill(1))
//	    root.AddChild(components.NewLabel("hi"))
//	    root.Measure(layout.Tight(graphics.Size{Width: 100, Height: 50}))
//	    root.Arrange(graphics.Rect{Width: 100, Height: 50})
//
//	    canvas := owotest.NewRecordingCanvas()
//	    root.Draw(canvas.Context(), 0, 0, 0, 0)
//	    if len(canvas.OpsNamed("drawText")) != 1 {
//	        t.Error("expected one text op")
//	    }
//	}
//
// # Driving a Tree
//
// UITester mounts a component behind a real adapter and sends input through
// it. Finders locate components to act on:
//
//	tester := owotest.NewUITesterWithT(t)
//	tester.Mount(form)
//	tester.Click(owotest.ByID("name"))
//	tester.Type("owo")
//	if !tester.Find(owotest.ByText("owo")).Exists() {
//	    t.Error("text not entered")
//	}
//
// # Host Fakes
//
// FakeScreen, FakeWidget and FakeWrapper stand in for host screens when
// testing layers. FakeEntity, FakeEntityType, FakeRenderer and
// FakeSkinProvider stand in for the host's entity pipeline.
//
// # Snapshot Testing
//
// Capture and compare a laid-out tree:
//
//	snapshot := owotest.CaptureSnapshot(root)
//	snapshot.MatchesFile(t, "testdata/panel.snapshot.json")
//
// Update snapshots with:
//
//	OWO_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import owotest "github.com/go-owo/owo/pkg/testing"
package testing
