package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// Inspector shows the exported fields of whatever Value returns, such as
// the host's config or the latest snapshot.
type Inspector struct {
	Title string
	Value func() any
}

func (in *Inspector) Render(frame *loop.Frame) {
	if !imgui.BeginV(in.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	renderFields(Fields(in.Value()))
	imgui.End()
}

func renderFields(fields []Field) {
	for _, f := range fields {
		if f.Nested != nil {
			if imgui.TreeNodeStr(f.Name) {
				renderFields(f.Nested)
				imgui.TreePop()
			}
			continue
		}
		imgui.Text(f.Name + ": " + f.Value)
	}
}
