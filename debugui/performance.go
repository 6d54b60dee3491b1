package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/blockfall/loop"
)

// PerformancePanel plots frame times and lists the scheduler's per-system
// timings and the World's resources.
type PerformancePanel struct {
	scheduler *loop.Scheduler
	frames    *History
	systems   map[string]*History
}

// NewPerformancePanel keeps historyFrames samples per series.
func NewPerformancePanel(s *loop.Scheduler, historyFrames int) *PerformancePanel {
	return &PerformancePanel{
		scheduler: s,
		frames:    NewHistory(historyFrames),
		systems:   make(map[string]*History),
	}
}

func ms(d time.Duration) float32 {
	return float32(d.Seconds() * 1000)
}

// Sample records the frame's delta and each system's last duration.
func (p *PerformancePanel) Sample(frame *loop.Frame, stats *loop.Stats) {
	p.frames.Push(ms(frame.DeltaTime))
	for _, sys := range stats.Systems {
		h, ok := p.systems[sys.Name]
		if !ok {
			h = NewHistory(len(p.frames.samples))
			p.systems[sys.Name] = h
		}
		h.Push(ms(sys.LastDuration))
	}
}

func (p *PerformancePanel) Render(frame *loop.Frame) {
	stats := p.scheduler.Stats()
	p.Sample(frame, stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 420), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := p.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text(fmt.Sprintf("Max Frame Time: %.2f ms", p.frames.Max()))

	if samples := p.frames.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Systems") {
			p.systemTable(stats)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Latency") {
			p.latencyPlot(stats)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Resources") {
			for _, name := range p.scheduler.World().TypeNames() {
				imgui.BulletText(name)
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func (p *PerformancePanel) systemTable(stats *loop.Stats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStats", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableSetupColumn("Last")
	imgui.TableHeadersRow()

	for _, sys := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(sys.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.MaxDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.LastDuration.String())
	}
	imgui.EndTable()
}

func (p *PerformancePanel) latencyPlot(stats *loop.Stats) {
	if !implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
		return
	}
	implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
	for _, sys := range stats.Systems {
		samples := p.systems[sys.Name].Ordered()
		if len(samples) == 0 {
			continue
		}
		implot.PlotLineFloatPtrInt(sys.Name, &samples[0], int32(len(samples)))
	}
	implot.EndPlot()
}
