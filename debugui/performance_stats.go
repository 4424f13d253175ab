package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/blockfall/engine"
)

// PerformanceStats shows frame times and per-system timings of the game
// scheduler.
type PerformanceStats struct {
	scheduler     *engine.Scheduler
	frames        *History
	systemLatency map[string]*History
	historyFrames int
}

func NewPerformanceStats(scheduler *engine.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		frames:        NewHistory(historyFrames),
		systemLatency: make(map[string]*History),
		historyFrames: historyFrames,
	}
}

// Sample records one overlay frame. It runs even while the window is hidden
// so the graphs are populated when it opens.
func (ps *PerformanceStats) Sample(deltaTime float32) {
	ps.frames.Push(deltaTime * 1000.0)
	for _, sys := range ps.scheduler.GetStats().Systems {
		h, ok := ps.systemLatency[sys.Name]
		if !ok {
			h = NewHistory(ps.historyFrames)
			ps.systemLatency[sys.Name] = h
		}
		h.Push(float32(sys.LastDuration.Microseconds()) / 1000.0)
	}
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()
	avgFrameTime := ps.frames.Average()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	frames := ps.frames.Ordered()
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
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
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Latency") {
		if implot.BeginPlotV("Latency", imgui.NewVec2(-1, 160), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, sys := range stats.Systems {
				h, ok := ps.systemLatency[sys.Name]
				if !ok {
					continue
				}
				samples := h.Ordered()
				implot.PlotLineFloatPtrInt(sys.Name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
