package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/signalworks/crosslight/crossing"
	"github.com/signalworks/crosslight/sim"
)

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *sim.CycleEngine
		x      *crossing.Crossing
	)

	BeforeEach(func() {
		m = NewMonitor()
		engine = sim.NewCycleEngine()
		x = crossing.MakeBuilder().
			WithEngine(engine).
			Build("Crossing")

		m.RegisterEngine(engine)
		m.RegisterComponent(x.TickGen)
		m.RegisterComponent(x.Controller)
		m.RegisterCrossing(x)
	})

	It("should report the current cycle", func() {
		engine.Step(false)
		engine.Step(false)

		w := httptest.NewRecorder()
		m.now(w, nil)

		Expect(w.Body.String()).To(Equal("{\"now\":2}"))
	})

	It("should list registered components", func() {
		w := httptest.NewRecorder()
		m.listComponents(w, nil)

		Expect(w.Body.String()).To(Equal(
			"[\"Crossing.TickGen\",\"Crossing.Controller\"]"))
	})

	It("should serve the light state", func() {
		for i := 0; i < 2; i++ {
			engine.Step(false)
		}

		w := httptest.NewRecorder()
		m.listLights(w, nil)

		var states []lightStateRsp
		err := json.Unmarshal(w.Body.Bytes(), &states)
		Expect(err).ToNot(HaveOccurred())

		Expect(states).To(HaveLen(1))
		Expect(states[0].Crossing).To(Equal("Crossing"))
		Expect(states[0].Phase).To(Equal("WestGo"))
		Expect(states[0].South).To(Equal("Red"))
		Expect(states[0].West).To(Equal("Green"))
	})

	It("should assert and release the reset line", func() {
		w := httptest.NewRecorder()
		m.assertReset(w, nil)

		engine.Step(false)
		Expect(x.Controller.Elapsed()).To(Equal(uint32(0)))

		w = httptest.NewRecorder()
		m.releaseReset(w, nil)

		engine.Step(false)
		Expect(x.Controller.Elapsed()).To(Equal(uint32(1)))
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("cycles", 100)
		bar.IncrementFinished(40)

		w := httptest.NewRecorder()
		m.listProgressBars(w, nil)

		var bars []map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &bars)
		Expect(err).ToNot(HaveOccurred())

		Expect(bars).To(HaveLen(1))
		Expect(bars[0]["name"]).To(Equal("cycles"))
		Expect(bars[0]["finished"]).To(BeNumerically("==", 40))

		m.CompleteProgressBar(bar)

		w = httptest.NewRecorder()
		m.listProgressBars(w, nil)
		Expect(w.Body.String()).To(Equal("[]"))
	})
})
