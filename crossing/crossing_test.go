package crossing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/signalworks/crosslight/crossing"
	"github.com/signalworks/crosslight/lights"
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/sim"
)

var _ = Describe("Crossing", func() {
	var (
		engine *sim.CycleEngine
		x      *crossing.Crossing
	)

	BeforeEach(func() {
		engine = sim.NewCycleEngine()
		x = crossing.MakeBuilder().
			WithEngine(engine).
			Build("Crossing")
	})

	It("should start all-red in the west stop phase", func() {
		south, west := x.Lights()

		Expect(x.Phase()).To(Equal(phasectl.WestStop))
		Expect(south).To(Equal(lights.Red))
		Expect(west).To(Equal(lights.Red))
	})

	It("should complete a full rotation in 14 ticks", func() {
		err := engine.Run(14)

		Expect(err).ToNot(HaveOccurred())
		Expect(x.Phase()).To(Equal(phasectl.WestStop))
		Expect(x.Controller.Elapsed()).To(Equal(uint32(0)))
	})

	It("should never show green to both directions over a long run", func() {
		for i := 0; i < 1000; i++ {
			engine.Step(false)

			south, west := x.Lights()
			greens := 0
			if south == lights.Green {
				greens++
			}
			if west == lights.Green {
				greens++
			}

			Expect(greens).To(BeNumerically("<=", 1), "cycle %d", i)
		}
	})

	It("should visit phases as a strict rotation over a long run", func() {
		prev := x.Phase()

		for i := 0; i < 1000; i++ {
			engine.Step(false)

			if x.Phase() != prev {
				Expect(x.Phase()).To(Equal(prev.Next()), "cycle %d", i)
				prev = x.Phase()
			}
		}
	})

	It("should insert an all-red tick before a yellow turns red", func() {
		prevSouth, prevWest := x.Lights()

		for i := 0; i < 200; i++ {
			engine.Step(false)
			south, west := x.Lights()

			if prevWest == lights.Yellow && west == lights.Red {
				Expect(prevSouth).To(Equal(lights.Red))
				Expect(south).To(Equal(lights.Red))
			}
			if prevSouth == lights.Yellow && south == lights.Red {
				Expect(prevWest).To(Equal(lights.Red))
				Expect(west).To(Equal(lights.Red))
			}

			prevSouth, prevWest = south, west
		}
	})

	It("should return to all-red on reset at any point", func() {
		for i := 0; i < 7; i++ {
			engine.Step(false)
		}
		Expect(x.Phase()).ToNot(Equal(phasectl.WestStop))

		engine.Step(true)

		south, west := x.Lights()
		Expect(x.Phase()).To(Equal(phasectl.WestStop))
		Expect(x.Controller.Elapsed()).To(Equal(uint32(0)))
		Expect(south).To(Equal(lights.Red))
		Expect(west).To(Equal(lights.Red))
	})

	It("should stretch phase timing by the tick divisor", func() {
		engine2 := sim.NewCycleEngine()
		slow := crossing.MakeBuilder().
			WithEngine(engine2).
			WithTickDivisor(3).
			Build("SlowCrossing")

		// 2 stop ticks at divisor 3 = 6 driving-clock cycles.
		err := engine2.Run(5)
		Expect(err).ToNot(HaveOccurred())
		Expect(slow.Phase()).To(Equal(phasectl.WestStop))

		err = engine2.Run(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(slow.Phase()).To(Equal(phasectl.WestGo))
	})

	It("should hold the initial state while the reset line is asserted",
		func() {
			engine.AssertResetLine()
			err := engine.Run(20)

			Expect(err).ToNot(HaveOccurred())
			Expect(x.Phase()).To(Equal(phasectl.WestStop))

			engine.ReleaseResetLine()
			err = engine.Run(2)

			Expect(err).ToNot(HaveOccurred())
			Expect(x.Phase()).To(Equal(phasectl.WestGo))
		})
})
