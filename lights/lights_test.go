package lights_test

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/signalworks/crosslight/lights"
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/sim"
)

var _ = Describe("Lights", func() {
	It("should decode every phase per the fixed mapping", func() {
		cases := []struct {
			phase       phasectl.Phase
			south, west lights.Color
		}{
			{phasectl.WestStop, lights.Red, lights.Red},
			{phasectl.WestGo, lights.Red, lights.Green},
			{phasectl.WestWait, lights.Red, lights.Yellow},
			{phasectl.SouthStop, lights.Red, lights.Red},
			{phasectl.SouthGo, lights.Green, lights.Red},
			{phasectl.SouthWait, lights.Yellow, lights.Red},
		}

		for _, c := range cases {
			south, west := lights.ForPhase(c.phase)
			Expect(south).To(Equal(c.south), "south of %s", c.phase)
			Expect(west).To(Equal(c.west), "west of %s", c.phase)
		}
	})

	It("should never show green to both directions", func() {
		for p := phasectl.Phase(0); p < phasectl.NumPhases; p++ {
			south, west := lights.ForPhase(p)

			if south == lights.Green {
				Expect(west).ToNot(Equal(lights.Green), "phase %s", p)
			}
			if west == lights.Green {
				Expect(south).ToNot(Equal(lights.Green), "phase %s", p)
			}
		}
	})

	It("should show yellow only while the other direction is red", func() {
		for p := phasectl.Phase(0); p < phasectl.NumPhases; p++ {
			south, west := lights.ForPhase(p)

			if south == lights.Yellow {
				Expect(west).To(Equal(lights.Red), "phase %s", p)
			}
			if west == lights.Yellow {
				Expect(south).To(Equal(lights.Red), "phase %s", p)
			}
		}
	})

	It("should keep the other direction red across a yellow-to-red change",
		func() {
			for p := phasectl.Phase(0); p < phasectl.NumPhases; p++ {
				south, west := lights.ForPhase(p)
				nextSouth, nextWest := lights.ForPhase(p.Next())

				if west == lights.Yellow && nextWest == lights.Red {
					Expect(south).To(Equal(lights.Red))
					Expect(nextSouth).To(Equal(lights.Red))
				}
				if south == lights.Yellow && nextSouth == lights.Red {
					Expect(west).To(Equal(lights.Red))
					Expect(nextWest).To(Equal(lights.Red))
				}
			}
		})

	It("should decode unknown phases to all-red", func() {
		south, west := lights.ForPhase(phasectl.Phase(42))

		Expect(south).To(Equal(lights.Red))
		Expect(west).To(Equal(lights.Red))
	})

	It("should name colors", func() {
		Expect(lights.Red.String()).To(Equal("Red"))
		Expect(lights.Yellow.String()).To(Equal("Yellow"))
		Expect(lights.Green.String()).To(Equal("Green"))
	})

	Describe("ChangeLogger", func() {
		It("should print phase transitions with their colors", func() {
			buf := &bytes.Buffer{}
			logger := lights.NewChangeLogger(log.New(buf, "", 0))

			logger.Func(sim.HookCtx{
				Pos: phasectl.HookPosPhaseChange,
				Item: phasectl.PhaseTransition{
					From: phasectl.WestStop,
					To:   phasectl.WestGo,
					Tick: 2,
				},
			})

			Expect(buf.String()).To(Equal(
				"tick 2, WestStop -> WestGo, south Red, west Green\n"))
		})

		It("should ignore other hook positions", func() {
			buf := &bytes.Buffer{}
			logger := lights.NewChangeLogger(log.New(buf, "", 0))

			logger.Func(sim.HookCtx{Pos: sim.HookPosAfterCycle})

			Expect(buf.String()).To(BeEmpty())
		})
	})
})
