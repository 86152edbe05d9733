package phasectl

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Phase", func() {
	It("should cycle through all six phases in order", func() {
		want := []Phase{
			WestStop, WestGo, WestWait,
			SouthStop, SouthGo, SouthWait,
		}

		p := WestStop
		for i := 0; i < NumPhases; i++ {
			Expect(p).To(Equal(want[i]))
			p = p.Next()
		}

		Expect(p).To(Equal(WestStop))
	})

	It("should treat values outside the range as invalid", func() {
		Expect(WestStop.Valid()).To(BeTrue())
		Expect(SouthWait.Valid()).To(BeTrue())
		Expect(Phase(-1).Valid()).To(BeFalse())
		Expect(Phase(NumPhases).Valid()).To(BeFalse())
	})

	It("should send invalid phases back to the initial phase", func() {
		Expect(Phase(42).Next()).To(Equal(WestStop))
	})

	It("should name phases", func() {
		Expect(WestWait.String()).To(Equal("WestWait"))
		Expect(SouthGo.String()).To(Equal("SouthGo"))
		Expect(Phase(42).String()).To(Equal("Phase(42)"))
	})

	It("should look up per-phase durations", func() {
		d := DefaultDurations

		Expect(d.For(WestStop)).To(Equal(uint32(2)))
		Expect(d.For(SouthStop)).To(Equal(uint32(2)))
		Expect(d.For(WestGo)).To(Equal(uint32(4)))
		Expect(d.For(SouthGo)).To(Equal(uint32(4)))
		Expect(d.For(WestWait)).To(Equal(uint32(1)))
		Expect(d.For(SouthWait)).To(Equal(uint32(1)))
	})
})
