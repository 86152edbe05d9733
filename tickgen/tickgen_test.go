package tickgen

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tick Generator", func() {
	It("should fire on every cycle with divisor 1", func() {
		c := MakeBuilder().Build("TickGen")

		for i := 0; i < 10; i++ {
			c.Cycle(false)
			Expect(c.Fired()).To(BeTrue())
		}
	})

	It("should fire exactly once every divisor cycles", func() {
		c := MakeBuilder().WithDivisor(4).Build("TickGen")

		for call := 1; call <= 20; call++ {
			c.Cycle(false)
			Expect(c.Fired()).To(Equal(call%4 == 0),
				"call %d", call)
		}
	})

	It("should restart the count after a reset", func() {
		c := MakeBuilder().WithDivisor(5).Build("TickGen")

		c.Cycle(false)
		c.Cycle(false)
		c.Cycle(true)

		Expect(c.Fired()).To(BeFalse())

		for call := 1; call <= 5; call++ {
			c.Cycle(false)
			Expect(c.Fired()).To(Equal(call == 5), "call %d", call)
		}
	})

	It("should lower the pulse while reset is held", func() {
		c := MakeBuilder().WithDivisor(1).Build("TickGen")

		c.Cycle(false)
		Expect(c.Fired()).To(BeTrue())

		c.Cycle(true)
		Expect(c.Fired()).To(BeFalse())
	})

	It("should refuse a zero divisor", func() {
		Expect(func() {
			MakeBuilder().WithDivisor(0).Build("TickGen")
		}).To(Panic())
	})
})
