package components

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/engine"
	"github.com/san-kum/cosim/internal/physics"
)

var _ = Describe("Thermal", func() {
	var c *Thermal

	BeforeEach(func() {
		var err error
		c, err = NewThermal(physics.Library())
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Initialize()).To(Succeed())
	})

	It("describes the SimpleThermalMVP schema", func() {
		meta := c.Metadata()
		Expect(meta.Name).To(Equal("SimpleThermalMVP"))
		Expect(meta.ComponentType).To(Equal("Thermal"))
		Expect(meta.Inputs).To(Equal([]component.IOSpec{
			{Name: "heaterOn", Type: component.Boolean, Description: "Heater control signal"},
		}))
		Expect(meta.OutputNames()).To(Equal([]string{"temperature", "heaterStatus"}))

		temp, ok := meta.Output("temperature")
		Expect(ok).To(BeTrue())
		Expect(temp.Unit).To(Equal("K"))
	})

	It("heats the room once the heater is switched on", func() {
		Expect(c.SetInput("heaterOn", 1)).To(MatchError(component.ErrTypeMismatch))
		Expect(c.SetBoolInput("heaterOn", true)).To(Succeed())

		before, err := c.GetOutput("temperature")
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Step(60.0)).To(Succeed())

		after, err := c.GetOutput("temperature")
		Expect(err).NotTo(HaveOccurred())
		Expect(after).To(BeNumerically(">=", before))
		Expect(c.GetOutput("heaterStatus")).To(Equal(1.0))
	})

	It("applies inputs instantaneously on a zero-length step", func() {
		Expect(c.SetBoolInput("heaterOn", true)).To(Succeed())
		Expect(c.GetOutput("heaterStatus")).To(Equal(0.0))

		before, _ := c.GetOutput("temperature")
		Expect(c.Step(0)).To(Succeed())

		Expect(c.GetOutput("heaterStatus")).To(Equal(1.0))
		Expect(c.GetOutput("temperature")).To(Equal(before))
	})

	It("cools towards ambient with the heater off", func() {
		before, _ := c.GetOutput("temperature")
		Expect(c.Step(600)).To(Succeed())
		after, _ := c.GetOutput("temperature")
		Expect(after).To(BeNumerically("<", before))
		Expect(after).To(BeNumerically(">", physics.DefaultAmbientTemperature))
	})

	It("rejects reading the boolean input as a Real output", func() {
		_, err := c.GetOutput("heaterOn")
		Expect(err).To(MatchError(component.ErrTypeMismatch))
	})

	It("reports engine construction failures as runtime failures", func() {
		_, err := NewThermal(engine.NewLibrary())
		Expect(err).To(MatchError(component.ErrRuntimeFailure))
		Expect(err).To(MatchError(engine.ErrUnknownModel))
	})

	It("surfaces solver divergence and stays usable after Reset", func() {
		Expect(c.SetInput("temperature", 1e308)).To(Succeed())
		Expect(c.SetBoolInput("heaterOn", true)).To(Succeed())

		err := c.Step(100)
		Expect(err).To(MatchError(component.ErrRuntimeFailure))

		Expect(c.Reset()).To(Succeed())
		Expect(c.GetOutput("temperature")).To(Equal(physics.DefaultRoomTemperature))
		Expect(c.Step(1)).To(Succeed())
	})
})

var _ = Describe("Circuit", func() {
	It("charges the capacitor only while the switch is closed", func() {
		c, err := NewCircuit(physics.Library())
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Initialize()).To(Succeed())

		Expect(c.Step(1)).To(Succeed())
		Expect(c.GetOutput("capacitorVoltage")).To(Equal(0.0))

		Expect(c.SetInput("sourceVoltage", 12)).To(Succeed())
		Expect(c.SetBoolInput("switchClosed", true)).To(Succeed())
		Expect(c.Step(5)).To(Succeed())

		Expect(c.GetOutput("capacitorVoltage")).To(BeNumerically("~", 12, 0.1))
		Expect(c.GetOutput("current")).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Pendulum", func() {
	It("comes to rest faster with the brake engaged", func() {
		free, err := NewPendulum(physics.Library())
		Expect(err).NotTo(HaveOccurred())
		braked, err := NewPendulum(physics.Library())
		Expect(err).NotTo(HaveOccurred())

		for _, p := range []*Pendulum{free, braked} {
			Expect(p.Initialize()).To(Succeed())
		}
		Expect(braked.SetBoolInput("brakeEngaged", true)).To(Succeed())

		Expect(free.Step(5)).To(Succeed())
		Expect(braked.Step(5)).To(Succeed())

		Expect(braked.GetOutput("energy")).To(BeNumerically("<", free.GetAllOutputs()["energy"]))
	})

	It("holds a constant torque at a deflected equilibrium", func() {
		p, err := NewPendulum(physics.Library())
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Initialize()).To(Succeed())

		Expect(p.SetInput("torque", 0.5*physics.DefaultMass*physics.DefaultGravity*physics.DefaultLength)).To(Succeed())
		Expect(p.SetBoolInput("brakeEngaged", true)).To(Succeed())
		Expect(p.Step(60)).To(Succeed())

		// sin(angle) = 0.5
		Expect(p.GetOutput("angle")).To(BeNumerically("~", 0.5235987755982988, 1e-6))
	})
})
