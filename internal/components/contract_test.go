package components

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cosim/internal/component"
	"github.com/san-kum/cosim/internal/physics"
)

// initialOutputs documents the state every component starts in.
var initialOutputs = map[string]map[string]float64{
	"thermal": {
		"temperature":  physics.DefaultRoomTemperature,
		"heaterStatus": 0,
	},
	"circuit": {
		"capacitorVoltage": 0,
		"current":          0,
	},
	"pendulum": {
		"angle":           physics.DefaultTheta,
		"angularVelocity": 0,
		"energy":          physics.DefaultMass * physics.DefaultGravity * physics.DefaultLength * (1 - math.Cos(physics.DefaultTheta)),
	},
}

var _ = Describe("Component contract", func() {
	registry := NewRegistry(physics.Library())

	It("covers every registered component", func() {
		Expect(registry.List()).To(ConsistOf("thermal", "circuit", "pendulum"))
	})

	for _, name := range registry.List() {
		Context(name, func() {
			var c component.Component

			BeforeEach(func() {
				var err error
				c, err = registry.New(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(c.Initialize()).To(Succeed())
			})

			It("declares a valid schema consistent with its type tag", func() {
				meta := c.Metadata()
				Expect(component.ValidateMetadata(meta)).To(Succeed())
				Expect(meta.ComponentType).To(Equal(c.ComponentType()))
			})

			It("starts in its documented initial state", func() {
				outputs := c.GetAllOutputs()
				Expect(outputs).To(HaveLen(len(initialOutputs[name])))
				for key, want := range initialOutputs[name] {
					Expect(outputs).To(HaveKeyWithValue(key, BeNumerically("~", want, 1e-9)))
				}
			})

			It("reads every declared output after Initialize", func() {
				for _, spec := range c.Metadata().Outputs {
					_, err := c.GetOutput(spec.Name)
					Expect(err).NotTo(HaveOccurred(), spec.Name)
				}
			})

			It("rejects unknown names without changing outputs", func() {
				before := c.GetAllOutputs()

				err := c.SetInput("nonexistent", 1.0)
				Expect(err).To(MatchError(component.ErrUnknownVariable))
				Expect(c.SetBoolInput("nonexistent", true)).To(MatchError(component.ErrUnknownVariable))
				_, err = c.GetOutput("nonexistent")
				Expect(err).To(MatchError(component.ErrUnknownVariable))

				Expect(c.GetAllOutputs()).To(Equal(before))
			})

			It("rejects boolean writes to Real outputs", func() {
				for _, spec := range c.Metadata().Outputs {
					Expect(c.SetBoolInput(spec.Name, true)).To(MatchError(component.ErrTypeMismatch), spec.Name)
				}
			})

			It("rejects accessor families that do not match declared inputs", func() {
				for _, spec := range c.Metadata().Inputs {
					switch spec.Type {
					case component.Boolean:
						Expect(c.SetInput(spec.Name, 1)).To(MatchError(component.ErrTypeMismatch), spec.Name)
					case component.Real:
						Expect(c.SetBoolInput(spec.Name, true)).To(MatchError(component.ErrTypeMismatch), spec.Name)
					}
				}
			})

			It("is idempotent under repeated Reset", func() {
				driveAllInputs(c)
				Expect(c.Step(10)).To(Succeed())

				Expect(c.Reset()).To(Succeed())
				first := c.GetAllOutputs()
				Expect(c.Reset()).To(Succeed())
				Expect(c.GetAllOutputs()).To(Equal(first))
				Expect(first).To(Equal(outputsAfterInitialize(name)))
			})

			It("fails invalid steps as runtime failures", func() {
				Expect(c.Step(-1)).To(MatchError(component.ErrRuntimeFailure))
				Expect(c.Step(math.NaN())).To(MatchError(component.ErrRuntimeFailure))
				Expect(c.Step(0)).To(Succeed())
			})

			It("never reports undeclared outputs", func() {
				driveAllInputs(c)
				Expect(c.Step(1)).To(Succeed())
				declared := c.Metadata().OutputNames()
				for key := range c.GetAllOutputs() {
					Expect(declared).To(ContainElement(key))
				}
			})

			It("is deterministic in its self-description", func() {
				Expect(c.ComponentType()).To(Equal(c.ComponentType()))
				Expect(c.Metadata()).To(Equal(c.Metadata()))
			})

			It("does not let callers mutate its schema", func() {
				meta := c.Metadata()
				meta.Outputs[0].Name = "tampered"
				Expect(c.Metadata().Outputs[0].Name).NotTo(Equal("tampered"))
			})
		})
	}

	It("requires Initialize before the first Step", func() {
		c, err := registry.New("thermal")
		Expect(err).NotTo(HaveOccurred())
		err = c.Step(1)
		Expect(err).To(MatchError(component.ErrRuntimeFailure))
		Expect(err).To(MatchError(component.ErrNotInitialized))
	})
})

// driveAllInputs moves every declared input away from its start value.
func driveAllInputs(c component.Component) {
	GinkgoHelper()
	for _, spec := range c.Metadata().Inputs {
		switch spec.Type {
		case component.Boolean:
			Expect(c.SetBoolInput(spec.Name, true)).To(Succeed())
		case component.Real:
			Expect(c.SetInput(spec.Name, 2.5)).To(Succeed())
		}
	}
}

func outputsAfterInitialize(name string) map[string]float64 {
	GinkgoHelper()
	c, err := NewRegistry(physics.Library()).New(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(c.Initialize()).To(Succeed())
	return c.GetAllOutputs()
}
