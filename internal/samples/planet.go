package samples

import (
	"fmt"
	"math"

	"enumcore/pkg/enum"
)

// G is the universal gravitational constant (m3 kg-1 s-2).
const G = 6.67300e-11

// Planet carries mass (kg) and radius (m) derived from its [mass, radius] value.
type Planet struct {
	enum.Base
	mass   float64
	radius float64
}

// Planets is the Planet registry.
var Planets = enum.New[Planet](enum.Declare("Planet",
	enum.PrivateConst("MERCURY", enum.List{3.303e+23, 2.4397e6}),
	enum.PrivateConst("VENUS", enum.List{4.869e+24, 6.0518e6}),
	enum.PrivateConst("EARTH", enum.List{5.976e+24, 6.37814e6}),
	enum.PrivateConst("MARS", enum.List{6.421e+23, 3.3972e6}),
	enum.PrivateConst("JUPITER", enum.List{1.9e+27, 7.1492e7}),
	enum.PrivateConst("SATURN", enum.List{5.688e+26, 6.0268e7}),
	enum.PrivateConst("URANUS", enum.List{8.686e+25, 2.5559e7}),
	enum.PrivateConst("NEPTUNE", enum.List{1.024e+26, 2.4746e7}),
	enum.PrivateConst("PLUTO", enum.List{1.27e+22, 1.137e6}),
))

func PlanetMercury() *Planet { return Planets.MustValueOf("MERCURY") }
func PlanetVenus() *Planet   { return Planets.MustValueOf("VENUS") }
func PlanetEarth() *Planet   { return Planets.MustValueOf("EARTH") }
func PlanetMars() *Planet    { return Planets.MustValueOf("MARS") }
func PlanetJupiter() *Planet { return Planets.MustValueOf("JUPITER") }
func PlanetSaturn() *Planet  { return Planets.MustValueOf("SATURN") }
func PlanetUranus() *Planet  { return Planets.MustValueOf("URANUS") }
func PlanetNeptune() *Planet { return Planets.MustValueOf("NEPTUNE") }
func PlanetPluto() *Planet   { return Planets.MustValueOf("PLUTO") }

// InitValue splits the [mass, radius] value.
func (p *Planet) InitValue(value any) error {
	list, ok := value.(enum.List)
	if !ok || len(list) != 2 {
		return fmt.Errorf("planet value must be [mass, radius], got %v", value)
	}
	mass, ok := list[0].(float64)
	if !ok {
		return fmt.Errorf("planet mass must be a float, got %T", list[0])
	}
	radius, ok := list[1].(float64)
	if !ok {
		return fmt.Errorf("planet radius must be a float, got %T", list[1])
	}
	p.mass, p.radius = mass, radius
	return nil
}

func (p *Planet) Mass() float64   { return p.mass }
func (p *Planet) Radius() float64 { return p.radius }

func (p *Planet) SurfaceGravity() float64 {
	return G * p.mass / (p.radius * p.radius)
}

// SurfaceWeight returns the weight of otherMass on p, rounded to 6 decimals.
func (p *Planet) SurfaceWeight(otherMass float64) float64 {
	return math.Round(otherMass*p.SurfaceGravity()*1e6) / 1e6
}
