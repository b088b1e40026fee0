// Package facts holds the car slideshow shown on the Profile tab.
package facts

// DefaultFact is shown for a car key without trivia.
const DefaultFact = "Amazing car on display!"

// Car is one slideshow entry.
type Car struct {
	Key  string
	Name string
	Fact string
}

// catalog is the slideshow order.
var catalog = []Car{
	{"ast", "Aston Martin", "The Aston Martin is known for its luxury and association with James Bond films."},
	{"BMW", "BMW", "BMW stands for Bayerische Motoren Werke and is known for its performance and innovation."},
	{"bug", "Bugatti Veyron", "The Bugatti Veyron was once the fastest production car in the world."},
	{"c7", "Corvette C7", "The Corvette C7 was the first to feature a fully aluminum frame as standard."},
	{"Challenger", "Dodge Challenger", "The Dodge Challenger is a modern muscle car inspired by the 1970s classic."},
	{"Charger", "Dodge Charger", "The Dodge Charger offers a blend of muscle car performance with four-door practicality."},
	{"Lambo", "Lamborghini", "Lamborghinis are famous for their exotic looks and V12 engines."},
	{"mustang", "Ford Mustang", "The Ford Mustang is an iconic American muscle car, launched in 1964."},
	{"mk4", "Toyota Supra MK4", "The Toyota Supra MK4 gained fame from the Fast & Furious franchise."},
	{"por", "Porsche 911", "Porsche 911 has one of the most iconic and enduring designs in car history."},
	{"rolls", "Rolls-Royce", "Rolls-Royce cars are known for unmatched luxury and hand-crafted interiors."},
	{"Track", "Track Car", "Track-focused cars are designed for maximum performance on race circuits."},
	{"Truck", "Pickup Truck", "Pickup trucks are among the best-selling vehicles in the U.S. due to their utility."},
	{"MC", "Mercedes-AMG", "The Mercedes-AMG cars combine luxury with high-performance engineering."},
}

// Cars returns the catalog in slideshow order.
func Cars() []Car {
	out := make([]Car, len(catalog))
	copy(out, catalog)
	return out
}

// FactFor returns the trivia for a car key, or DefaultFact.
func FactFor(key string) string {
	for _, c := range catalog {
		if c.Key == key && c.Fact != "" {
			return c.Fact
		}
	}
	return DefaultFact
}
