package facts

// Slideshow is a cyclic cursor over a list of cars.
type Slideshow struct {
	cars  []Car
	index int
}

// NewSlideshow creates a slideshow over the full catalog.
func NewSlideshow() *Slideshow {
	return NewSlideshowOf(Cars())
}

// NewSlideshowOf creates a slideshow over the given cars.
func NewSlideshowOf(cars []Car) *Slideshow {
	return &Slideshow{cars: cars}
}

// Len returns the number of slides.
func (s *Slideshow) Len() int {
	return len(s.cars)
}

// Index returns the current slide position.
func (s *Slideshow) Index() int {
	return s.index
}

// Current returns the car on display. An empty slideshow yields a
// placeholder carrying DefaultFact.
func (s *Slideshow) Current() Car {
	if len(s.cars) == 0 {
		return Car{Fact: DefaultFact}
	}
	c := s.cars[s.index]
	if c.Fact == "" {
		c.Fact = FactFor(c.Key)
	}
	return c
}

// Next advances one slide, wrapping to the first.
func (s *Slideshow) Next() Car {
	if len(s.cars) > 0 {
		s.index = (s.index + 1) % len(s.cars)
	}
	return s.Current()
}

// Prev steps back one slide, wrapping to the last.
func (s *Slideshow) Prev() Car {
	if len(s.cars) > 0 {
		s.index = (s.index - 1 + len(s.cars)) % len(s.cars)
	}
	return s.Current()
}

// Seek jumps to slide i, wrapped into range.
func (s *Slideshow) Seek(i int) Car {
	if n := len(s.cars); n > 0 {
		s.index = ((i % n) + n) % n
	}
	return s.Current()
}
