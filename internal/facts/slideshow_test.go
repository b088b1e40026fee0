package facts

import "testing"

func TestCatalog(t *testing.T) {
	cars := Cars()
	if len(cars) != 14 {
		t.Fatalf("Expected 14 cars, got %d", len(cars))
	}
	if cars[0].Key != "ast" || cars[13].Key != "MC" {
		t.Errorf("Unexpected order: first %q, last %q", cars[0].Key, cars[13].Key)
	}

	seen := make(map[string]bool)
	for _, c := range cars {
		if seen[c.Key] {
			t.Errorf("Duplicate key %q", c.Key)
		}
		seen[c.Key] = true
		if c.Name == "" || c.Fact == "" {
			t.Errorf("Car %q missing name or fact", c.Key)
		}
	}
}

func TestFactFor(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"mk4", "The Toyota Supra MK4 gained fame from the Fast & Furious franchise."},
		{"mustang", "The Ford Mustang is an iconic American muscle car, launched in 1964."},
		{"Mk4", DefaultFact},
		{"delorean", DefaultFact},
		{"", DefaultFact},
	}

	for _, tc := range tests {
		if got := FactFor(tc.key); got != tc.expected {
			t.Errorf("FactFor(%q) = %q, expected %q", tc.key, got, tc.expected)
		}
	}
}

func TestCarsReturnsCopy(t *testing.T) {
	cars := Cars()
	cars[0].Name = "changed"
	if Cars()[0].Name == "changed" {
		t.Error("Cars() must not expose the catalog")
	}
}

func TestSlideshowCycles(t *testing.T) {
	s := NewSlideshow()
	n := s.Len()

	for i := 0; i < n; i++ {
		s.Next()
	}
	if s.Index() != 0 {
		t.Errorf("Expected wrap to 0 after %d steps, got %d", n, s.Index())
	}

	if c := s.Prev(); c.Key != "MC" || s.Index() != n-1 {
		t.Errorf("Prev from 0 should land on MC, got %q at %d", c.Key, s.Index())
	}

	if c := s.Next(); c.Key != "ast" {
		t.Errorf("Next from last should land on ast, got %q", c.Key)
	}
}

func TestSlideshowSeek(t *testing.T) {
	s := NewSlideshow()
	tests := []struct {
		in, expected int
	}{
		{3, 3},
		{14, 0},
		{-1, 13},
		{29, 1},
	}
	for _, tc := range tests {
		s.Seek(tc.in)
		if s.Index() != tc.expected {
			t.Errorf("Seek(%d) index = %d, expected %d", tc.in, s.Index(), tc.expected)
		}
	}
}

func TestSlideshowFallbacks(t *testing.T) {
	empty := NewSlideshowOf(nil)
	if empty.Next().Fact != DefaultFact || empty.Prev().Fact != DefaultFact {
		t.Error("Empty slideshow should show the default fact")
	}

	s := NewSlideshowOf([]Car{{Key: "unknown", Name: "Mystery"}})
	if s.Current().Fact != DefaultFact {
		t.Errorf("Unknown car should fall back, got %q", s.Current().Fact)
	}
}
