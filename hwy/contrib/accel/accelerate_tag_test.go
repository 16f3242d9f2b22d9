//go:build accelerate

package accel

import "testing"

// With the accelerate tag the package builds only where the provider is
// compiled in, so it must always be registered.
func TestAccelerateTagRegistersProvider(t *testing.T) {
	a, ok := Lookup("accelerate")
	if !ok {
		t.Fatal("accelerate tag set but provider missing")
	}
	if a.Kind() != Vendor || !a.CanGemm() || !a.CanGemv() {
		t.Errorf("accelerate: kind=%v gemm=%v gemv=%v", a.Kind(), a.CanGemm(), a.CanGemv())
	}
}
