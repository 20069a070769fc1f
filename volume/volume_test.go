package volume

import (
	"testing"

	"github.com/duskray/raycore/config"
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

type stubVolumetricLight struct{}

func (stubVolumetricLight) LVector(p, n math.Vec3) (math.Vec3, float32) {
	return math.Vec3{Y: 1}, 10
}
func (stubVolumetricLight) Color(p, n, dir math.Vec3, dist float32) math.Vec3 {
	return math.Vec3{X: 1, Y: 1, Z: 1}
}
func (stubVolumetricLight) Shadowing(p math.Vec3) float32  { return 1 }
func (stubVolumetricLight) Type() lighting.TypeTag         { return lighting.TypeVolume }
func (stubVolumetricLight) Near() float32                  { return 0 }
func (stubVolumetricLight) Far() float32                  { return 100 }
func (stubVolumetricLight) ConeAngle() float32            { return 0 }
func (stubVolumetricLight) IlluminateAtmosphere() bool    { return true }

func straightRay() ray.Ray {
	return ray.New(math.Vec3{}, math.Vec3{Z: 1}, 0, ray.Camera, 0, 1e6)
}

// TestMarchMonotoneInDensity checks that increasing density cannot
// increase transmittance (1 - alpha).
func TestMarchMonotoneInDensity(t *testing.T) {
	bounds := []Bound{{Light: stubVolumetricLight{}, Enter: 0, Exit: 10}}
	tun := config.Default()

	var prevTransmittance float32 = 1
	for _, dens := range []float32{0.01, 0.1, 0.5, 1, 2} {
		opts := Options{Density: DensityParams{AtmosphericDensity: dens}, BaseStep: 0.5}
		res, err := March(straightRay(), bounds, opts, tun, nil)
		if err != nil {
			t.Fatal(err)
		}
		transmittance := 1 - res.Alpha
		if transmittance > prevTransmittance+1e-5 {
			t.Fatalf("density %v: transmittance %v > previous %v", dens, transmittance, prevTransmittance)
		}
		prevTransmittance = transmittance
	}
}

func TestMarchRecordsDeepSamplesWhenRequested(t *testing.T) {
	bounds := []Bound{{Light: stubVolumetricLight{}, Enter: 0, Exit: 4}}
	tun := config.Default()
	opts := Options{Density: DensityParams{AtmosphericDensity: 0.2}, BaseStep: 0.5, RecordDeep: true}

	res, err := March(straightRay(), bounds, opts, tun, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Deep) == 0 {
		t.Fatal("expected deep samples to be recorded")
	}
	for _, d := range res.Deep {
		if d.Back < d.Front {
			t.Errorf("deep sample has Back < Front: %+v", d)
		}
	}
}

func TestMarchDiagnosticReportsRange(t *testing.T) {
	bounds := []Bound{{Light: stubVolumetricLight{}, Enter: 2, Exit: 9}}
	tun := config.Default()
	opts := Options{Diagnostic: true}

	res, err := March(straightRay(), bounds, opts, tun, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Color.X != 2 || res.Color.Y != 9 || res.Color.Z != 7 {
		t.Errorf("diagnostic result = %v, want (tmin=2, tmax=9, range=7)", res.Color)
	}
}

func TestMarchEmptyBoundsReturnsZeroResult(t *testing.T) {
	tun := config.Default()
	res, err := March(straightRay(), nil, Options{}, tun, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Alpha != 0 {
		t.Errorf("expected a zero result with no bounds, got %+v", res)
	}
}

type abortingCanceler struct{ calls int }

func (c *abortingCanceler) Aborted() bool {
	c.calls++
	return c.calls > 1
}

func TestMarchHonorsCancellation(t *testing.T) {
	bounds := []Bound{{Light: stubVolumetricLight{}, Enter: 0, Exit: 1000}}
	tun := config.Default()
	tun.CancelPollInterval = 1
	opts := Options{Density: DensityParams{AtmosphericDensity: 0.01}, BaseStep: 1}

	_, err := March(straightRay(), bounds, opts, tun, &abortingCanceler{})
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}
