package objectctx

// dice runs the host-type-specific dicing handler and returns the
// resulting surface/primitive lists, whether motion blur survived, or an
// error if the object's motion samples cannot be diced (e.g. a mesh with
// no vertices). It is called with no lock held — EnsureDiced only takes
// the mutex to publish the result.
func dice(o *Object) ([]SurfaceContext, []RenderPrimitive, bool, error) {
	switch o.HostType {
	case HostPolysoup, HostMesh:
		return diceMesh(o)
	case HostPoint, HostParticleSprite:
		return dicePoints(o)
	case HostGenericNode:
		return diceGenericNode(o)
	case HostLightVolume:
		return diceLightVolume(o)
	default:
		return diceMesh(o)
	}
}
