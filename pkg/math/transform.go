package math

// Transform is a translation/rotation/scale triple, applied scale first.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// TransformIdentity returns a transform that leaves points unchanged.
func TransformIdentity() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: Vec3{1, 1, 1}}
}

// TransformFromTranslation returns an unrotated, unscaled transform at t.
func TransformFromTranslation(t Vec3) Transform {
	tr := TransformIdentity()
	tr.Translation = t
	return tr
}

// RotateAround rotates the transform about a point, moving its translation
// along the arc and composing q onto its rotation.
func (t *Transform) RotateAround(point Vec3, q Quat) {
	t.Translation = point.Add(q.Rotate(t.Translation.Sub(point)))
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Apply maps a point from the transform's local space into its parent space.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(p.Mul(t.Scale)))
}

// Mul composes parent * child, giving the child's transform in the parent's
// parent space.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.Apply(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:       t.Scale.Mul(child.Scale),
	}
}

// Matrix returns the column-major matrix T * R * S.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Translation.X, t.Translation.Y, t.Translation.Z).
		Mul(t.Rotation.ToMat4()).
		Mul(Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}
