package tree

// Constraint tracks which axes of an element have been anchored. An element
// can be horizontally anchored before it is vertically anchored.
type Constraint struct {
	Horizontal bool `json:"horizontal,omitempty"`
	Vertical   bool `json:"vertical,omitempty"`
}

// Both reports whether both axes are constrained.
func (c Constraint) Both() bool { return c.Horizontal && c.Vertical }

// Any reports whether at least one axis is constrained.
func (c Constraint) Any() bool { return c.Horizontal || c.Vertical }

// Annotation records the resolution state of one element. Resolvers return
// annotations instead of touching [Element]; callers collect them in an
// [Annotations] arena.
type Annotation struct {
	Anchored   bool       `json:"anchored,omitempty"`
	Constraint Constraint `json:"constraint"`
	Positioned bool       `json:"positioned,omitempty"`
}

// Merge combines two annotations. Flags only ever turn on, so a later pass
// can never clear an anchor set by an earlier one.
func (a Annotation) Merge(o Annotation) Annotation {
	return Annotation{
		Anchored: a.Anchored || o.Anchored,
		Constraint: Constraint{
			Horizontal: a.Constraint.Horizontal || o.Constraint.Horizontal,
			Vertical:   a.Constraint.Vertical || o.Constraint.Vertical,
		},
		Positioned: a.Positioned || o.Positioned,
	}
}

// Annotations is a caller-owned arena of annotations keyed by element ID.
type Annotations map[string]Annotation

// Apply merges every record of b into the arena.
func (a Annotations) Apply(b map[string]Annotation) {
	for id, ann := range b {
		a[id] = a[id].Merge(ann)
	}
}

// Get returns the annotation for id, or the zero value.
func (a Annotations) Get(id string) Annotation { return a[id] }
