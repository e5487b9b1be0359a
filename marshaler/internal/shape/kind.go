package shape

type Shape uint8

const (
	ShapeUnsupported Shape = iota
	ShapeNumberSet
	ShapeStringSet
	ShapeList
	ShapeMap
	ShapeObject
	ShapeScalar
)

var shapeNames = [...]string{
	ShapeUnsupported: "unsupported",
	ShapeNumberSet:   "number-set",
	ShapeStringSet:   "string-set",
	ShapeList:        "list",
	ShapeMap:         "map",
	ShapeObject:      "object",
	ShapeScalar:      "scalar",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// IsCollection reports whether the shape holds nested attribute values.
func (s Shape) IsCollection() bool {
	switch s {
	case ShapeList, ShapeMap, ShapeObject:
		return true
	default:
		return false
	}
}
