package symbol

// ConstKind tags the disjoint union of literal constant types a method or
// field can carry. Stored in tagged form rather than a generic box so
// downstream uniqueness/weighting passes can distinguish them without type
// assertions (spec §9, "constants as heterogeneous values").
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstLong
	ConstFloat
	ConstDouble
	ConstString
	ConstType
)

// Const is one literal value pulled from a load-constant opcode (or a
// field's ConstantValue attribute).
type Const struct {
	Kind ConstKind
	Num  float64 // Int, Long, Float, Double
	Str  string  // String, Type (binary name)
}

func Int(v int64) Const      { return Const{Kind: ConstInt, Num: float64(v)} }
func Long(v int64) Const     { return Const{Kind: ConstLong, Num: float64(v)} }
func Float(v float32) Const  { return Const{Kind: ConstFloat, Num: float64(v)} }
func Double(v float64) Const { return Const{Kind: ConstDouble, Num: v} }
func String(v string) Const  { return Const{Kind: ConstString, Str: v} }
func Type(v string) Const    { return Const{Kind: ConstType, Str: v} }

// IsNumeric reports whether the constant is one of the four numeric kinds.
func (c Const) IsNumeric() bool {
	switch c.Kind {
	case ConstInt, ConstLong, ConstFloat, ConstDouble:
		return true
	default:
		return false
	}
}

// Key returns a value suitable for use as a map key that distinguishes
// constants by kind as well as value (so an int 5 and a string "5" never
// collide).
func (c Const) Key() any {
	switch c.Kind {
	case ConstString, ConstType:
		return [2]any{c.Kind, c.Str}
	default:
		return [2]any{c.Kind, c.Num}
	}
}
