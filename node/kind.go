package node

import "regex-transpiler/internal/common"

// KindEnum tags output nodes that need attention after they are built.
type KindEnum int

const (
	KindNone KindEnum = iota
	// KindBackref is a numeric backreference; Reference holds the capture position.
	KindBackref
	// KindCapture is an emitted capturing group; Reference holds its position.
	KindCapture

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBackref:
		return "backref"
	case KindCapture:
		return "capture"
	default:
		return common.UnknownStr
	}
}
