package grammar

//go:generate go tool stringer -type=KindEnum -trimprefix=Kind -output=kind_string.go

// KindEnum is the coarse category of a construct node.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindStruct
	KindArray
	KindGreedyRange
	KindIfThenElse
	KindSwitch
	KindFormatField
	KindBytesInteger
	KindBitsInteger
	KindBytes
	KindEnumerated
	KindFlagsEnum
	KindRenamed
	KindConst
	KindDefault
	KindComputed
	KindTimestamp
	KindTell
	KindSeek
	KindPass
	KindPointer
	KindPeek
	KindRawCopy
	KindTransformed
	KindRestreamed

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
