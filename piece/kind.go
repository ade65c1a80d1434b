package piece

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven standard pieces. The zero value,
// KindNone, marks an empty field cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of playable kinds, and the size of one bag.
const KindCount = 7

// Kinds returns the seven playable kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}
