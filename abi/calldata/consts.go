package calldata

// Wire layout: every value starts with a ULEB128 code whose low BitsInType
// bits select the type and whose remaining bits carry the payload.
const (
	BitsInType = 3
	typeMask   = 1<<BitsInType - 1

	TypeSpecial = 0
	TypePInt    = 1
	TypeNInt    = 2
	TypeBytes   = 3
	TypeStr     = 4
	TypeArray   = 5
	TypeMap     = 6
)

// Special codes compare against the whole ULEB128 value, not just its tag.
const (
	SpecialNull  = 0<<BitsInType | TypeSpecial
	SpecialFalse = 1<<BitsInType | TypeSpecial
	SpecialTrue  = 2<<BitsInType | TypeSpecial
	SpecialAddr  = 3<<BitsInType | TypeSpecial
)

// MaxDepth bounds the nesting of arrays and maps accepted by Encode and Decode.
const MaxDepth = 1024
