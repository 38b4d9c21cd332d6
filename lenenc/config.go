package lenenc

import "github.com/dato-io/dato/errs"

// Config names the four independently-chosen length encodings a buffer
// uses for its KeyLength, ObjectSize, ArrayLength, and ValueLength field
// classes (spec.md §4.2). The header's config-id byte selects one of the
// five presets below.
//
// Implementations are zero-size value types, so Writer[C Config] and
// Reader[C Config] instantiated with a concrete preset carry no extra
// storage and let call sites inline straight to the chosen Encoding.
type Config interface {
	// ID is the config-id byte written into the header (0..4).
	ID() uint8
	KeyLength() Encoding
	ObjectSize() Encoding
	ArrayLength() Encoding
	ValueLength() Encoding
}

// Config0: KeyLen=U32, ObjSize=U32, ArrLen=U32, ValLen=U32.
type Config0 struct{}

func (Config0) ID() uint8             { return 0 }
func (Config0) KeyLength() Encoding   { return U32 }
func (Config0) ObjectSize() Encoding  { return U32 }
func (Config0) ArrayLength() Encoding { return U32 }
func (Config0) ValueLength() Encoding { return U32 }

// Config1: KeyLen=U32, ObjSize=U32, ArrLen=U32, ValLen=U8X32.
type Config1 struct{}

func (Config1) ID() uint8             { return 1 }
func (Config1) KeyLength() Encoding   { return U32 }
func (Config1) ObjectSize() Encoding  { return U32 }
func (Config1) ArrayLength() Encoding { return U32 }
func (Config1) ValueLength() Encoding { return U8X32 }

// Config2: KeyLen=U8X32, ObjSize=U8X32, ArrLen=U8X32, ValLen=U8X32.
type Config2 struct{}

func (Config2) ID() uint8             { return 2 }
func (Config2) KeyLength() Encoding   { return U8X32 }
func (Config2) ObjectSize() Encoding  { return U8X32 }
func (Config2) ArrayLength() Encoding { return U8X32 }
func (Config2) ValueLength() Encoding { return U8X32 }

// Config3: KeyLen=U8, ObjSize=U8, ArrLen=U32, ValLen=U32.
type Config3 struct{}

func (Config3) ID() uint8             { return 3 }
func (Config3) KeyLength() Encoding   { return U8 }
func (Config3) ObjectSize() Encoding  { return U8 }
func (Config3) ArrayLength() Encoding { return U32 }
func (Config3) ValueLength() Encoding { return U32 }

// Config4: KeyLen=U8, ObjSize=U8, ArrLen=U8X32, ValLen=U8X32.
type Config4 struct{}

func (Config4) ID() uint8             { return 4 }
func (Config4) KeyLength() Encoding   { return U8 }
func (Config4) ObjectSize() Encoding  { return U8 }
func (Config4) ArrayLength() Encoding { return U8X32 }
func (Config4) ValueLength() Encoding { return U8X32 }

// ForID returns the preset Config named by a header config-id byte.
func ForID(id uint8) (Config, error) {
	switch id {
	case 0:
		return Config0{}, nil
	case 1:
		return Config1{}, nil
	case 2:
		return Config2{}, nil
	case 3:
		return Config3{}, nil
	case 4:
		return Config4{}, nil
	default:
		return nil, errs.ErrInvalidConfigID
	}
}
