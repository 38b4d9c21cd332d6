// Package dump implements a human-readable pretty-printer over a DATO
// value tree, as a reader.Visitor.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/dato-io/dato/format"
	"github.com/dato-io/dato/reader"
)

// Printer is a reader.Visitor that writes an indented text rendering of
// the values it visits to an io.Writer.
type Printer struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

var _ reader.Visitor = (*Printer)(nil)

// New returns a Printer writing to w, indenting nested values with two
// spaces per level.
func New(w io.Writer) *Printer {
	return &Printer{w: w, indent: "  "}
}

// Err returns the first write error encountered, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) writeIndent() {
	p.print(strings.Repeat(p.indent, p.depth))
}

func (p *Printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *Printer) printf(format string, args ...any) {
	p.print(fmt.Sprintf(format, args...))
}

func (p *Printer) BeginMap(size int) {
	p.printf("map [%d]\n", size)
	p.writeIndent()
	p.print("{\n")
	p.depth++
}

func (p *Printer) EndMap() {
	p.depth--
	p.writeIndent()
	p.print("}\n")
}

func (p *Printer) BeginStringKey(key []byte) {
	p.writeIndent()
	p.printf("%q = ", string(key))
}

func (p *Printer) EndStringKey() { p.print("\n") }

func (p *Printer) BeginIntKey(key uint32) {
	p.writeIndent()
	p.printf("%08X = ", key)
}

func (p *Printer) EndIntKey() { p.print("\n") }

func (p *Printer) BeginArray(size int) {
	p.printf("array [%d]\n", size)
	p.writeIndent()
	p.print("{\n")
	p.depth++
}

func (p *Printer) EndArray() {
	p.depth--
	p.writeIndent()
	p.print("}\n")
}

func (p *Printer) BeginArrayIndex(i int) {
	p.writeIndent()
	p.printf("%d = ", i)
}

func (p *Printer) EndArrayIndex() { p.print("\n") }

func (p *Printer) OnValueNull() { p.print("null") }

func (p *Printer) OnValueBool(v bool) {
	if v {
		p.print("true")
	} else {
		p.print("false")
	}
}

func (p *Printer) OnValueS32(v int32)   { p.printf("s32:%d", v) }
func (p *Printer) OnValueU32(v uint32)  { p.printf("u32:%d", v) }
func (p *Printer) OnValueF32(v float32) { p.printf("f32:%g", v) }
func (p *Printer) OnValueS64(v int64)   { p.printf("s64:%d", v) }
func (p *Printer) OnValueU64(v uint64)  { p.printf("u64:%d", v) }
func (p *Printer) OnValueF64(v float64) { p.printf("f64:%g", v) }

func (p *Printer) OnValueString8(s []byte) {
	p.printf("str8:%q", escapePrintable(s))
}

func (p *Printer) OnValueString16(units []uint16) {
	p.printf("str16:%q", escapeUnits16(units))
}

func (p *Printer) OnValueString32(units []uint32) {
	p.printf("str32:%q", escapeUnits32(units))
}

func (p *Printer) OnValueByteArray(b []byte) {
	p.printf("bytearray [%d]:%x", len(b), b)
}

func (p *Printer) OnValueVector(v reader.VectorAccessor) {
	p.printf("vector(%s, %d):[", v.Subtype(), v.ElemCount())
	for i := 0; i < v.ElemCount(); i++ {
		if i > 0 {
			p.print(";")
		}
		p.printSubvalue(v.Subtype(), v, i)
	}
	p.print("]")
}

func (p *Printer) OnValueVectorArray(v reader.VectorArrayAccessor) {
	p.printf("vectorarray(%s, %d) [%d]:[", v.Subtype(), v.ElemCount(), v.Len())
	for t := 0; t < v.Len(); t++ {
		if t > 0 {
			p.print(" | ")
		}
		for i := 0; i < v.ElemCount(); i++ {
			if i > 0 {
				p.print(";")
			}
			p.printTupleValue(v, t, i)
		}
	}
	p.print("]")
}

func (p *Printer) OnUnknownValue(typ format.Type) {
	p.printf("unknown (type=%d)", typ)
}

func (p *Printer) printSubvalue(subtype format.Subtype, v reader.VectorAccessor, i int) {
	switch subtype {
	case format.SubtypeF32, format.SubtypeF64:
		f, err := v.Float(i)
		if err != nil {
			p.print("?")
			return
		}
		p.printf("%g", f)
	default:
		if isUnsignedSubtype(subtype) {
			u, err := v.Uint(i)
			if err != nil {
				p.print("?")
				return
			}
			p.printf("%d", u)
		} else {
			n, err := v.Int(i)
			if err != nil {
				p.print("?")
				return
			}
			p.printf("%d", n)
		}
	}
}

func (p *Printer) printTupleValue(v reader.VectorArrayAccessor, t, i int) {
	switch v.Subtype() {
	case format.SubtypeF32, format.SubtypeF64:
		f, err := v.Float(t, i)
		if err != nil {
			p.print("?")
			return
		}
		p.printf("%g", f)
	default:
		if isUnsignedSubtype(v.Subtype()) {
			u, err := v.Uint(t, i)
			if err != nil {
				p.print("?")
				return
			}
			p.printf("%d", u)
		} else {
			n, err := v.Int(t, i)
			if err != nil {
				p.print("?")
				return
			}
			p.printf("%d", n)
		}
	}
}

func isUnsignedSubtype(s format.Subtype) bool {
	switch s {
	case format.SubtypeU8, format.SubtypeU16, format.SubtypeU32, format.SubtypeU64:
		return true
	default:
		return false
	}
}
