package dtype

import (
	"github.com/wippyai/ndkit/errors"
)

// Info describes the computed layout of a dtype.
type Info struct {
	FieldOffs map[string]int
	Size      int
	Align     int
}

// Calculator computes record layouts with natural alignment and caches
// results per dtype.
type Calculator struct {
	cache map[*DType]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*DType]Info),
	}
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align int) int {
	if align <= 1 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Calculate returns the layout of an existing dtype.
func (c *Calculator) Calculate(d *DType) Info {
	if cached, ok := c.cache[d]; ok {
		return cached
	}

	var info Info
	switch d.Kind {
	case KindString:
		info = Info{Size: d.Size, Align: 1}
	case KindRecord:
		info = c.calculateRecord(d.Fields)
		// explicit itemsize wins over the packed size
		if d.Size > info.Size {
			info.Size = d.Size
		}
	default:
		info = Info{Size: d.Size, Align: d.Size}
	}

	c.cache[d] = info
	return info
}

func (c *Calculator) calculateRecord(fields []Field) Info {
	if len(fields) == 0 {
		return Info{Size: 0, Align: 1}
	}

	fieldOffs := make(map[string]int, len(fields))
	maxAlign := 1
	end := 0

	for _, f := range fields {
		fl := c.Calculate(f.Type)
		fieldOffs[f.Name] = f.Offset

		if fl.Align > maxAlign {
			maxAlign = fl.Align
		}
		if f.Offset+fl.Size > end {
			end = f.Offset + fl.Size
		}
	}

	return Info{
		Size:      AlignTo(end, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}
}

// Record packs the given field specs into a record dtype, assigning each
// field the next naturally aligned offset and padding the total size to
// the maximum field alignment.
func (c *Calculator) Record(specs ...FieldSpec) (*DType, error) {
	fields := make([]Field, 0, len(specs))
	maxAlign := 1
	offset := 0

	for _, s := range specs {
		if s.Type == nil {
			return nil, errors.InvalidData(errors.PhaseLayout, []string{s.Name}, "nil field dtype")
		}
		fl := c.Calculate(s.Type)

		offset = AlignTo(offset, fl.Align)
		fields = append(fields, Field{Name: s.Name, Offset: offset, Type: s.Type})

		if fl.Align > maxAlign {
			maxAlign = fl.Align
		}
		offset += fl.Size
	}

	return &DType{
		Kind:   KindRecord,
		Size:   AlignTo(offset, maxAlign),
		Fields: fields,
	}, nil
}
