package syntax

// Stack frame layout shared by the parser and the code generator.
const (
	SlotSize  = 8                    // bytes per local variable
	MaxLocals = 26                   // slots in the fixed frame
	FrameSize = MaxLocals * SlotSize // bytes reserved below the frame base
)

// scope is the parser's symbol table. It maps each variable name to its slot
// offset, allocating offsets in first-occurrence order. It never shrinks.
type scope struct {
	offsets map[string]int
	names   []string // names in allocation order
}

// lookup returns the slot offset for name, allocating the next free slot on
// first use. It reports false when a new name would not fit in the frame.
func (s *scope) lookup(name string) (int, bool) {
	if off, ok := s.offsets[name]; ok {
		return off, true
	}
	if len(s.names) == MaxLocals {
		return 0, false
	}
	if s.offsets == nil {
		s.offsets = make(map[string]int)
	}
	s.names = append(s.names, name)
	off := len(s.names) * SlotSize
	s.offsets[name] = off
	return off, true
}

// Len returns the number of allocated slots.
func (s *scope) Len() int {
	return len(s.names)
}
