package codegen

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting assembly text.
// It also tracks the depth of the operand stack that push and pop maintain
// on the machine stack.
type emitter struct {
	w     io.Writer
	err   error // first write error
	depth int   // operand stack cells currently pushed
}

// emit writes a formatted line to the output (no indentation).
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitInst writes an indented instruction line.
func (e *emitter) emitInst(format string, args ...interface{}) {
	e.emit("  "+format, args...)
}

// emitLabel writes a label line.
func (e *emitter) emitLabel(name string) {
	e.emit("%s:", name)
}

// push emits a push of operand onto the operand stack.
func (e *emitter) push(operand string) {
	e.emitInst("push %s", operand)
	e.depth++
}

// pop emits a pop of the operand stack top into reg.
func (e *emitter) pop(reg string) {
	if e.depth == 0 {
		panic("codegen: pop from empty operand stack")
	}
	e.emitInst("pop %s", reg)
	e.depth--
}
