package interp

import "github.com/loxi-lang/loxi/internal/lexer"

// Class is both a callable (calling it constructs an Instance) and,
// per the language's "a class is also an instance" rule, a namespace
// in its own right: Statics holds the class's static methods,
// installed as fields when the class declaration runs and looked up
// the same way an ordinary Get expression looks up a field on an
// Instance.
type Class struct {
	Name    string
	Methods map[string]*Function
	Statics *Instance
}

// NewClass builds a Class named name with the given instance methods.
// Static methods are installed onto Statics by the caller after
// construction (see Interpreter.VisitClassStmt).
func NewClass(name string, methods map[string]*Function) *Class {
	return &Class{Name: name, Methods: methods, Statics: &Instance{Fields: make(map[string]Value)}}
}

func (c *Class) findMethod(name string) (*Function, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

func (c *Class) String() string { return c.Name }

// Arity mirrors the class's init method, or zero if it declares none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates c, running init (if declared) against the new
// Instance before returning it.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Get looks up a static member installed on the class namespace
// itself.
func (c *Class) Get(name lexer.Token) (Value, error) {
	if v, ok := c.Statics.Fields[name.Lexeme]; ok {
		return v, nil
	}
	return nil, newRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Instance is a runtime object created by calling a Class. Fields
// holds only the instance fields assigned via Set expressions; Get
// never writes to it, and methods are never copied into Fields, only
// bound and returned on demand.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a field or bound method named name off the instance,
// checking fields before methods so a field can shadow a method of
// the same name.
func (i *Instance) Get(name lexer.Token) (Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.findMethod(name.Lexeme); ok {
		return method.bind(i), nil
	}
	return nil, newRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set stores value into the field named name, creating it if absent.
func (i *Instance) Set(name lexer.Token, value Value) {
	i.Fields[name.Lexeme] = value
}
