package interp

import "github.com/loxi-lang/loxi/internal/ast"

// Callable is anything that can appear on the left of a call
// expression: a user-defined function or method, a class (calling it
// instantiates), or a native function installed by the interpreter.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// Function is a user-defined function or method, closing over the
// environment active at its declaration site.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps declaration as a callable closing over closure.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// bind produces a copy of f whose closure additionally defines `this`
// as instance, used when a method is looked up off an Instance.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

func (f *Function) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }

// Call runs f's body in a fresh environment enclosed by its closure,
// binding each parameter to the matching argument. A return statement
// inside the body surfaces here as a returnSignal rather than an
// error; an initializer always yields the bound `this` regardless of
// what (if anything) its body returns.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// NativeFunction wraps a Go function as a callable loxi value, used
// for globals installed at interpreter construction (clock, and the
// like).
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) String() string { return "<native fn " + n.name + ">" }

func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
