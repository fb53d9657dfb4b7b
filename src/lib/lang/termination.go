package lang

const (
	ExitSuccess = int32(0)
	ExitFailure = int32(1)
)

// Termination is implemented by anything a program's entry function may
// return.  Report turns the result into the status handed back to the
// platform.  It must not have side effects.
type Termination interface {
	Report() int32
}

// Unit is the result of an entry function that has nothing to say.  It
// always reports success.
type Unit struct{}

func (Unit) Report() int32 {
	return ExitSuccess
}

// ExitCode reports itself.
type ExitCode int32

func (e ExitCode) Report() int32 {
	return int32(e)
}

// Result is a two-variant outcome: success, or failure with a nonzero code.
// The zero value is success.
type Result struct {
	code int32
	err  error
}

func Success() Result {
	return Result{}
}

// Failure builds a failed result.  A code of zero would read as success, so
// it is replaced with ExitFailure.
func Failure(code int32) Result {
	if code == ExitSuccess {
		code = ExitFailure
	}
	return Result{code: code}
}

// FromError is Success for a nil error and Failure(ExitFailure) otherwise.
func FromError(err error) Result {
	if err == nil {
		return Success()
	}
	return Result{code: ExitFailure, err: err}
}

func (r Result) Ok() bool {
	return r.code == ExitSuccess
}

// Err is the error the result was built from, if any.
func (r Result) Err() error {
	return r.err
}

func (r Result) Report() int32 {
	return r.code
}
