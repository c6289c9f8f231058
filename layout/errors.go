package layout

import (
	"errors"
	"fmt"
)

// ErrPrecondition 是所有前置条件错误的哨兵值，可通过 errors.Is 判断。
var ErrPrecondition = errors.New("precondition failed")

// PreconditionError 描述在调用宿主之前即可发现的输入错误。
type PreconditionError struct {
	Op     string
	Detail string
}

func (e *PreconditionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return e.Detail
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// Is 使 errors.Is(err, ErrPrecondition) 成立。
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func preconditionf(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
