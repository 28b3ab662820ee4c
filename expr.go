package gridaxis

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ConditionEvaluator evaluates boolean conditions against row records.
type ConditionEvaluator interface {
	IsTrue(condition string, record map[string]any) (bool, error)
}

// condEvaluator implements ConditionEvaluator using expr-lang/expr.
type condEvaluator struct {
	cache sync.Map // condition string → compiled *vm.Program
}

// NewConditionEvaluator creates an evaluator backed by expr-lang/expr.
// Compiled programs are cached per condition string.
func NewConditionEvaluator() ConditionEvaluator {
	return &condEvaluator{}
}

func (e *condEvaluator) IsTrue(condition string, record map[string]any) (bool, error) {
	if condition == "" {
		return false, fmt.Errorf("empty condition")
	}
	program, err := e.compile(condition, record)
	if err != nil {
		return false, fmt.Errorf("compile condition %q: %w", condition, err)
	}
	result, err := expr.Run(program, record)
	if err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", condition, err)
	}
	if result == nil {
		return false, nil // nil treated as false
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q evaluated to %T, expected bool", condition, result)
	}
	return b, nil
}

func (e *condEvaluator) compile(condition string, env map[string]any) (*vm.Program, error) {
	if cached, ok := e.cache.Load(condition); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(condition, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	e.cache.Store(condition, program)
	return program, nil
}

// sharedEvaluator backs MatchingRows; conditions compile once per process.
var sharedEvaluator = NewConditionEvaluator()

// MatchingRows returns the physical rows whose record satisfies the
// condition, ascending. Evaluation errors abort the scan.
func MatchingRows(src RecordSource, condition string) ([]int, error) {
	var rows []int
	for r := 0; r < src.RowCount(); r++ {
		ok, err := sharedEvaluator.IsTrue(condition, src.Record(r))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if ok {
			rows = append(rows, r)
		}
	}
	return rows, nil
}
