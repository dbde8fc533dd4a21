// Package filter evaluates expr-lang expressions against cards.
//
// Expressions see a flattened view of a card:
//
//	name, supertype, rarity, artist, number, regulationMark  string
//	subtypes, types                                          []string
//	hp                                                       int (0 when absent or not numeric)
//	set, setName, series                                     string
//
// Example:
//
//	"Fire" in types and hp >= 120 and series == "Sword & Shield"
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment an expression is evaluated in.
type Env struct {
	Name           string   `expr:"name"`
	Supertype      string   `expr:"supertype"`
	Subtypes       []string `expr:"subtypes"`
	Types          []string `expr:"types"`
	HP             int      `expr:"hp"`
	Rarity         string   `expr:"rarity"`
	Artist         string   `expr:"artist"`
	Number         string   `expr:"number"`
	Set            string   `expr:"set"`
	SetName        string   `expr:"setName"`
	Series         string   `expr:"series"`
	RegulationMark string   `expr:"regulationMark"`
}

// NewEnv flattens card into an Env.
func NewEnv(card models.Card) Env {
	return Env{
		Name:           card.Name,
		Supertype:      card.Supertype,
		Subtypes:       card.Subtypes,
		Types:          card.Types,
		HP:             parseHP(card.HP),
		Rarity:         deref(card.Rarity),
		Artist:         deref(card.Artist),
		Number:         deref(card.Number),
		Set:            card.Set.ID,
		SetName:        card.Set.Name,
		Series:         card.Set.Series,
		RegulationMark: deref(card.RegulationMark),
	}
}

// CompilationError indicates an expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates an expression failed at run time for one card.
type EvaluationError struct {
	Expression string
	CardID     string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for '%s' on card '%s': %v", e.Expression, e.CardID, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles expression against Env. Unknown identifiers and
// non-boolean results are compile errors.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(Env{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the trimmed source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match reports whether card satisfies the expression.
func (f *Filter) Match(card models.Card) (bool, error) {
	result, err := expr.Run(f.program, NewEnv(card))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, CardID: card.ID, Err: err}
	}
	// AsBool guarantees the type.
	return result.(bool), nil
}

// Apply returns the cards that match, in their original order. A nil
// filter matches everything.
func (f *Filter) Apply(cards []models.Card) ([]models.Card, error) {
	if f == nil {
		return cards, nil
	}

	matched := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		ok, err := f.Match(card)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, card)
		}
	}
	return matched, nil
}

// parseHP reads the printed hit points; absent or non-numeric values are 0.
func parseHP(hp *string) int {
	if hp == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(*hp))
	if err != nil {
		return 0
	}
	return n
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
