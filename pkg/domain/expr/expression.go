// 指示: miu200521358
// Package expr はシェイプキードライバーのスクリプト式を扱う。
package expr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"gopkg.in/Knetic/govaluate.v3"
)

var (
	// ErrNotNumeric は評価結果が数値でないことを表す。
	ErrNotNumeric = errors.New("expression result is not numeric")

	identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

	reservedWords = map[string]struct{}{
		"and": {}, "or": {}, "not": {}, "if": {}, "else": {}, "in": {}, "is": {},
		"lambda": {}, "True": {}, "False": {}, "None": {}, "pi": {},
	}
)

// Functions はドライバー式で利用できる関数群を返す。
func Functions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"erc_keyed": ercKeyedFunction,
		"min":       minFunction,
		"max":       maxFunction,
		"abs":       absFunction,
	}
}

// Parse は式を解析する。
func Parse(expression string) (*govaluate.EvaluableExpression, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expression, Functions())
	if err != nil {
		return nil, fmt.Errorf("ドライバー式の解析に失敗しました %q: %w", expression, err)
	}
	return parsed, nil
}

// ReferencedNames は式中で参照される変数名を出現順で返す。
// 解析できない式(Python固有構文など)は字句走査に切り替え、parsed=false を返す。
func ReferencedNames(expression string) (names []string, parsed bool) {
	compiled, err := Parse(expression)
	if err != nil {
		return scanIdentifiers(expression), false
	}
	seen := map[string]struct{}{}
	names = make([]string, 0)
	for _, token := range compiled.Tokens() {
		if token.Kind != govaluate.VARIABLE {
			continue
		}
		name, ok := token.Value.(string)
		if !ok {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, true
}

// scanIdentifiers は関数呼び出しと予約語を除いた識別子を出現順で返す。
func scanIdentifiers(expression string) []string {
	seen := map[string]struct{}{}
	names := make([]string, 0)
	for _, loc := range identifierPattern.FindAllStringIndex(expression, -1) {
		start, end := loc[0], loc[1]
		if start > 0 {
			prev := expression[start-1]
			if prev == '.' || (prev >= '0' && prev <= '9') {
				continue
			}
		}
		if isFunctionCall(expression, end) {
			continue
		}
		name := expression[start:end]
		if _, reserved := reservedWords[name]; reserved {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// isFunctionCall は識別子直後(空白を除く)が開き括弧か判定する。
func isFunctionCall(expression string, end int) bool {
	for i := end; i < len(expression); i++ {
		switch expression[i] {
		case ' ', '\t':
			continue
		case '(':
			return true
		default:
			return false
		}
	}
	return false
}

// ReplaceReference は式中の変数参照(単語境界一致)を置換文字列で置き換える。
func ReplaceReference(expression string, name string, replacement string) string {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return pattern.ReplaceAllLiteralString(expression, replacement)
}

// NegateReference は変数参照を符号反転した括弧式で置き換える。
func NegateReference(expression string, name string) string {
	return ReplaceReference(expression, name, "(-"+name+")")
}

// SumReference は変数参照を複数変数の和の括弧式で置き換える。
func SumReference(expression string, name string, additions []string) string {
	if len(additions) == 0 {
		return expression
	}
	sum := "(" + name
	for _, addition := range additions {
		sum += "+" + addition
	}
	sum += ")"
	return ReplaceReference(expression, name, sum)
}

// Evaluate は変数値を与えて式を評価する。
func Evaluate(expression string, values map[string]float64) (float64, error) {
	compiled, err := Parse(expression)
	if err != nil {
		return 0, err
	}
	parameters := make(map[string]interface{}, len(values))
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parameters[name] = values[name]
	}
	result, err := compiled.Evaluate(parameters)
	if err != nil {
		return 0, fmt.Errorf("ドライバー式の評価に失敗しました %q: %w", expression, err)
	}
	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("%q => %v: %w", expression, result, ErrNotNumeric)
	}
	return value, nil
}

// ErcKeyed は回転差分を 0..1 の範囲へ変換する。
// dist が負の場合は min から max へ減少方向のキーとして扱う。
func ErcKeyed(value float64, min float64, max float64, normalizedDist float64, dist float64) float64 {
	if dist < 0 {
		if max <= value && value <= min {
			return math.Abs((value - min) / dist)
		} else if max >= value {
			return 1
		}
		return 0
	}
	if min <= value && value <= max {
		return math.Abs((value - min*normalizedDist) / dist)
	} else if max <= value {
		return 1
	}
	return 0
}

// ercKeyedFunction は erc_keyed をドライバー式関数として公開する。
func ercKeyedFunction(arguments ...interface{}) (interface{}, error) {
	values, err := floatArguments("erc_keyed", 5, arguments)
	if err != nil {
		return nil, err
	}
	return ErcKeyed(values[0], values[1], values[2], values[3], values[4]), nil
}

// minFunction は引数の最小値を返す。
func minFunction(arguments ...interface{}) (interface{}, error) {
	values, err := floatArguments("min", -1, arguments)
	if err != nil {
		return nil, err
	}
	result := values[0]
	for _, value := range values[1:] {
		result = math.Min(result, value)
	}
	return result, nil
}

// maxFunction は引数の最大値を返す。
func maxFunction(arguments ...interface{}) (interface{}, error) {
	values, err := floatArguments("max", -1, arguments)
	if err != nil {
		return nil, err
	}
	result := values[0]
	for _, value := range values[1:] {
		result = math.Max(result, value)
	}
	return result, nil
}

// absFunction は絶対値を返す。
func absFunction(arguments ...interface{}) (interface{}, error) {
	values, err := floatArguments("abs", 1, arguments)
	if err != nil {
		return nil, err
	}
	return math.Abs(values[0]), nil
}

// floatArguments は関数引数を float64 へ変換する。want が負の場合は1個以上を要求する。
func floatArguments(name string, want int, arguments []interface{}) ([]float64, error) {
	if want >= 0 && len(arguments) != want {
		return nil, fmt.Errorf("%s: 引数は%d個必要です(got=%d)", name, want, len(arguments))
	}
	if len(arguments) == 0 {
		return nil, fmt.Errorf("%s: 引数がありません", name)
	}
	values := make([]float64, 0, len(arguments))
	for _, argument := range arguments {
		value, ok := argument.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: 数値以外の引数です %v: %w", name, argument, ErrNotNumeric)
		}
		values = append(values, value)
	}
	return values, nil
}
