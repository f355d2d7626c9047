package ask

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// check validates, converts and range checks an answer that has already been
// transformed. A rejected answer is reported as *InputError with Kind set and
// Message left empty; mistakes in the question itself are *ProgrammerError.
func (q *Question) check(answer string) (any, error) {
	if !q.valid(answer) {
		return nil, &InputError{Kind: ResponseNotValid, Answer: answer}
	}

	value, err := q.convert(answer)
	if err != nil {
		return nil, err
	}

	ok, err := q.inRange(value)
	if err != nil {
		return nil, programmerError("range check", err)
	}
	if !ok {
		return nil, &InputError{Kind: ResponseNotInRange, Answer: answer}
	}
	return value, nil
}

func (q *Question) valid(answer string) bool {
	if q.validatePattern != nil && !q.validatePattern.MatchString(answer) {
		return false
	}
	if q.validateFunc != nil && !q.validateFunc(answer) {
		return false
	}
	return true
}

// convert turns answer into the question's answer type.
func (q *Question) convert(answer string) (any, error) {
	invalid := func(err error) error {
		return &InputError{Kind: ResponseInvalidType, Answer: answer, Err: err}
	}

	switch k := q.kind.(type) {
	case PlainString:
		return answer, nil
	case Integer:
		n, err := strconv.ParseInt(answer, 0, strconv.IntSize)
		if err != nil {
			return nil, invalid(err)
		}
		return int(n), nil
	case Float:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return nil, invalid(err)
		}
		return f, nil
	case Symbol:
		return SymbolValue(answer), nil
	case Regex:
		re, err := regexp.Compile(answer)
		if err != nil {
			return nil, invalid(err)
		}
		return re, nil
	case OneOf:
		return resolveChoice(answer, k.Choices)
	case PathLike:
		entries, err := listEntries(k.Dir, k.Glob, strings.HasPrefix(answer, "."))
		if err != nil {
			return nil, programmerError("list "+k.Dir, err)
		}
		choice, err := resolveChoice(answer, entries)
		if err != nil {
			return nil, err
		}
		return filepath.Join(k.Dir, choice), nil
	case Custom:
		return convertCustom(k, answer)
	default:
		return nil, programmerError("convert", fmt.Errorf("unsupported answer kind %T", q.kind))
	}
}

// convertCustom runs a caller supplied conversion, turning ErrInvalidAnswer
// into a recoverable error and anything else (panics included) into a
// *ProgrammerError.
func convertCustom(k Custom, answer string) (value any, err error) {
	if k.Convert == nil {
		return nil, programmerError("convert", errors.New("custom answer kind without a Convert function"))
	}
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = programmerError("convert", fmt.Errorf("%s conversion panicked: %v", k.describe(), r))
		}
	}()

	value, err = k.Convert(answer)
	if err != nil {
		if errors.Is(err, ErrInvalidAnswer) {
			return nil, &InputError{Kind: ResponseInvalidType, Answer: answer, Err: err}
		}
		return nil, programmerError("convert", err)
	}
	return value, nil
}

// resolveChoice completes answer to one of choices: an exact match wins,
// otherwise the answer must be a prefix of exactly one choice.
func resolveChoice(answer string, choices []string) (string, error) {
	var matches []string
	for _, choice := range choices {
		if choice == answer {
			return choice, nil
		}
		if strings.HasPrefix(choice, answer) {
			matches = append(matches, choice)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", &InputError{Kind: ResponseNoCompletion, Answer: answer}
	default:
		return "", &InputError{Kind: ResponseAmbiguousCompletion, Answer: answer}
	}
}

// selection lists what a OneOf or PathLike answer may be.
func (q *Question) selection() []string {
	switch k := q.kind.(type) {
	case OneOf:
		return k.Choices
	case PathLike:
		entries, _ := listEntries(k.Dir, k.Glob, false)
		return entries
	default:
		return nil
	}
}

// ordered is a value that can be compared with a bound: numbers compare as
// float64 regardless of their Go type, strings lexically.
type ordered struct {
	isNum bool
	num   float64
	str   string
}

func orderedValue(v any) (ordered, bool) {
	switch x := v.(type) {
	case int:
		return ordered{isNum: true, num: float64(x)}, true
	case int8:
		return ordered{isNum: true, num: float64(x)}, true
	case int16:
		return ordered{isNum: true, num: float64(x)}, true
	case int32:
		return ordered{isNum: true, num: float64(x)}, true
	case int64:
		return ordered{isNum: true, num: float64(x)}, true
	case uint:
		return ordered{isNum: true, num: float64(x)}, true
	case uint8:
		return ordered{isNum: true, num: float64(x)}, true
	case uint16:
		return ordered{isNum: true, num: float64(x)}, true
	case uint32:
		return ordered{isNum: true, num: float64(x)}, true
	case uint64:
		return ordered{isNum: true, num: float64(x)}, true
	case float32:
		return ordered{isNum: true, num: float64(x)}, true
	case float64:
		return ordered{isNum: true, num: x}, true
	case string:
		return ordered{str: x}, true
	case SymbolValue:
		return ordered{str: string(x)}, true
	default:
		return ordered{}, false
	}
}

// compareValues returns -1, 0 or 1. Values of different families (a number
// and a string, or anything unordered) cannot be compared.
func compareValues(a, b any) (int, error) {
	oa, okA := orderedValue(a)
	ob, okB := orderedValue(b)
	if !okA || !okB || oa.isNum != ob.isNum {
		return 0, fmt.Errorf("cannot compare %v (%T) with %v (%T)", a, a, b, b)
	}
	if oa.isNum {
		switch {
		case oa.num < ob.num:
			return -1, nil
		case oa.num > ob.num:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return strings.Compare(oa.str, ob.str), nil
}

// inRange reports whether value satisfies every bound of the question.
func (q *Question) inRange(value any) (bool, error) {
	if q.above != nil {
		c, err := compareValues(value, q.above)
		if err != nil {
			return false, err
		}
		if c <= 0 {
			return false, nil
		}
	}
	if q.below != nil {
		c, err := compareValues(value, q.below)
		if err != nil {
			return false, err
		}
		if c >= 0 {
			return false, nil
		}
	}
	if q.in != nil {
		return member(value, q.in), nil
	}
	return true, nil
}

func member(value any, set []any) bool {
	for _, candidate := range set {
		if c, err := compareValues(value, candidate); err == nil {
			if c == 0 {
				return true
			}
			continue
		}
		if reflect.DeepEqual(value, candidate) {
			return true
		}
	}
	return false
}
