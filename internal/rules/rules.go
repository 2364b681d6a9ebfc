package rules

import (
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

// Rule is one compiled exclusion expression.
// Rule 是一条已编译的排除表达式。
type Rule struct {
	Source  string
	Program *vm.Program
}

// Engine evaluates exclusion expressions against entity loads. Rule sets
// are compiled once and swapped atomically, so evaluation never locks.
// Engine 针对实体加载求值排除表达式。规则集编译一次后原子替换，
// 因此求值过程不需要加锁。
type Engine struct {
	rules atomic.Pointer[[]Rule]
}

// Env is the environment an exclusion expression runs against.
// Env 是排除表达式运行时的环境。
type Env struct {
	// Type is the logical entity type name, e.g. "catalog/product".
	// Type 是逻辑实体类型名，例如 "catalog/product"。
	Type string

	// ID is the load key, an opaque string.
	// ID 是加载键，为不透明字符串。
	ID string
}

var (
	regexCache sync.Map
	regexCount int64
)

// maxCachedRegex caps the compiled-pattern cache size.
const maxCachedRegex = 1000

// Match checks the entity type against the given regular expression.
// Invalid patterns never match.
// Match 用给定的正则表达式检查实体类型。非法的模式永不匹配。
func (e Env) Match(pattern string) bool {
	re, ok := regexCache.Load(pattern)
	if !ok {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		if atomic.LoadInt64(&regexCount) < maxCachedRegex {
			regexCache.Store(pattern, compiled)
			atomic.AddInt64(&regexCount, 1)
		}
		re = compiled
	}
	return re.(*regexp.Regexp).MatchString(e.Type)
}

// NewEngine compiles the given expressions into a ready engine.
// NewEngine 将给定的表达式编译为可用的引擎。
func NewEngine(sources []string) (*Engine, error) {
	e := &Engine{}
	e.rules.Store(&[]Rule{})
	if err := e.Update(sources); err != nil {
		return nil, err
	}
	return e, nil
}

// Update compiles sources and swaps them in atomically. On a compile error
// the previous rule set stays active.
// Update 编译 sources 并原子替换。编译出错时旧规则集保持生效。
func (e *Engine) Update(sources []string) error {
	newRules := make([]Rule, 0, len(sources))
	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return errs.NewRuleError(src, err)
		}
		newRules = append(newRules, Rule{Source: src, Program: program})
	}
	e.rules.Store(&newRules)
	return nil
}

// Len returns the number of active rules.
// Len 返回生效规则的数量。
func (e *Engine) Len() int {
	rules := e.rules.Load()
	if rules == nil {
		return 0
	}
	return len(*rules)
}

// Excluded reports whether any rule matches the given load. A rule whose
// evaluation fails is skipped.
// Excluded 报告是否有规则匹配给定的加载。求值失败的规则被跳过。
func (e *Engine) Excluded(entityType string, id string) bool {
	rules := e.rules.Load()
	if rules == nil || len(*rules) == 0 {
		return false
	}
	env := Env{Type: entityType, ID: id}
	for _, rule := range *rules {
		output, err := expr.Run(rule.Program, env)
		if err != nil {
			continue
		}
		if matched, ok := output.(bool); ok && matched {
			return true
		}
	}
	return false
}

// Check compiles sources and reports the first compile error without
// building an engine. Configuration validation uses it to fail early.
// Check 编译 sources 并返回第一个编译错误，而不构建引擎。
// 配置验证用它来提前失败。
func Check(sources []string) error {
	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if _, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool()); err != nil {
			return errs.NewRuleError(src, err)
		}
	}
	return nil
}
