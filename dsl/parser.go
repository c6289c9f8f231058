// Package dsl 定义 deck 文件的语法。
//
// deck 文件由 meta、style、slide 三类段落组成，段落内是以换行或分号分隔的语句：
// 赋值（key: value）、命令（名称 + 参数 + 可选代码块）或字符串字面量。
// 命令参数保持为原始词法单元，由 layout 解释。
package dsl

import (
	"errors"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	deckLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*|/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "Space", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][{}(),;:|=+*/%.]`},
	})

	tokenNames = invertSymbols(deckLexer.Symbols())

	parser = participle.MustBuild[Document](
		participle.Lexer(deckLexer),
		participle.Elide("Space", "Comment"),
	)
)

// Document 是 deck 文件的根节点。
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'deck' @Ident"`
	Version  string         `parser:"@Ident"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section 是顶层段落，三者恰有一个非空。
type Section struct {
	Meta  *MetaSection  `parser:"  @@"`
	Style *StyleSection `parser:"| @@"`
	Slide *SlideSection `parser:"| @@"`
}

func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Meta != nil:
		return "meta"
	case s.Style != nil:
		return "style"
	case s.Slide != nil:
		return "slide"
	}
	return "unknown"
}

type MetaSection struct {
	Block *Block `parser:"'meta' @@"`
}

// StyleSection 声明命名文本样式，可用 extends 继承另一个样式。
type StyleSection struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'style' @Ident"`
	Extends string         `parser:"( 'extends' @Ident )?"`
	Block   *Block         `parser:"@@"`
}

// SlideSection 是一张幻灯片，Params 携带 background 等页级参数。
type SlideSection struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Name   string         `parser:"'slide' @Ident"`
	Params []*Lexeme      `parser:"@@*"`
	Block  *Block         `parser:"@@"`
}

type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

type Statement struct {
	Assignment *Assignment  `parser:"  @@"`
	Command    *Command     `parser:"| @@"`
	Text       *TextLiteral `parser:"| @@"`
}

type Assignment struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' Newline* @@"`
}

// Command 是一条绘制指令，例如 `box fill NAVY { "label" }`。
type Command struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"@Ident"`
	Args  []*Lexeme      `parser:"@@*"`
	Block *Block         `parser:"( Newline* @@ )?"`
}

type TextLiteral struct {
	Value StringLiteral `parser:"@String"`
}

// Value 是赋值右侧的取值。
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Array  *ArrayValue    `parser:"| @@"`
	Expr   *Expression    `parser:"| @@"`
}

// ArrayValue 是 `[ ... ]` 列表，元素之间用逗号、分号或换行分隔。
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// Expression 保留一串未求值的词法单元（如 DARK_GRAY、center）。
type Expression struct {
	Parts []*Lexeme `parser:"@@+"`
}

// Lexeme 是命令参数或表达式中的单个词法单元。
type Lexeme struct {
	Type  string         `json:"type"`
	Value string         `json:"value"`
	Raw   string         `json:"raw"`
	Pos   lexer.Position `json:"-"`
}

// Parse 读取一个参数，遇到语句边界时让出。
func (l *Lexeme) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if atBoundary(tok) {
		return participle.NextMatch
	}
	tok = lex.Next()

	value := tok.Value
	if tokenNames[tok.Type] == "String" {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return participle.Errorf(tok.Pos, "无效的字符串 %s: %v", tok.Value, err)
		}
		value = unquoted
	}
	*l = Lexeme{Type: tokenNames[tok.Type], Value: value, Raw: tok.Value, Pos: tok.Pos}
	return nil
}

// atBoundary 判断参数序列是否在 tok 处结束。
func atBoundary(tok *lexer.Token) bool {
	if tok == nil || tok.EOF() {
		return true
	}
	switch tokenNames[tok.Type] {
	case "Newline":
		return true
	case "Punct":
		switch tok.Value {
		case "{", "}", ";", ",", "[", "]":
			return true
		}
	}
	return false
}

// StringLiteral 在捕获时去掉引号并处理转义。
type StringLiteral string

func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return errors.New("字符串字面量为空")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse 从 r 读取并解析 deck 文件。
func Parse(r io.Reader) (*Document, error) {
	return parser.Parse("", r)
}

func ParseString(input string) (*Document, error) {
	return parser.ParseString("", input)
}

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}
