// Package parser wraps tree-sitter for the class-bearing languages lineage
// understands and provides small AST traversal helpers.
package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language represents a supported programming language.
type Language string

const (
	LangPython     Language = "python"
	LangRuby       Language = "ruby"
	LangJava       Language = "java"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangJavaScript Language = "javascript"
	LangPHP        Language = "php"
	LangCSharp     Language = "csharp"
	LangCPP        Language = "cpp"
	LangUnknown    Language = "unknown"
)

// grammars maps each supported language to its tree-sitter grammar.
var grammars = map[Language]*sitter.Language{
	LangPython:     python.GetLanguage(),
	LangRuby:       ruby.GetLanguage(),
	LangJava:       java.GetLanguage(),
	LangTypeScript: typescript.GetLanguage(),
	LangTSX:        tsx.GetLanguage(),
	LangJavaScript: javascript.GetLanguage(),
	LangPHP:        php.GetLanguage(),
	LangCSharp:     csharp.GetLanguage(),
	LangCPP:        cpp.GetLanguage(),
}

// extensions maps file extensions to languages. JSX files go through the TSX
// grammar, which is a superset.
var extensions = map[string]Language{
	".py":   LangPython,
	".pyw":  LangPython,
	".pyi":  LangPython,
	".rb":   LangRuby,
	".java": LangJava,
	".ts":   LangTypeScript,
	".tsx":  LangTSX,
	".jsx":  LangTSX,
	".js":   LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".php":  LangPHP,
	".cs":   LangCSharp,
	".cpp":  LangCPP,
	".cc":   LangCPP,
	".cxx":  LangCPP,
	".hpp":  LangCPP,
	".hxx":  LangCPP,
	".h":    LangCPP,
}

// Parser wraps a tree-sitter parser instance. Instances are not safe for
// concurrent use; create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// ParseResult contains the parsed AST and metadata.
type ParseResult struct {
	Tree     *sitter.Tree
	Language Language
	Source   []byte
	Path     string
}

// New creates a new parser instance.
func New() *Parser {
	return &Parser{parser: sitter.NewParser()}
}

// Close releases parser resources.
func (p *Parser) Close() {
	p.parser.Close()
}

// ParseFile reads and parses a source file, detecting the language from the
// file extension.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	lang := DetectLanguage(path)
	if lang == LangUnknown {
		return nil, fmt.Errorf("unsupported language for file: %s", path)
	}
	return p.Parse(source, lang, path)
}

// Parse parses source code with a specified language.
func (p *Parser) Parse(source []byte, lang Language, path string) (*ParseResult, error) {
	grammar, err := GetTreeSitterLanguage(lang)
	if err != nil {
		return nil, err
	}

	p.parser.SetLanguage(grammar)
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	return &ParseResult{
		Tree:     tree,
		Language: lang,
		Source:   source,
		Path:     path,
	}, nil
}

// GetTreeSitterLanguage returns the tree-sitter grammar for a language.
func GetTreeSitterLanguage(lang Language) (*sitter.Language, error) {
	grammar, ok := grammars[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return grammar, nil
}

// DetectLanguage determines the language from a file path.
func DetectLanguage(path string) Language {
	if lang, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return LangUnknown
}

// NodeVisitor visits one AST node; returning false prunes the subtree.
type NodeVisitor func(node *sitter.Node, source []byte) bool

// Walk traverses the AST depth-first, calling visitor for each node.
func Walk(node *sitter.Node, source []byte, visitor NodeVisitor) {
	if node == nil {
		return
	}
	if !visitor(node, source) {
		return
	}
	for i := range int(node.ChildCount()) {
		Walk(node.Child(i), source, visitor)
	}
}

// FindNodesByType returns all nodes of a specific type.
func FindNodesByType(root *sitter.Node, source []byte, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	Walk(root, source, func(node *sitter.Node, _ []byte) bool {
		if node.Type() == nodeType {
			results = append(results, node)
		}
		return true
	})
	return results
}

// GetNodeText extracts the source text for a node. Returns the empty string
// for a nil node or out-of-bounds byte offsets.
func GetNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start, end := node.StartByte(), node.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}
