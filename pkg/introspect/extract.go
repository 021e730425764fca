package introspect

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lineagehq/lineage/pkg/parser"
)

// classDef is one class definition found in a source file.
type classDef struct {
	name    string
	line    uint32
	parents []string
}

// extractClassDefs returns the classes defined in a parsed file with their
// direct superclass names in declaration order.
func extractClassDefs(result *parser.ParseResult) []classDef {
	switch result.Language {
	case parser.LangPython:
		return extractPythonClasses(result)
	case parser.LangRuby:
		return extractRubyClasses(result)
	case parser.LangJava:
		return extractJavaClasses(result)
	case parser.LangTypeScript, parser.LangTSX, parser.LangJavaScript:
		return extractJSClasses(result)
	case parser.LangPHP:
		return extractPHPClasses(result)
	case parser.LangCSharp:
		return extractCSharpClasses(result)
	case parser.LangCPP:
		return extractCPPClasses(result)
	default:
		return nil
	}
}

// extractPythonClasses handles class_definition nodes. Base classes appear
// in the superclasses argument list; keyword arguments (metaclass=...) are
// not inheritance and are skipped.
func extractPythonClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		if node.Type() != "class_definition" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		if bases := node.ChildByFieldName("superclasses"); bases != nil {
			for i := range int(bases.ChildCount()) {
				child := bases.Child(i)
				switch child.Type() {
				case "identifier":
					def.parents = append(def.parents, parser.GetNodeText(child, src))
				case "attribute":
					// module.Base inherits by the trailing name
					if attr := child.ChildByFieldName("attribute"); attr != nil {
						def.parents = append(def.parents, parser.GetNodeText(attr, src))
					}
				}
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// extractRubyClasses handles class nodes. The superclass child holds the
// constant after "<". Module mixins (include/extend) are references, not
// inheritance, and are ignored here.
func extractRubyClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		if node.Type() != "class" {
			return true
		}
		var name string
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = parser.GetNodeText(nameNode, src)
		}
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		if superNode := node.ChildByFieldName("superclass"); superNode != nil {
			for i := range int(superNode.ChildCount()) {
				child := superNode.Child(i)
				if child.Type() == "constant" || child.Type() == "scope_resolution" {
					def.parents = append(def.parents, parser.GetNodeText(child, src))
				}
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// extractJavaClasses handles class and interface declarations. A class has
// at most one superclass plus any number of implemented interfaces; both
// count as direct parents, superclass first.
func extractJavaClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		nodeType := node.Type()
		if nodeType != "class_declaration" && nodeType != "interface_declaration" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		if super := node.ChildByFieldName("superclass"); super != nil {
			def.parents = append(def.parents, collectTypeNames(super, src)...)
		}
		if ifaces := node.ChildByFieldName("interfaces"); ifaces != nil {
			def.parents = append(def.parents, collectTypeNames(ifaces, src)...)
		}
		// Interfaces extend other interfaces via extends_interfaces.
		for i := range int(node.ChildCount()) {
			child := node.Child(i)
			if child.Type() == "extends_interfaces" {
				def.parents = append(def.parents, collectTypeNames(child, src)...)
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// extractJSClasses handles TypeScript/TSX/JavaScript class declarations.
// The class_heritage node carries both the extends clause and, for
// TypeScript, the implements clause.
func extractJSClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		nodeType := node.Type()
		if nodeType != "class_declaration" && nodeType != "class" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		for i := range int(node.ChildCount()) {
			child := node.Child(i)
			if child.Type() == "class_heritage" {
				def.parents = append(def.parents, collectTypeNames(child, src)...)
			}
		}
		defs = append(defs, def)
		return false // nested class expressions are not indexed
	})

	return defs
}

// extractPHPClasses handles class and interface declarations with their
// base_clause (extends) and class_interface_clause (implements).
func extractPHPClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		nodeType := node.Type()
		if nodeType != "class_declaration" && nodeType != "interface_declaration" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		for i := range int(node.ChildCount()) {
			child := node.Child(i)
			if child.Type() == "base_clause" || child.Type() == "class_interface_clause" {
				def.parents = append(def.parents, collectTypeNames(child, src)...)
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// extractCSharpClasses handles class and interface declarations with their
// base_list.
func extractCSharpClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		nodeType := node.Type()
		if nodeType != "class_declaration" && nodeType != "interface_declaration" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		for i := range int(node.ChildCount()) {
			child := node.Child(i)
			if child.Type() == "base_list" {
				def.parents = append(def.parents, collectTypeNames(child, src)...)
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// extractCPPClasses handles class and struct specifiers with a
// base_class_clause. Forward declarations have no name or body and are
// skipped by the empty-name check.
func extractCPPClasses(result *parser.ParseResult) []classDef {
	var defs []classDef

	parser.Walk(result.Tree.RootNode(), result.Source, func(node *sitter.Node, src []byte) bool {
		nodeType := node.Type()
		if nodeType != "class_specifier" && nodeType != "struct_specifier" {
			return true
		}
		name := parser.GetNodeText(node.ChildByFieldName("name"), src)
		if name == "" {
			return true
		}
		def := classDef{name: name, line: node.StartPoint().Row + 1}

		for i := range int(node.ChildCount()) {
			child := node.Child(i)
			if child.Type() == "base_class_clause" {
				def.parents = append(def.parents, collectTypeNames(child, src)...)
			}
		}
		defs = append(defs, def)
		return true
	})

	return defs
}

// typeNameNodes are AST node types that denote a type reference across the
// supported grammars.
var typeNameNodes = map[string]bool{
	"identifier":             true,
	"type_identifier":        true,
	"constant":               true,
	"scoped_type_identifier": true,
	"qualified_identifier":   true,
	"qualified_name":         true,
	"scope_resolution":       true,
	"nested_identifier":      true,
	"name":                   true,
}

// typeArgNodes are generic/template argument containers that must not
// contribute parent names.
var typeArgNodes = map[string]bool{
	"type_arguments":         true,
	"type_argument_list":     true,
	"template_argument_list": true,
	"type_parameters":        true,
	"type_parameter_list":    true,
}

// collectTypeNames gathers type reference names beneath a clause node,
// skipping generic argument lists. Dotted member expressions contribute
// their trailing name.
func collectTypeNames(node *sitter.Node, source []byte) []string {
	var names []string

	parser.Walk(node, source, func(n *sitter.Node, src []byte) bool {
		t := n.Type()
		if typeArgNodes[t] {
			return false
		}
		if t == "member_expression" {
			if prop := n.ChildByFieldName("property"); prop != nil {
				names = append(names, parser.GetNodeText(prop, src))
			}
			return false
		}
		if typeNameNodes[t] {
			if s := parser.GetNodeText(n, src); s != "" {
				names = append(names, s)
			}
			return false
		}
		return true
	})

	return names
}
