package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndexJava(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Shapes.java", `public class Circle extends Shape implements Drawable, Comparable<Circle> {
}

interface Drawable extends Renderable {
}
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	circle, ok := ix.Resolve("Circle")
	require.True(t, ok)
	// Superclass first, then interfaces; generic arguments are dropped.
	assert.Equal(t, []string{"Shape", "Drawable", "Comparable"}, circle.Parents)

	drawable, ok := ix.Resolve("Drawable")
	require.True(t, ok)
	assert.Equal(t, []string{"Renderable"}, drawable.Parents)
}

func TestBuildIndexTypeScriptImplements(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.ts", `class Widget extends Base implements Clickable {
}
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	w, ok := ix.Resolve("Widget")
	require.True(t, ok)
	assert.Equal(t, []string{"Base", "Clickable"}, w.Parents)
}

func TestBuildIndexJavaScriptMemberExpression(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "view.js", `class View extends React.Component {
}
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	v, ok := ix.Resolve("View")
	require.True(t, ok)
	assert.Equal(t, []string{"Component"}, v.Parents)
}

func TestBuildIndexPHP(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "controller.php", `<?php
class UserController extends Controller implements Loggable {
}
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	c, ok := ix.Resolve("UserController")
	require.True(t, ok)
	assert.Equal(t, []string{"Controller", "Loggable"}, c.Parents)
}

func TestBuildIndexCSharp(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Service.cs", `class OrderService : ServiceBase, IDisposable {
}
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	s, ok := ix.Resolve("OrderService")
	require.True(t, ok)
	assert.Equal(t, []string{"ServiceBase", "IDisposable"}, s.Parents)
}

func TestBuildIndexCPP(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shapes.hpp", `class Circle : public Shape, private Serializable {
};

struct Point : Base {
};
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	circle, ok := ix.Resolve("Circle")
	require.True(t, ok)
	assert.Equal(t, []string{"Shape", "Serializable"}, circle.Parents)

	point, ok := ix.Resolve("Point")
	require.True(t, ok)
	assert.Equal(t, []string{"Base"}, point.Parents)
}

func TestBuildIndexRubyScopedSuperclass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "job.rb", `class ImportJob < ActiveJob::Base
end
`)

	ix, err := BuildIndex([]string{path})
	require.NoError(t, err)

	j, ok := ix.Resolve("ImportJob")
	require.True(t, ok)
	assert.Equal(t, []string{"ActiveJob::Base"}, j.Parents)
}
