package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeadingsAndParagraphs(t *testing.T) {
	html := Render("## Overview\nSome body text.")
	assert.Contains(t, html, "<h2>Overview</h2>")
	assert.Contains(t, html, "Some body text.")
}

func TestRenderGFMTable(t *testing.T) {
	html := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, html, "<table>")
}

func TestRenderStrikethrough(t *testing.T) {
	html := Render("~~gone~~")
	assert.Contains(t, html, "<del>gone</del>")
}

func TestRenderAutolink(t *testing.T) {
	html := Render("see https://gigspace.com for more")
	assert.Contains(t, html, `<a href="https://gigspace.com"`)
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Equal(t, "", Render(""))
}
