// Package diag describes where a term came from.
//
// Terms built by a parser carry a *Context pointing back into the source text
// they were built from. The engine never looks at contexts; they only show up
// in messages about contract violations.
package diag

import (
	"fmt"
	"strings"
)

// Context is a range of text in a named source. The zero-width range
// produced by [PointRanging] is the usual way to record a single offset.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// At creates a Context pointing at a single offset of source.
func At(name, source string, offset int) *Context {
	return &Context{name, source, PointRanging(offset)}
}

// Variables controlling the style of the culprit.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

// Location returns a short "name:line:col" description of where the range
// begins. Lines and columns are 1-based; columns count bytes.
func (c *Context) Location() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	before := c.Source[:c.From]
	line := strings.Count(before, "\n") + 1
	col := len(lastLine(before)) + 1
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

// Show shows the Context, with the relevant source line on a separate line
// prefixed by indent and the culprit highlighted.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Location() + "\n" + indent + c.relevantSource()
}

func (c *Context) checkPosition() error {
	if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) relevantSource() string {
	head := lastLine(c.Source[:c.From])
	culprit := firstLine(c.Source[c.From:c.To])
	var tail string
	if c.To == c.From+len(culprit) {
		tail = firstLine(c.Source[c.To:])
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString(culpritStart)
	sb.WriteString(culprit)
	sb.WriteString(culpritEnd)
	sb.WriteString(tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
