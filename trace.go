package steed

import (
	"fmt"
	"io"

	"github.com/xiam/steed/ast"
	"gopkg.in/yaml.v3"
)

// Tracer receives one record for every expression that has been evaluated.
type Tracer interface {
	Trace(env *Environment, expr *ast.Node, value *Value) error
}

type discardTracer struct{}

func (discardTracer) Trace(*Environment, *ast.Node, *Value) error {
	return nil
}

// TextTracer writes one human-readable line per record.
type TextTracer struct {
	w io.Writer
}

func NewTextTracer(w io.Writer) *TextTracer {
	return &TextTracer{w: w}
}

func (t *TextTracer) Trace(env *Environment, expr *ast.Node, value *Value) error {
	_, err := fmt.Fprintf(t.w, "== Evaluate S-expression %s that produces %v(%v)\n", ast.Encode(expr), value, value.Type)
	return err
}

// TraceRecord is the serialized form of a trace entry.
type TraceRecord struct {
	Run        string `yaml:"run"`
	Expression string `yaml:"expression"`
	Value      string `yaml:"value"`
	Type       string `yaml:"type"`
}

// YAMLTracer writes each record as an item of a YAML sequence, the whole
// output stays a valid YAML document.
type YAMLTracer struct {
	w io.Writer
}

func NewYAMLTracer(w io.Writer) *YAMLTracer {
	return &YAMLTracer{w: w}
}

func (t *YAMLTracer) Trace(env *Environment, expr *ast.Node, value *Value) error {
	buf, err := yaml.Marshal([]TraceRecord{
		{
			Run:        env.ID().String(),
			Expression: string(ast.Encode(expr)),
			Value:      value.String(),
			Type:       value.Type.String(),
		},
	})
	if err != nil {
		return err
	}
	_, err = t.w.Write(buf)
	return err
}
