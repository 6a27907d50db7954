package model

import (
	"github.com/goccy/go-yaml"

	"github.com/ardnew/scad/log"
)

// Model is a decoded model file.
type Model struct {
	Indent    *string        `yaml:"indent"`
	Banner    *string        `yaml:"banner"`
	Specials  yaml.MapSlice  `yaml:"specials"`
	Variables []VariableSpec `yaml:"variables"`
	Entries   []any          `yaml:"entries"`

	logger log.Logger
}

// VariableSpec declares one document variable.
type VariableSpec struct {
	Name    string `yaml:"name"`
	Value   any    `yaml:"value"`
	Section string `yaml:"section"`
	Comment string `yaml:"comment"`
}

// Entry keys recognized in the entries tree.
const (
	keyCall     = "call"
	keyArgs     = "args"
	keyChildren = "children"
	keyBlock    = "block"
	keyModifier = "modifier"
	keyChild    = "child"
	keyAssign   = "assign"
	keyValue    = "value"
)
