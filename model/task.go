package model

import (
	vm "github.com/siherrmann/validator/model"
)

type noDefault struct{}

func (noDefault) String() string { return "<empty>" }

// NoDefault marks a parameter that was declared without a default value.
var NoDefault interface{} = noDefault{}

// Parameter is a snapshot of one formal parameter of a task callable.
type Parameter struct {
	Name    string      `json:"name"`
	Default interface{} `json:"default"`
	Kind    string      `json:"kind"`
}

// Task represents a registered, invocable unit of work.
// Arguments declares the shape a run's arguments must have for this task.
type Task struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]Parameter `json:"parameters"`
	Arguments   []vm.Validation      `json:"-"`
}
