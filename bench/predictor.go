package bench

import (
	"maps"
	"slices"
)

//go:generate go tool mockgen -source=predictor.go -destination=predictor_mock_test.go -package=bench

// Predictor is an already-fitted model. Predict must return one prediction
// per row of inputs, in the same order as the true target values.
type Predictor[X any] interface {
	Predict(inputs X) ([]float64, error)
}

// PredictorFunc adapts a plain function to Predictor.
type PredictorFunc[X any] func(inputs X) ([]float64, error)

// Predict calls f(inputs).
func (f PredictorFunc[X]) Predict(inputs X) ([]float64, error) {
	return f(inputs)
}

// Model pairs a unique name with its predictor.
type Model[X any] struct {
	Name      string
	Predictor Predictor[X]
}

// ModelsFromMap returns the entries of m ordered by name.
func ModelsFromMap[X any](m map[string]Predictor[X]) []Model[X] {
	models := make([]Model[X], 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		models = append(models, Model[X]{Name: name, Predictor: m[name]})
	}
	return models
}
