package metrics

import "math"

// ClassificationScores holds the classification metrics for one set of
// predictions. Precision, Recall and F1 are support-weighted averages of the
// per-class values; a class whose denominator is zero contributes 0.
type ClassificationScores struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Classes   int     `json:"classes"`
	Support   int     `json:"support"`
}

// ClassCounts is the per-class confusion tally.
type ClassCounts struct {
	Label     float64
	TP        int
	Predicted int
	Support   int
}

// Precision returns TP / predicted, or 0 when nothing was predicted as this class.
func (c ClassCounts) Precision() float64 {
	return safeDivide(float64(c.TP), float64(c.Predicted))
}

// Recall returns TP / support, or 0 when the class never occurs in the true values.
func (c ClassCounts) Recall() float64 {
	return safeDivide(float64(c.TP), float64(c.Support))
}

// F1 returns 2·TP / (predicted + support), or 0 when both are zero.
func (c ClassCounts) F1() float64 {
	return safeDivide(2*float64(c.TP), float64(c.Predicted+c.Support))
}

// CountClasses tallies true positives, predictions and support for every label
// seen in either yTrue or yPred, in order of first appearance. Every value must
// be a finite integer; anything else returns ErrContinuousLabels.
func CountClasses(yTrue, yPred []float64) ([]ClassCounts, error) {
	if err := checkLabels(yTrue, yPred); err != nil {
		return nil, err
	}

	index := make(map[uint64]int)
	var counts []ClassCounts
	slot := func(v float64) *ClassCounts {
		k := labelKey(v)
		i, ok := index[k]
		if !ok {
			i = len(counts)
			index[k] = i
			counts = append(counts, ClassCounts{Label: v})
		}
		return &counts[i]
	}

	for i := range yTrue {
		slot(yTrue[i]).Support++
		p := slot(yPred[i])
		p.Predicted++
		if labelKey(yTrue[i]) == labelKey(yPred[i]) {
			p.TP++
		}
	}
	return counts, nil
}

// Accuracy returns the fraction of predictions equal to the true value.
func Accuracy(yTrue, yPred []float64) (float64, error) {
	if err := checkLabels(yTrue, yPred); err != nil {
		return 0, err
	}
	correct := 0
	for i := range yTrue {
		if labelKey(yTrue[i]) == labelKey(yPred[i]) {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// WeightedPrecision returns the support-weighted mean of per-class precision.
func WeightedPrecision(yTrue, yPred []float64) (float64, error) {
	s, err := Classification(yTrue, yPred)
	return s.Precision, err
}

// WeightedRecall returns the support-weighted mean of per-class recall.
func WeightedRecall(yTrue, yPred []float64) (float64, error) {
	s, err := Classification(yTrue, yPred)
	return s.Recall, err
}

// WeightedF1 returns the support-weighted mean of per-class F1.
func WeightedF1(yTrue, yPred []float64) (float64, error) {
	s, err := Classification(yTrue, yPred)
	return s.F1, err
}

// Classification computes every classification metric in one pass.
func Classification(yTrue, yPred []float64) (ClassificationScores, error) {
	counts, err := CountClasses(yTrue, yPred)
	if err != nil {
		return ClassificationScores{}, err
	}

	var correct, total int
	var precision, recall, f1 float64
	for _, c := range counts {
		w := float64(c.Support)
		precision += w * c.Precision()
		recall += w * c.Recall()
		f1 += w * c.F1()
		correct += c.TP
		total += c.Support
	}

	n := float64(total)
	return ClassificationScores{
		Accuracy:  safeDivide(float64(correct), n),
		Precision: safeDivide(precision, n),
		Recall:    safeDivide(recall, n),
		F1:        safeDivide(f1, n),
		Classes:   len(counts),
		Support:   total,
	}, nil
}

// labelKey maps a label to a comparable key. Signed zeros collapse to one class.
func labelKey(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}
