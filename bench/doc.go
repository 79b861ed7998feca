// Package bench ranks already-trained predictive models on a held-out test set.
//
// A Bencher infers once, from the true target values, whether the task is
// Classification or Regression, then times a single Predict call per model
// and scores it with that problem type's metric set:
//
//	b, err := bench.NewBencher(models, xTest, yTest)
//	if err != nil {
//		return err
//	}
//	table, err := b.Run()
//
// The returned ScoreTable is sorted descending by F1 Score for
// classification and by R-Squared for regression; ties keep input order.
package bench
