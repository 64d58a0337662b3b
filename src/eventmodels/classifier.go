package eventmodels

// FeatureColumns is the canonical feature schema consumed by the classifier.
// Training and prediction rows must both be produced in this exact order; see
// StraddleRecord.FeatureVector and FeatureRow.FeatureVector.
var FeatureColumns = []string{
	"Current_Price",
	"Call_Strike",
	"Put_Strike",
	"Buy_Call_Price",
	"Buy_Put_Price",
	"Call_Volume",
	"Call_Open_Interest",
	"Put_Volume",
	"Put_Open_Interest",
}

// Classifier is the external decision model (a gradient-boosted tree in the
// reference setup). Missing-value imputation is the classifier's concern.
type Classifier interface {
	Fit(features [][]float64, labels []bool) error
	Predict(features [][]float64) ([]bool, error)
}
