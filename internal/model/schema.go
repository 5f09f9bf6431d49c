package model

import "fmt"

// FeatureSchema declares the exact column order a model was trained with.
// Numeric features always precede the one-hot encoded categorical block in the
// final feature vector; both orders are fixed at training time and silently
// corrupt predictions if violated, so they live here as named constants rather
// than inline literals at the call sites.
type FeatureSchema struct {
	Categorical []string
	Numeric     []string
}

// RegressorSchema is the cutoff model's column contract.
var RegressorSchema = FeatureSchema{
	Categorical: []string{"University", "Course Name", "District", "Stream"},
	Numeric:     []string{"Year", "Aptitude_Test", "All_Island_Merit"},
}

// ClassifierSchema is the selection-probability model's column contract. The
// categorical order intentionally differs from RegressorSchema: the two
// encoders were fitted independently.
var ClassifierSchema = FeatureSchema{
	Categorical: []string{"Stream", "District", "Course Name", "University"},
	Numeric:     []string{"Z_Score", "Aptitude_Test", "All_Island_Merit"},
}

// Validate checks an encoder's recorded column order against the schema so
// that order drift is caught at load time instead of producing silently wrong
// predictions.
func (s FeatureSchema) Validate(enc *OneHotEncoder) error {
	if enc == nil {
		return fmt.Errorf("encoder is nil")
	}
	if len(enc.Columns) != len(s.Categorical) {
		return fmt.Errorf("encoder has %d columns, schema expects %d", len(enc.Columns), len(s.Categorical))
	}
	for i, col := range s.Categorical {
		if enc.Columns[i] != col {
			return fmt.Errorf("encoder column %d is %q, schema expects %q", i, enc.Columns[i], col)
		}
	}
	return nil
}
