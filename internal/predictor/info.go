package predictor

// Info describes which artifacts are currently loaded, for the health
// endpoint and for debugging partial-load states.
type Info struct {
	ModelsLoaded               bool     `json:"models_loaded"`
	RegressorAvailable         bool     `json:"regressor_available"`
	ClassifierAvailable        bool     `json:"classifier_available"`
	ClassifierEncoderAvailable bool     `json:"classifier_encoder_available"`
	FeatureEncoderAvailable    bool     `json:"feature_encoder_available"`
	ValidCoursesAvailable      bool     `json:"valid_courses_map_available"`
	AvailableStreams           []string `json:"available_streams"`
}

// Info reports the loaded state of the admission bundle. A failed load yields
// the zero Info with ModelsLoaded false rather than an error.
func (p *Predictor) Info() Info {
	b, err := p.loader.Load()
	if err != nil {
		return Info{}
	}

	info := Info{
		ModelsLoaded:               b.IsUsable(),
		RegressorAvailable:         b.Regressor != nil,
		ClassifierAvailable:        b.Classifier != nil,
		ClassifierEncoderAvailable: b.ClassifierEncoder != nil,
		FeatureEncoderAvailable:    b.FeatureEncoder != nil,
		ValidCoursesAvailable:      b.ValidCourses != nil,
	}
	if b.ValidCourses != nil {
		info.AvailableStreams = mapKeys(b.ValidCourses)
	}
	return info
}
